package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chatsafety/sentinel/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("temporary error")

func TestWithRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		failures      int
		maxRetries    uint64
		expectedCalls int
		wantErr       bool
	}{
		{
			name:          "succeeds first try",
			failures:      0,
			maxRetries:    3,
			expectedCalls: 1,
			wantErr:       false,
		},
		{
			name:          "succeeds after retries",
			failures:      2,
			maxRetries:    3,
			expectedCalls: 3,
			wantErr:       false,
		},
		{
			name:          "fails all retries",
			failures:      10,
			maxRetries:    3,
			expectedCalls: 4, // Initial + 3 retries
			wantErr:       true,
		},
		{
			name:          "zero retries is single attempt",
			failures:      1,
			maxRetries:    0,
			expectedCalls: 1,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			operation := func() (string, error) {
				calls++
				if calls <= tt.failures {
					return "", errTemporary
				}
				return "ok", nil
			}

			opts := utils.RetryOptions{
				MaxElapsedTime:  time.Second,
				InitialInterval: time.Millisecond,
				MaxInterval:     5 * time.Millisecond,
				MaxRetries:      tt.maxRetries,
			}

			result, err := utils.WithRetry(t.Context(), operation, opts)
			assert.Equal(t, tt.expectedCalls, calls)

			if tt.wantErr {
				require.ErrorIs(t, err, errTemporary)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ok", result)
		})
	}
}
