package utils_test

import (
	"testing"

	"github.com/chatsafety/sentinel/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestTextNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "lowercases text",
			input:    "How OLD are You?",
			expected: "how old are you?",
		},
		{
			name:     "compresses interior whitespace",
			input:    "i turned   25\tlast week",
			expected: "i turned 25 last week",
		},
		{
			name:     "strips diacritics",
			input:    "café conversación",
			expected: "cafe conversacion",
		},
		{
			name:     "preserves newlines",
			input:    "line one  \nline   two",
			expected: "line one\nline two",
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := utils.NewTextNormalizer()
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestTextNormalizer_Contains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{
			name:     "exact substring",
			s:        "Same here. By the way, I turned 25 last week.",
			substr:   "I turned 25 last week",
			expected: true,
		},
		{
			name:     "case insensitive",
			s:        "HOW OLD ARE YOU?",
			substr:   "how old are you",
			expected: true,
		},
		{
			name:     "no match",
			s:        "hi there",
			substr:   "I am 25 years old",
			expected: false,
		},
		{
			name:     "empty substr",
			s:        "hi there",
			substr:   "",
			expected: false,
		},
		{
			name:     "empty target",
			s:        "",
			substr:   "hi",
			expected: false,
		},
		{
			name:     "diacritics ignored",
			s:        "quiero un café contigo",
			substr:   "cafe",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := utils.NewTextNormalizer()
			assert.Equal(t, tt.expected, n.Contains(tt.s, tt.substr))
		})
	}
}
