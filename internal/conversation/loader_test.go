package conversation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chatsafety/sentinel/internal/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantCount int
		wantID    string
		wantTurns int
		wantErr   error
	}{
		{
			name:      "single object",
			content:   `{"turns": [{"speaker": "Alice", "text": "I'm 13"}, {"speaker": "Bob", "text": "nice, I'm 30"}]}`,
			wantCount: 1,
			wantID:    "conv",
			wantTurns: 2,
		},
		{
			name:      "list with conversation ids",
			content:   `[{"conversation_id": "c1", "turns": [{"speaker": "A", "text": "hi"}]}, {"conversation_id": "c2", "turns": []}]`,
			wantCount: 2,
			wantID:    "c1",
			wantTurns: 1,
		},
		{
			name:    "missing turns",
			content: `{"conversation_id": "c1"}`,
			wantErr: conversation.ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempFile(t, "conv.json", tt.content)
			convs, err := conversation.LoadFile(path)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, convs, tt.wantCount)
			assert.Equal(t, tt.wantID, convs[0].ID)
			assert.Len(t, convs[0].Turns, tt.wantTurns)
		})
	}
}

func TestLoadFile_CSV(t *testing.T) {
	t.Parallel()

	content := "Timestamp,Speaker,Message\n" +
		"2024-01-01T10:00:00Z,Alice,hello there\n" +
		"2024-01-01T10:00:05Z,Bob,hi!\n"

	path := writeTempFile(t, "chat.csv", content)
	convs, err := conversation.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, convs, 1)

	conv := convs[0]
	assert.Equal(t, "chat", conv.ID)
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, "Alice", conv.Turns[0].Speaker)
	assert.Equal(t, "hello there", conv.Turns[0].Text)
	assert.Equal(t, "2024-01-01T10:00:00Z", conv.Turns[0].Timestamp)
}

func TestLoadFile_CSVMissingColumns(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "bad.csv", "Timestamp,Who,What\nx,y,z\n")
	_, err := conversation.LoadFile(path)
	require.ErrorIs(t, err, conversation.ErrSchemaMismatch)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := conversation.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, conversation.ErrInputNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "conv.txt", "hello")
		_, err := conversation.LoadFile(path)
		require.ErrorIs(t, err, conversation.ErrUnsupportedFormat)
	})
}

func TestConversation_Format(t *testing.T) {
	t.Parallel()

	conv := &conversation.Conversation{
		ID: "c1",
		Turns: []conversation.Turn{
			{Speaker: "Alice", Text: "I'm 13"},
			{Speaker: "Bob", Text: "nice, I'm 30"},
		},
	}

	assert.Equal(t, "Alice: I'm 13\nBob: nice, I'm 30", conv.Format())
}
