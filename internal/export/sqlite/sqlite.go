package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/chatsafety/sentinel/internal/export/types"
)

const resultsFile = "results.db"

// Exporter persists batch answers to a SQLite database.
type Exporter struct {
	outDir string
}

// New creates a new SQLite exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes all answer rows plus run metadata to results.db, replacing
// any previous database.
func (e *Exporter) Export(rows []types.AnswerRow) error {
	path := filepath.Join(e.outDir, resultsFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file %s: %w", resultsFile, err)
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate|sqlite.OpenReadWrite)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	defer conn.Close()

	err = sqlitex.Execute(conn, `
		CREATE TABLE answers (
			source_file TEXT NOT NULL,
			conversation_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			answer TEXT NOT NULL,
			evidence TEXT NOT NULL,
			turns TEXT NOT NULL,
			PRIMARY KEY (source_file, conversation_id, question_id)
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create answers table: %w", err)
	}

	err = sqlitex.Execute(conn, `
		CREATE TABLE run_metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`, nil)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	err = sqlitex.Execute(conn,
		"INSERT INTO run_metadata (key, value) VALUES (?, ?)",
		&sqlitex.ExecOptions{Args: []any{"exported_at", time.Now().UTC().Format(time.RFC3339)}})
	if err != nil {
		return fmt.Errorf("failed to insert metadata: %w", err)
	}

	const batchSize = 1000
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))

		if err := sqlitex.Execute(conn, "BEGIN TRANSACTION", nil); err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		for _, row := range rows[i:end] {
			turns, err := sonic.MarshalString(row.Turns)
			if err != nil {
				return fmt.Errorf("failed to encode turn indices: %w", err)
			}

			err = sqlitex.Execute(conn, `
				INSERT INTO answers (source_file, conversation_id, question_id, answer, evidence, turns)
				VALUES (?, ?, ?, ?, ?, ?)
			`, &sqlitex.ExecOptions{
				Args: []any{row.SourceFile, row.ConversationID, row.QuestionID, row.Answer, row.Evidence, turns},
			})
			if err != nil {
				return fmt.Errorf("failed to insert answer: %w", err)
			}
		}

		if err := sqlitex.Execute(conn, "COMMIT", nil); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return nil
}
