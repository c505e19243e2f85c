package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chatsafety/sentinel/internal/ai"
)

const predictionsFile = "predictions.csv"

// Exporter writes batch predictions to a csv file consumed by the report
// tool.
type Exporter struct {
	outDir string
}

// New creates a new csv exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes one row per conversation with its per-question answers. The
// column order follows questionIDs.
func (e *Exporter) Export(questionIDs []string, results []*ai.AnalysisResult) error {
	path := filepath.Join(e.outDir, predictionsFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing file %s: %w", predictionsFile, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{"ID"}, questionIDs...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, result := range results {
		record := make([]string, 0, len(header))
		record = append(record, result.ConversationID)

		for _, questionID := range questionIDs {
			answer := string(ai.AnswerNo)
			if a := result.Answer(questionID); a != nil {
				answer = string(a.Answer)
			}

			record = append(record, answer)
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	return nil
}
