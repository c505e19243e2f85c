package json

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/chatsafety/sentinel/internal/export/types"
)

// Exporter writes one analysis artifact per input file.
type Exporter struct {
	outDir string
}

// New creates a new json exporter instance.
func New(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Export writes each analysis to `<input basename>_analysis.json`.
func (e *Exporter) Export(analyses []*types.FileAnalysis) error {
	for _, analysis := range analyses {
		if err := e.writeFile(analysis); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) writeFile(analysis *types.FileAnalysis) error {
	data, err := sonic.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis for %s: %w", analysis.FilePath, err)
	}

	name := artifactName(analysis.FilePath)
	if err := os.WriteFile(filepath.Join(e.outDir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

func artifactName(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + "_analysis.json"
}
