package export

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chatsafety/sentinel/internal/ai"
	"github.com/chatsafety/sentinel/internal/export/csv"
	"github.com/chatsafety/sentinel/internal/export/json"
	"github.com/chatsafety/sentinel/internal/export/sqlite"
	"github.com/chatsafety/sentinel/internal/export/types"
	"github.com/chatsafety/sentinel/internal/runner"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format represents a supported export format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// Exporter writes batch results in every configured format.
type Exporter struct {
	outDir  string
	catalog *ai.Catalog
	formats []Format
	logger  *zap.Logger
}

// New creates an exporter writing all formats to outDir.
func New(outDir string, catalog *ai.Catalog, logger *zap.Logger) *Exporter {
	return &Exporter{
		outDir:  outDir,
		catalog: catalog,
		formats: []Format{FormatCSV, FormatJSON, FormatSQLite},
		logger:  logger.Named("export"),
	}
}

// WithFormats restricts the exporter to a subset of formats.
func (e *Exporter) WithFormats(formats ...Format) *Exporter {
	e.formats = formats
	return e
}

// ExportAll writes the batch results in every configured format.
func (e *Exporter) ExportAll(results []*runner.FileResult) error {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, format := range e.formats {
		if err := e.export(format, results); err != nil {
			return err
		}

		e.logger.Info("Export complete",
			zap.String("format", string(format)),
			zap.String("dir", e.outDir))
	}

	return nil
}

func (e *Exporter) export(format Format, results []*runner.FileResult) error {
	switch format {
	case FormatCSV:
		var all []*ai.AnalysisResult
		for _, file := range results {
			all = append(all, file.Results...)
		}

		if err := csv.New(e.outDir).Export(e.catalog.QuestionIDs(), all); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
	case FormatJSON:
		analyses := make([]*types.FileAnalysis, 0, len(results))
		for _, file := range results {
			analyses = append(analyses, BuildFileAnalysis(file, e.catalog))
		}

		if err := json.New(e.outDir).Export(analyses); err != nil {
			return fmt.Errorf("failed to export json: %w", err)
		}
	case FormatSQLite:
		if err := sqlite.New(e.outDir).Export(flattenAnswers(results)); err != nil {
			return fmt.Errorf("failed to export sqlite: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return nil
}
