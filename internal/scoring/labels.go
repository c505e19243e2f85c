package scoring

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrFileNotFound is returned when a labeled or prediction file is missing.
	ErrFileNotFound = errors.New("file not found")
	// ErrSchemaMismatch is returned when a CSV lacks a required column.
	ErrSchemaMismatch = errors.New("csv schema mismatch")
)

const columnID = "ID"

// Row is one scored subject: a conversation id plus its per-question values,
// keyed by question id.
type Row struct {
	ID     string
	Values map[string]string
}

// LoadLabels reads a ground-truth CSV into an id-keyed map. columns maps each
// question id to the header it appears under in the file (e.g. "Q1" to
// "Q1: Age given"). All mapped columns plus ID are required; a missing one
// fails before any scoring happens.
func LoadLabels(path string, columns map[string]string) (map[string]Row, error) {
	rows, err := readRows(path, columns)
	if err != nil {
		return nil, err
	}

	labeled := make(map[string]Row, len(rows))
	for _, row := range rows {
		labeled[row.ID] = row
	}

	return labeled, nil
}

// LoadPredictions reads a predictions CSV, which carries question ids as
// headers directly. Row order is preserved.
func LoadPredictions(path string, questionIDs []string) ([]Row, error) {
	columns := make(map[string]string, len(questionIDs))
	for _, id := range questionIDs {
		columns[id] = id
	}

	return readRows(path, columns)
}

func readRows(path string, columns map[string]string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	indices, err := indexColumns(header, columns, path)
	if err != nil {
		return nil, err
	}

	idIdx, ok := headerIndex(header, columnID)
	if !ok {
		return nil, fmt.Errorf("%w: %s lacks column %q", ErrSchemaMismatch, path, columnID)
	}

	var rows []Row

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		row := Row{
			ID:     field(record, idIdx),
			Values: make(map[string]string, len(indices)),
		}

		for questionID, idx := range indices {
			row.Values[questionID] = field(record, idx)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// indexColumns resolves each question's header to its position, failing on
// the first required column that is absent.
func indexColumns(header []string, columns map[string]string, path string) (map[string]int, error) {
	indices := make(map[string]int, len(columns))

	for questionID, name := range columns {
		idx, ok := headerIndex(header, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s lacks column %q", ErrSchemaMismatch, path, name)
		}

		indices[questionID] = idx
	}

	return indices, nil
}

// headerIndex finds a column case-insensitively, tolerating a UTF-8 BOM on
// the first header cell.
func headerIndex(header []string, name string) (int, bool) {
	for i, cell := range header {
		cell = strings.TrimPrefix(strings.TrimSpace(cell), "\uFEFF")
		if strings.EqualFold(cell, name) {
			return i, true
		}
	}

	return 0, false
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
