package conversation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
)

var (
	// ErrInputNotFound is returned when a referenced conversation file does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrUnsupportedFormat is returned for file extensions the loader does not recognize.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrSchemaMismatch is returned when a file parses but lacks the expected shape.
	ErrSchemaMismatch = errors.New("input schema mismatch")
)

// CSV column headers for transcripts exported one row per turn.
const (
	columnTimestamp = "Timestamp"
	columnSpeaker   = "Speaker"
	columnMessage   = "Message"
)

// LoadFile loads every conversation from a JSON or CSV transcript file.
// JSON files hold either a single {"turns": [...]} object or a list of such
// objects carrying conversation_id. CSV files hold one conversation with
// Timestamp/Speaker/Message columns, one row per turn.
func LoadFile(path string) ([]*Conversation, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".csv":
		conv, err := loadCSV(path)
		if err != nil {
			return nil, err
		}
		return []*Conversation{conv}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadJSON(path string) ([]*Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	fallbackID := baseName(path)

	// A file may hold a single conversation object or a list of them.
	var many []Conversation
	if err := sonic.Unmarshal(data, &many); err == nil {
		conversations := make([]*Conversation, 0, len(many))

		for i := range many {
			conv := many[i]
			if conv.Turns == nil {
				return nil, fmt.Errorf("%w: conversation %d in %s is missing turns", ErrSchemaMismatch, i, path)
			}

			if conv.ID == "" {
				conv.ID = fmt.Sprintf("%s_%d", fallbackID, i)
			}

			conversations = append(conversations, &conv)
		}

		return conversations, nil
	}

	var single Conversation
	if err := sonic.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if single.Turns == nil {
		return nil, fmt.Errorf("%w: %s is missing turns", ErrSchemaMismatch, path)
	}

	if single.ID == "" {
		single.ID = fallbackID
	}

	return []*Conversation{&single}, nil
}

func loadCSV(path string) (*Conversation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no header row", ErrSchemaMismatch, path)
	}

	columns := indexColumns(header)
	for _, required := range []string{columnSpeaker, columnMessage} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s is missing column %q", ErrSchemaMismatch, path, required)
		}
	}

	// Timestamp is optional in the wild.
	timestampIdx := -1
	if idx, ok := columns[columnTimestamp]; ok {
		timestampIdx = idx
	}

	conv := &Conversation{ID: baseName(path)}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row in %s: %w", path, err)
		}

		if len(record) == 0 {
			continue
		}

		conv.Turns = append(conv.Turns, Turn{
			Speaker:   strings.TrimSpace(field(record, columns[columnSpeaker])),
			Text:      strings.TrimSpace(field(record, columns[columnMessage])),
			Timestamp: strings.TrimSpace(field(record, timestampIdx)),
		})
	}

	return conv, nil
}

// indexColumns maps header names to their positions, tolerating a UTF-8 BOM
// on the first column.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}

		columns[name] = i
	}

	return columns
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return record[idx]
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
