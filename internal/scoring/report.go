package scoring

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MergedRow is one labeled/predicted pairing kept for the merged output file.
type MergedRow struct {
	ID        string
	Labeled   map[string]string
	Predicted map[string]string
}

// Report aggregates scored outcomes per question and writes the result
// tables. Question order is fixed at construction and drives every output.
type Report struct {
	questionIDs []string
	counts      map[string]*ConfusionCounts
	merged      []MergedRow
}

// NewReport creates an empty report for the given ordered question ids.
func NewReport(questionIDs []string) *Report {
	counts := make(map[string]*ConfusionCounts, len(questionIDs))
	for _, id := range questionIDs {
		counts[id] = &ConfusionCounts{}
	}

	return &Report{
		questionIDs: questionIDs,
		counts:      counts,
	}
}

// ObserveRow scores one id's predictions against its labels across all
// questions and retains the pairing for the merged file.
func (r *Report) ObserveRow(id string, labeled, predicted map[string]string) {
	for _, questionID := range r.questionIDs {
		r.counts[questionID].Observe(labeled[questionID], predicted[questionID])
	}

	r.merged = append(r.merged, MergedRow{
		ID:        id,
		Labeled:   labeled,
		Predicted: predicted,
	})
}

// Counts returns the accumulated counts for a question id.
func (r *Report) Counts(questionID string) ConfusionCounts {
	if c, ok := r.counts[questionID]; ok {
		return *c
	}

	return ConfusionCounts{}
}

// QuestionIDs returns the report's question order.
func (r *Report) QuestionIDs() []string {
	return r.questionIDs
}

// Rows returns how many labeled/predicted pairings were observed.
func (r *Report) Rows() int {
	return len(r.merged)
}

// WriteFiles writes the four result files next to the output path: raw
// counts, all-cases metrics, yes-only metrics, and the merged row dump. It
// returns the paths written.
func (r *Report) WriteFiles(output string) ([]string, error) {
	base := strings.TrimSuffix(output, ".csv")

	files := []struct {
		path  string
		write func(*csv.Writer) error
	}{
		{base + "_raw_counts.csv", r.writeRawCounts},
		{base + "_all_cases.csv", r.writeAllCases},
		{base + "_yes_only.csv", r.writeYesOnly},
		{base + "_merged.csv", r.writeMerged},
	}

	paths := make([]string, 0, len(files))

	for _, f := range files {
		if err := writeCSVFile(f.path, f.write); err != nil {
			return nil, err
		}

		paths = append(paths, f.path)
	}

	return paths, nil
}

func writeCSVFile(path string, write func(*csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := write(writer); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (r *Report) writeRawCounts(writer *csv.Writer) error {
	header := []string{
		"Question", "Total_Cases", "Total_Yes_Cases", "Total_No_Cases",
		"True_Positive", "True_Negative", "False_Positive", "False_Negative",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, questionID := range r.questionIDs {
		counts := r.counts[questionID]
		record := []string{
			questionID,
			strconv.Itoa(counts.TotalCases),
			strconv.Itoa(counts.TotalYes),
			strconv.Itoa(counts.TotalNo),
			strconv.Itoa(counts.TruePositive),
			strconv.Itoa(counts.TrueNegative),
			strconv.Itoa(counts.FalsePositive),
			strconv.Itoa(counts.FalseNegative),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (r *Report) writeAllCases(writer *csv.Writer) error {
	header := []string{"Question", "Accuracy_All", "Precision_All", "Recall_All", "F1_All"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, questionID := range r.questionIDs {
		metrics := r.counts[questionID].AllCases()
		record := []string{
			questionID,
			percent(metrics.Accuracy),
			percent(metrics.Precision),
			percent(metrics.Recall),
			percent(metrics.F1),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (r *Report) writeYesOnly(writer *csv.Writer) error {
	header := []string{"Question", "Total_Yes_Cases", "Correct_Yes_Cases", "Accuracy_Yes_Only"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, questionID := range r.questionIDs {
		counts := r.counts[questionID]
		record := []string{
			questionID,
			strconv.Itoa(counts.TotalYes),
			strconv.Itoa(counts.TruePositive),
			percent(counts.YesOnlyAccuracy()),
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (r *Report) writeMerged(writer *csv.Writer) error {
	header := []string{"id"}
	for _, questionID := range r.questionIDs {
		header = append(header, questionID+"_labeled")
	}

	for _, questionID := range r.questionIDs {
		header = append(header, questionID+"_predicted")
	}

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range r.merged {
		record := make([]string, 0, len(header))
		record = append(record, row.ID)

		for _, questionID := range r.questionIDs {
			record = append(record, row.Labeled[questionID])
		}

		for _, questionID := range r.questionIDs {
			record = append(record, row.Predicted[questionID])
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
