package scoring_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatsafety/sentinel/internal/scoring"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	return records
}

func TestReportWriteFiles(t *testing.T) {
	t.Parallel()

	report := scoring.NewReport([]string{"Q1", "Q2"})

	report.ObserveRow("conv-1",
		map[string]string{"Q1": "Yes (13)", "Q2": "No"},
		map[string]string{"Q1": "YES", "Q2": "YES"})
	report.ObserveRow("conv-2",
		map[string]string{"Q1": "No", "Q2": "maybe"},
		map[string]string{"Q1": "NO", "Q2": "NO"})

	output := filepath.Join(t.TempDir(), "results.csv")

	paths, err := report.WriteFiles(output)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	base := filepath.Join(filepath.Dir(output), "results")

	raw := readCSV(t, base+"_raw_counts.csv")
	require.Len(t, raw, 3)
	assert.Equal(t, []string{
		"Question", "Total_Cases", "Total_Yes_Cases", "Total_No_Cases",
		"True_Positive", "True_Negative", "False_Positive", "False_Negative",
	}, raw[0])
	assert.Equal(t, []string{"Q1", "2", "1", "1", "1", "1", "0", "0"}, raw[1])
	// conv-2's unreadable Q2 label drops out of every count.
	assert.Equal(t, []string{"Q2", "1", "0", "1", "0", "0", "1", "0"}, raw[2])

	allCases := readCSV(t, base+"_all_cases.csv")
	require.Len(t, allCases, 3)
	assert.Equal(t, []string{"Q1", "100.00%", "100.00%", "100.00%", "100.00%"}, allCases[1])
	assert.Equal(t, []string{"Q2", "0.00%", "0.00%", "0.00%", "0.00%"}, allCases[2])

	yesOnly := readCSV(t, base+"_yes_only.csv")
	require.Len(t, yesOnly, 3)
	assert.Equal(t, []string{"Question", "Total_Yes_Cases", "Correct_Yes_Cases", "Accuracy_Yes_Only"}, yesOnly[0])
	assert.Equal(t, []string{"Q1", "1", "1", "100.00%"}, yesOnly[1])
	assert.Equal(t, []string{"Q2", "0", "0", "0.00%"}, yesOnly[2])

	merged := readCSV(t, base+"_merged.csv")
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"id", "Q1_labeled", "Q2_labeled", "Q1_predicted", "Q2_predicted"}, merged[0])
	assert.Equal(t, []string{"conv-1", "Yes (13)", "No", "YES", "YES"}, merged[1])
	assert.Equal(t, []string{"conv-2", "No", "maybe", "NO", "NO"}, merged[2])
}

func TestReportCountsUnknownQuestion(t *testing.T) {
	t.Parallel()

	report := scoring.NewReport([]string{"Q1"})
	assert.Equal(t, scoring.ConfusionCounts{}, report.Counts("Q9"))
	assert.Zero(t, report.Rows())
}
