package scoring

import "strings"

// ConfusionCounts accumulates raw outcome counts for one question. Counts
// from multiple prediction files are summed here first; derived metrics are
// computed once from the final sums, never averaged across files.
type ConfusionCounts struct {
	TruePositive  int
	TrueNegative  int
	FalsePositive int
	FalseNegative int
	TotalCases    int
	TotalYes      int
	TotalNo       int
}

// AllCasesMetrics are percentage metrics over every classifiable case.
type AllCasesMetrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Observe scores one (label, predicted) pair. A label that reads as neither
// yes nor no is excluded entirely: it contributes to no count, including the
// totals. A garbled prediction against a valid label counts toward the
// totals but lands in no confusion cell.
func (c *ConfusionCounts) Observe(label, predicted string) {
	labelYes, labelNo := classify(label)
	if !labelYes && !labelNo {
		return
	}

	c.TotalCases++

	if labelYes {
		c.TotalYes++
	} else {
		c.TotalNo++
	}

	predictedYes, predictedNo := classify(predicted)

	switch {
	case labelYes && predictedYes:
		c.TruePositive++
	case labelYes && predictedNo:
		c.FalseNegative++
	case labelNo && predictedYes:
		c.FalsePositive++
	case labelNo && predictedNo:
		c.TrueNegative++
	}
}

// Add sums other into c field by field.
func (c *ConfusionCounts) Add(other ConfusionCounts) {
	c.TruePositive += other.TruePositive
	c.TrueNegative += other.TrueNegative
	c.FalsePositive += other.FalsePositive
	c.FalseNegative += other.FalseNegative
	c.TotalCases += other.TotalCases
	c.TotalYes += other.TotalYes
	c.TotalNo += other.TotalNo
}

// AllCases derives the all-cases percentage metrics. Every zero denominator
// yields 0 rather than NaN.
func (c *ConfusionCounts) AllCases() AllCasesMetrics {
	accuracy := ratio(c.TruePositive+c.TrueNegative, c.TotalCases)
	precision := ratio(c.TruePositive, c.TruePositive+c.FalsePositive)
	recall := ratio(c.TruePositive, c.TruePositive+c.FalseNegative)

	var f1 float64
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return AllCasesMetrics{
		Accuracy:  accuracy * 100,
		Precision: precision * 100,
		Recall:    recall * 100,
		F1:        f1 * 100,
	}
}

// YesOnlyAccuracy is the detection rate over positive ground truth only:
// the share of labeled-yes cases the predictions caught.
func (c *ConfusionCounts) YesOnlyAccuracy() float64 {
	return ratio(c.TruePositive, c.TotalYes) * 100
}

// classify reads a raw CSV cell as yes, no, or neither. Labeled data uses
// annotations like "Yes (12)", so yes is a case-insensitive prefix match
// while no must match exactly.
func classify(value string) (yes, no bool) {
	value = strings.ToLower(strings.TrimSpace(value))

	if strings.HasPrefix(value, "yes") {
		return true, false
	}

	if value == "no" {
		return false, true
	}

	return false, false
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}
