package testController

import (
	"fjao/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyHistory(t *testing.T) {
	summary := Summarize(nil, 50)

	assert.Equal(t, 0, summary.TestsTaken)
	assert.Equal(t, float64(0), summary.AverageScore)
	assert.Equal(t, 0, summary.PassCount)
	assert.Equal(t, 0, summary.FailCount)
	assert.Equal(t, float64(50), summary.PassPercentRule)
}

func TestSummarize_PassFailSplit(t *testing.T) {
	reports := []models.TestReport{
		{TotalMarks: 100, TotalMarksScored: 60},
		{TotalMarks: 50, TotalMarksScored: 20},
	}

	summary := Summarize(reports, 50)

	assert.Equal(t, 2, summary.TestsTaken)
	assert.Equal(t, float64(40), summary.AverageScore)
	assert.Equal(t, 1, summary.PassCount) // 60 >= 50
	assert.Equal(t, 1, summary.FailCount) // 20 < 25
}

func TestSummarize_ThresholdBoundaryIsInclusive(t *testing.T) {
	reports := []models.TestReport{
		{TotalMarks: 100, TotalMarksScored: 50},
	}

	summary := Summarize(reports, 50)
	assert.Equal(t, 1, summary.PassCount)
	assert.Equal(t, 0, summary.FailCount)
}

func TestSummarize_ThresholdExtremes(t *testing.T) {
	reports := []models.TestReport{
		{TotalMarks: 100, TotalMarksScored: 0},
		{TotalMarks: 100, TotalMarksScored: 99},
		{TotalMarks: 100, TotalMarksScored: 100},
	}

	// threshold 0: everything passes
	summary := Summarize(reports, 0)
	assert.Equal(t, 3, summary.PassCount)
	assert.Equal(t, 0, summary.FailCount)

	// threshold 100: only a perfect score passes
	summary = Summarize(reports, 100)
	assert.Equal(t, 1, summary.PassCount)
	assert.Equal(t, 2, summary.FailCount)
}

func TestSummarize_PartitionProperty(t *testing.T) {
	reports := []models.TestReport{
		{TotalMarks: 100, TotalMarksScored: 10},
		{TotalMarks: 80, TotalMarksScored: 40},
		{TotalMarks: 60, TotalMarksScored: 59},
		{TotalMarks: 0, TotalMarksScored: 0},
	}

	for _, threshold := range []float64{0, 25, 50, 75, 100} {
		summary := Summarize(reports, threshold)
		assert.Equal(t, summary.TestsTaken, summary.PassCount+summary.FailCount,
			"pass + fail must cover every report at threshold %v", threshold)
	}
}

func TestSummarize_MissingMarksCountAsZero(t *testing.T) {
	// a report with zero totalMarks passes trivially: 0 >= 0
	reports := []models.TestReport{
		{TotalMarks: 0, TotalMarksScored: 0},
	}

	summary := Summarize(reports, 50)
	assert.Equal(t, 1, summary.PassCount)
	assert.Equal(t, float64(0), summary.AverageScore)
}
