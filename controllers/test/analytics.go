package testController

import (
	"fjao/models"
)

// Summary is the aggregate view of a student's report history.
type Summary struct {
	TestsTaken      int     `json:"testsTaken"`
	AverageScore    float64 `json:"averageScore"` // mean of totalMarksScored
	PassCount       int     `json:"passCount"`
	FailCount       int     `json:"failCount"`
	PassPercentRule float64 `json:"passPercentRule"`
}

// Summarize folds a report list into summary statistics. A report
// passes when totalMarksScored >= totalMarks * passPercent / 100.
// Pure: stored reports are never mutated, and an empty list yields an
// all-zero summary rather than dividing by zero.
func Summarize(reports []models.TestReport, passPercent float64) Summary {
	summary := Summary{
		TestsTaken:      len(reports),
		PassPercentRule: passPercent,
	}

	var totalScore float64
	for _, r := range reports {
		totalScore += r.TotalMarksScored
		if r.TotalMarksScored >= r.TotalMarks*passPercent/100 {
			summary.PassCount++
		} else {
			summary.FailCount++
		}
	}

	if summary.TestsTaken > 0 {
		summary.AverageScore = totalScore / float64(summary.TestsTaken)
	}

	return summary
}
