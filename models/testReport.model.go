package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is one answered question inside a report. The correctness
// flag is client-supplied and stored as-is.
type Answer struct {
	Question       string `json:"question"`
	OptionSelected string `json:"optionSelected"`
	Correct        bool   `json:"correct"`
}

// TestReport is one scored attempt at a test. Reports are immutable
// once created.
type TestReport struct {
	ID        ObjectID `json:"id" gorm:"primaryKey;size:24"`
	TestID    ObjectID `json:"testID" gorm:"size:24;not null;index"`
	StudentID ObjectID `json:"studentID" gorm:"size:24;not null;index"`

	TotalMarks       float64 `json:"totalMarks" gorm:"not null"`
	TotalMarksScored float64 `json:"totalMarksScored" gorm:"not null"`
	TotalTimeGiven   float64 `json:"totalTimeGiven" gorm:"not null"` // minutes
	TotalTimeTaken   float64 `json:"totalTimeTaken" gorm:"not null"` // minutes

	Answers datatypes.JSONSlice[Answer] `json:"answers"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (TestReport) TableName() string {
	return "test_reports"
}

func (r *TestReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = NewObjectID()
	}
	return nil
}
