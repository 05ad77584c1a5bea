package models

import (
	"time"

	"gorm.io/gorm"
)

// CollegeApplication is a student's application to a college. Student
// details are denormalized so admins can review without extra lookups.
type CollegeApplication struct {
	ID        ObjectID `json:"id" gorm:"primaryKey;size:24"`
	StudentID ObjectID `json:"studentId" gorm:"size:24;index"` // optional link
	CollegeID ObjectID `json:"collegeId" gorm:"size:24"`       // optional link

	StudentName   string `json:"studentName" gorm:"not null"`
	StudentEmail  string `json:"studentEmail" gorm:"not null"`
	StudentNumber string `json:"studentNumber"`

	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`

	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	CurrentCollege    string   `json:"currentCollege"`
	Cgpa              *float64 `json:"cgpa"`
	LastSemesterMarks *float64 `json:"lastSemesterMarks"`

	Motivation string `json:"motivation"`

	Status     string `json:"status" gorm:"default:'submitted'"` // submitted, in-review, accepted, rejected
	AdminNotes string `json:"adminNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CollegeApplication) TableName() string {
	return "applications"
}

func (a *CollegeApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewObjectID()
	}
	return nil
}
