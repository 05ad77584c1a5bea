package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollmentChapter is a chapter copied into an enrollment at enroll
// time, extended with the student's completion flag.
type EnrollmentChapter struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Video       string `json:"video,omitempty"`
	Completed   bool   `json:"completed"`
}

// Enrollment records one student's participation in one course. Course
// fields are a snapshot taken at enrollment time and never re-synced.
type Enrollment struct {
	ID        ObjectID `json:"id" gorm:"primaryKey;size:24"`
	CourseID  ObjectID `json:"courseId" gorm:"size:24;not null;uniqueIndex:idx_enrollment_course_student"`
	StudentID ObjectID `json:"studentId" gorm:"size:24;not null;index;uniqueIndex:idx_enrollment_course_student"`

	CourseName        string `json:"courseName" gorm:"not null"`
	CourseDescription string `json:"courseDescription"`
	CourseThumbnail   string `json:"courseThumbnail"`

	Chapters datatypes.JSONSlice[EnrollmentChapter] `json:"chapters"`

	TotalChapters       int `json:"totalChapters"`
	CompletedChapters   int `json:"completedChapters"`
	CurrentChapterIndex int `json:"currentChapterIndex"` // 0-based; == TotalChapters when all done

	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"` // set once, when the last chapter completes

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Enrollment) TableName() string {
	return "course_enrollments"
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = NewObjectID()
	}
	return nil
}
