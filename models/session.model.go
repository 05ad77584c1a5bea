package models

import (
	"time"

	"gorm.io/gorm"
)

type Mentor struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Session is a scheduled mentoring session for one student.
type Session struct {
	ID        ObjectID `json:"id" gorm:"primaryKey;size:24"`
	StudentID ObjectID `json:"studentId" gorm:"size:24;not null;index"`

	Title     string    `json:"title" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	StartTime string    `json:"startTime"` // "14:00"
	EndTime   string    `json:"endTime"`

	Mentor *Mentor `json:"mentor" gorm:"serializer:json"`

	MeetingLink string `json:"meetingLink"`
	Status      string `json:"status" gorm:"default:'scheduled'"` // scheduled, completed, cancelled
	Notes       string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewObjectID()
	}
	return nil
}
