package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is one assignment item: a prompt with its options and the
// key of the correct option (e.g. "option1").
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type Test struct {
	ID          ObjectID `json:"id" gorm:"primaryKey;size:24"`
	Name        string   `json:"name" gorm:"not null"` // "English Test"
	Description string   `json:"description"`

	Assignment datatypes.JSONSlice[Question] `json:"assignment"`

	Time int `json:"time" gorm:"not null"` // minutes

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Test) TableName() string {
	return "tests"
}

func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewObjectID()
	}
	return nil
}
