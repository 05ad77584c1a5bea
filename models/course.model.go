package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Chapter is one unit of course content.
type Chapter struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Video       string `json:"video,omitempty"` // URL to video
}

type Course struct {
	ID          ObjectID `json:"id" gorm:"primaryKey;size:24"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`  // URL
	University  string   `json:"university"` // "By: University name"

	Chapters datatypes.JSONSlice[Chapter] `json:"chapters"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewObjectID()
	}
	return nil
}
