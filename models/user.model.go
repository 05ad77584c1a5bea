package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           ObjectID `json:"id" gorm:"primaryKey;size:24"`
	Name         string   `json:"name"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"not null"`

	Number              string `json:"number"`
	Profile             string `json:"profile"` // profile picture URL
	AadharNumber        string `json:"aadharNumber"`
	PanNumber           string `json:"panNumber"`
	SchoolName          string `json:"schoolName"`
	FatherName          string `json:"fatherName"`
	FatherContactNumber string `json:"fatherContactNumber"`
	MotherName          string `json:"motherName"`
	MotherContactNumber string `json:"motherContactNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewObjectID()
	}
	return nil
}
