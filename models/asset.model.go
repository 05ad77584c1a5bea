package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Asset stores metadata for a file a student uploaded to external
// storage. The file itself lives behind the URL; only the record is
// kept here.
type Asset struct {
	ID   ObjectID `json:"id" gorm:"primaryKey;size:24"`
	Name string   `json:"name" gorm:"not null"` // original file name or label
	File string   `json:"file" gorm:"not null"` // public URL

	Type  string `json:"type"`  // MIME type, e.g. "application/pdf"
	Bytes int64  `json:"bytes"` // file size in bytes

	StudentID  ObjectID `json:"studentId" gorm:"size:24;not null;index"`
	UploadedBy string   `json:"uploadedBy"` // user id/email snapshot

	Meta datatypes.JSONMap `json:"meta"` // open key-value metadata

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewObjectID()
	}
	return nil
}
