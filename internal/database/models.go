package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is an account that owns resumes.
type User struct {
	gorm.Model
	Username     string         `gorm:"uniqueIndex;size:64"`
	PasswordHash string         `gorm:"size:255"`
	Resumes      []ResumeRecord `gorm:"constraint:OnDelete:CASCADE"`
}

// ResumeRecord stores one resume document. Content holds the full document
// JSON (contact fields, collections, template selection); Title and ClientID
// are denormalized out of it for listing and lookup.
type ResumeRecord struct {
	gorm.Model
	ClientID   string         `gorm:"uniqueIndex;size:64"`
	Title      string         `gorm:"size:255"`
	Content    datatypes.JSON `gorm:"type:jsonb"`
	UserID     uint           `gorm:"index"`
	User       User           `gorm:"constraint:OnDelete:CASCADE"`
	PdfURL     string         `gorm:"size:512"`
	PdfStatus  string         `gorm:"size:32"`
	ProfileKey string         `gorm:"size:512"`
}

// Export status values for ResumeRecord.PdfStatus.
const (
	PdfStatusPending   = "pending"
	PdfStatusCompleted = "completed"
	PdfStatusFailed    = "failed"
)
