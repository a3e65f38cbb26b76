package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission status values. Transitions are one-way: PENDING moves to exactly
// one of APPROVED or REJECTED and never changes again.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Languages accepted on intake.
var Languages = []string{"tamil", "sinhala", "english"}

// DataCategories map approved submissions to target dataset repositories.
var DataCategories = []string{"raw_text", "images", "pdf", "scan_pdf", "zip"}

type Submission struct {
	ID               string         `gorm:"primaryKey;size:20" json:"id"`
	Language         string         `gorm:"size:20;not null;index" json:"language"`
	Status           string         `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	ContributorName  string         `gorm:"size:255;not null" json:"contributor_name"`
	ContributorEmail string         `gorm:"size:255;not null" json:"contributor_email"`
	TextContent      string         `json:"text_content"`
	FilePaths        datatypes.JSON `json:"-"`
	FileHashes       datatypes.JSON `json:"-"`
	Metadata         datatypes.JSON `json:"metadata,omitempty"`
	PIIFlags         datatypes.JSON `json:"pii_flags"`
	ProfanityFlag    bool           `json:"profanity_flags"`
	DuplicateFlag    bool           `json:"duplicate_flag"`
	DataCategory     string         `gorm:"size:20;default:'raw_text'" json:"data_category"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ValidLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func ValidCategory(cat string) bool {
	for _, c := range DataCategories {
		if c == cat {
			return true
		}
	}
	return false
}
