package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions. One entry is written per decision; rows are never updated.
const (
	ActionApproved    = "APPROVED"
	ActionRejected    = "REJECTED"
	ActionAutoDeleted = "AUTO_DELETED"
)

type AuditLogEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubmissionID string    `gorm:"size:20;not null;index" json:"submission_id"`
	Action       string    `gorm:"size:20;not null" json:"action"`
	AdminUser    string    `gorm:"size:255;not null" json:"admin_user"`
	Reason       string    `gorm:"size:1000" json:"reason"`
	Notes        string    `gorm:"size:1000" json:"notes"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
}
