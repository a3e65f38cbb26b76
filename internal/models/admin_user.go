package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser holds a reviewer account. Accounts are seeded from ADMIN_USERS at
// startup; there is no self-service registration.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
