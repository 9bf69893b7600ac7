package model

import (
	"time"

	"github.com/google/uuid"
)

// User authenticates by email and acts under a single role. RoleID is a weak
// reference: the role-deletion cascade clears it and deactivates the user.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nickname     string    `gorm:"size:45;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	RoleID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Role *Role `gorm:"foreignKey:RoleID"`
}
