package model

import (
	"time"

	"github.com/google/uuid"
)

// Permission is a fine-grained action scoped to a website module.
// Action is the machine token (lowercase snake) derived from Title.
type Permission struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string    `gorm:"size:45;not null"`
	Action          string    `gorm:"size:60;not null;index"`
	WebsiteModuleID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	WebsiteModule *WebsiteModule `gorm:"foreignKey:WebsiteModuleID"`
}
