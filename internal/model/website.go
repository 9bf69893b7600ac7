package model

import (
	"time"

	"github.com/google/uuid"
)

// Website belongs to an Organization and exposes a set of modules through the
// website_website_modules join table, reconciled diff-based like role
// permissions.
type Website struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string    `gorm:"size:90;not null"`
	Domain         string    `gorm:"size:255;not null"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Modules []WebsiteModule `gorm:"many2many:website_website_modules"`
}

// WebsiteModule is a functional area of a website (e.g. "Faturas"). Slug is
// derived from Title and stable across renames unless explicitly overridden.
type WebsiteModule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"size:90;not null"`
	Slug      string    `gorm:"size:90;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Permissions []Permission `gorm:"foreignKey:WebsiteModuleID"`
}
