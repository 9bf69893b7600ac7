package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records one row per mutating request for audit purposes.
// Written best-effort by the audit middleware — rows are never updated or
// deleted by the application.
type ActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Method     string    `gorm:"type:varchar(10);not null"`
	Model      string    `gorm:"size:45;not null"`
	RegisterID string    `gorm:"size:45;not null"`
	APIRoute   string    `gorm:"size:255;not null;column:api_route"`
	Message    string    `gorm:"size:255;not null"`
	Context    *string
	Level      string `gorm:"type:varchar(10);not null"`
	StatusCode int    `gorm:"not null"`
	CreatedBy  string `gorm:"size:255;not null"`
	CreatedAt  time.Time
}
