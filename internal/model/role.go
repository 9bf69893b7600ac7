package model

import (
	"time"

	"github.com/google/uuid"
)

// Role groups permissions inside an organization. Deleting a role never
// blocks on assigned users: they are deactivated and unassigned first
// (see RoleService.Delete).
type Role struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"size:90;not null"`
	Description    string    `gorm:"size:255"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Permissions []Permission `gorm:"many2many:role_permissions"`
}
