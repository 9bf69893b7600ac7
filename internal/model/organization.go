package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the root aggregate: it owns websites, roles and invoices.
// Document stores the tax document (CPF/CNPJ) as digits only — sanitized on
// write by the service layer.
type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LegalName    string    `gorm:"size:90;not null"`
	BusinessName string    `gorm:"size:90;not null"`
	Document     string    `gorm:"size:14;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Websites []Website `gorm:"foreignKey:OrganizationID"`
	Roles    []Role    `gorm:"foreignKey:OrganizationID"`
	Invoices []Invoice `gorm:"foreignKey:OrganizationID"`
}
