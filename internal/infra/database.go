package infra

import (
	"fmt"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for every entity. Foreign keys and the m2m join tables
// (role_permissions, website_website_modules) are created here, so
// referential integrity is enforced by PostgreSQL itself.
func NewDatabase(dsn string) (*gorm.DB, error) {
	// TranslateError maps driver errors (pgconn 23503/23505) onto
	// gorm.ErrForeignKeyViolated / gorm.ErrDuplicatedKey so the service
	// layer can surface them as typed integrity/conflict errors.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Organization{},
		&model.Website{},
		&model.WebsiteModule{},
		&model.Permission{},
		&model.Role{},
		&model.User{},
		&model.Invoice{},
		&model.Payment{},
		&model.ActivityLog{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
