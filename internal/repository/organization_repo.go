package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	List(ctx context.Context) ([]model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type organizationRepo struct{ db *gorm.DB }

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) DB() *gorm.DB { return r.db }

func (r *organizationRepo) Create(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *organizationRepo) List(ctx context.Context) ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.db.WithContext(ctx).Order("business_name ASC").Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepo) Update(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Model(org).
		Select("LegalName", "BusinessName", "Document", "IsActive").
		Updates(org).Error
}

func (r *organizationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// FK constraints reject the delete while websites/roles/invoices reference
	// the organization — surfaced to the service as an integrity error.
	return r.db.WithContext(ctx).Delete(&model.Organization{}, "id = ?", id).Error
}
