package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PermissionRepository interface {
	Create(ctx context.Context, p *model.Permission) error
	CreateBatchTx(tx *gorm.DB, perms []model.Permission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Permission, error)
	List(ctx context.Context) ([]model.Permission, error)
	Update(ctx context.Context, p *model.Permission) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type permissionRepo struct{ db *gorm.DB }

func NewPermissionRepository(db *gorm.DB) PermissionRepository { return &permissionRepo{db: db} }

func (r *permissionRepo) DB() *gorm.DB { return r.db }

func (r *permissionRepo) Create(ctx context.Context, p *model.Permission) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *permissionRepo) CreateBatchTx(tx *gorm.DB, perms []model.Permission) error {
	return tx.Create(&perms).Error
}

func (r *permissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Permission, error) {
	var p model.Permission
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *permissionRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&perms).Error
	return perms, err
}

func (r *permissionRepo) List(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).Order("title ASC").Find(&perms).Error
	return perms, err
}

func (r *permissionRepo) Update(ctx context.Context, p *model.Permission) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *permissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Permission{}, "id = ?", id).Error
}
