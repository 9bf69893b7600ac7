package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebsiteModuleRepository interface {
	Create(ctx context.Context, m *model.WebsiteModule) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.WebsiteModule, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WebsiteModule, error)
	List(ctx context.Context) ([]model.WebsiteModule, error)
	Update(ctx context.Context, m *model.WebsiteModule) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type moduleRepo struct{ db *gorm.DB }

func NewWebsiteModuleRepository(db *gorm.DB) WebsiteModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) DB() *gorm.DB { return r.db }

func (r *moduleRepo) Create(ctx context.Context, m *model.WebsiteModule) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *moduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.WebsiteModule, error) {
	var m model.WebsiteModule
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *moduleRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.WebsiteModule, error) {
	var mods []model.WebsiteModule
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&mods).Error
	return mods, err
}

func (r *moduleRepo) List(ctx context.Context) ([]model.WebsiteModule, error) {
	var mods []model.WebsiteModule
	err := r.db.WithContext(ctx).Order("title ASC").Find(&mods).Error
	return mods, err
}

func (r *moduleRepo) Update(ctx context.Context, m *model.WebsiteModule) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *moduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WebsiteModule{}, "id = ?", id).Error
}
