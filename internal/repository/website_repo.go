package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebsiteRepository interface {
	CreateTx(tx *gorm.DB, w *model.Website) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Website, error)
	List(ctx context.Context) ([]model.Website, error)
	SaveTx(tx *gorm.DB, w *model.Website) error
	ListModuleIDsTx(tx *gorm.DB, websiteID uuid.UUID) ([]uuid.UUID, error)
	AppendModulesTx(tx *gorm.DB, w *model.Website, mods []model.WebsiteModule) error
	RemoveModulesTx(tx *gorm.DB, w *model.Website, mods []model.WebsiteModule) error
	ClearModulesTx(tx *gorm.DB, w *model.Website) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type websiteRepo struct{ db *gorm.DB }

func NewWebsiteRepository(db *gorm.DB) WebsiteRepository { return &websiteRepo{db: db} }

func (r *websiteRepo) DB() *gorm.DB { return r.db }

func (r *websiteRepo) CreateTx(tx *gorm.DB, w *model.Website) error {
	return tx.Create(w).Error
}

func (r *websiteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Website, error) {
	var w model.Website
	err := r.db.WithContext(ctx).Preload("Modules").First(&w, "id = ?", id).Error
	return &w, err
}

func (r *websiteRepo) List(ctx context.Context) ([]model.Website, error) {
	var sites []model.Website
	err := r.db.WithContext(ctx).Order("title ASC").Find(&sites).Error
	return sites, err
}

func (r *websiteRepo) SaveTx(tx *gorm.DB, w *model.Website) error {
	return tx.Omit("Modules").Save(w).Error
}

func (r *websiteRepo) ListModuleIDsTx(tx *gorm.DB, websiteID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Table("website_website_modules").
		Where("website_id = ?", websiteID).
		Pluck("website_module_id", &ids).Error
	return ids, err
}

func (r *websiteRepo) AppendModulesTx(tx *gorm.DB, w *model.Website, mods []model.WebsiteModule) error {
	if len(mods) == 0 {
		return nil
	}
	return tx.Model(w).Association("Modules").Append(mods)
}

func (r *websiteRepo) RemoveModulesTx(tx *gorm.DB, w *model.Website, mods []model.WebsiteModule) error {
	if len(mods) == 0 {
		return nil
	}
	return tx.Model(w).Association("Modules").Delete(mods)
}

func (r *websiteRepo) ClearModulesTx(tx *gorm.DB, w *model.Website) error {
	return tx.Model(w).Association("Modules").Clear()
}

func (r *websiteRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Website{}, "id = ?", id).Error
}
