package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	CreateTx(tx *gorm.DB, role *model.Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	// FindForUpdateTx locks the role row — the unit of mutual exclusion for
	// binding replacement and the deletion cascade.
	FindForUpdateTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	SaveTx(tx *gorm.DB, role *model.Role) error
	ListPermissionIDsTx(tx *gorm.DB, roleID uuid.UUID) ([]uuid.UUID, error)
	AppendPermissionsTx(tx *gorm.DB, role *model.Role, perms []model.Permission) error
	RemovePermissionsTx(tx *gorm.DB, role *model.Role, perms []model.Permission) error
	ClearPermissionsTx(tx *gorm.DB, role *model.Role) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) RoleRepository { return &roleRepo{db: db} }

func (r *roleRepo) DB() *gorm.DB { return r.db }

func (r *roleRepo) CreateTx(tx *gorm.DB, role *model.Role) error {
	// Creating with Permissions populated also writes the join rows
	return tx.Create(role).Error
}

func (r *roleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Preload("Permissions").First(&role, "id = ?", id).Error
	return &role, err
}

func (r *roleRepo) FindForUpdateTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&role, "id = ?", id).Error
	return &role, err
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) SaveTx(tx *gorm.DB, role *model.Role) error {
	// Omit the association so Save never touches join rows implicitly —
	// binding changes go through Append/Remove only.
	return tx.Omit("Permissions").Save(role).Error
}

func (r *roleRepo) ListPermissionIDsTx(tx *gorm.DB, roleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Table("role_permissions").
		Where("role_id = ?", roleID).
		Pluck("permission_id", &ids).Error
	return ids, err
}

func (r *roleRepo) AppendPermissionsTx(tx *gorm.DB, role *model.Role, perms []model.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return tx.Model(role).Association("Permissions").Append(perms)
}

func (r *roleRepo) RemovePermissionsTx(tx *gorm.DB, role *model.Role, perms []model.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	return tx.Model(role).Association("Permissions").Delete(perms)
}

func (r *roleRepo) ClearPermissionsTx(tx *gorm.DB, role *model.Role) error {
	return tx.Model(role).Association("Permissions").Clear()
}

func (r *roleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Role{}, "id = ?", id).Error
}
