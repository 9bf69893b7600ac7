package repository

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreateTx(tx *gorm.DB, p *model.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	// FindByIDTx re-reads a payment inside the caller's transaction. Used
	// after the invoice row lock to detect a concurrently deleted payment.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	// ListByInvoiceTx reads the payment set inside the caller's transaction so
	// the total is computed against a consistent snapshot.
	ListByInvoiceTx(tx *gorm.DB, invoiceID uuid.UUID) ([]model.Payment, error)
	CountByInvoiceTx(tx *gorm.DB, invoiceID uuid.UUID) (int64, error)
	SaveTx(tx *gorm.DB, p *model.Payment) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepo{db: db} }

func (r *paymentRepo) DB() *gorm.DB { return r.db }

func (r *paymentRepo) CreateTx(tx *gorm.DB, p *model.Payment) error {
	return tx.Create(p).Error
}

func (r *paymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *paymentRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := tx.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *paymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Order("payment_date ASC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) ListByInvoiceTx(tx *gorm.DB, invoiceID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := tx.Where("invoice_id = ?", invoiceID).Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) CountByInvoiceTx(tx *gorm.DB, invoiceID uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&model.Payment{}).Where("invoice_id = ?", invoiceID).Count(&count).Error
	return count, err
}

func (r *paymentRepo) SaveTx(tx *gorm.DB, p *model.Payment) error {
	return tx.Save(p).Error
}

func (r *paymentRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Payment{}, "id = ?", id).Error
}
