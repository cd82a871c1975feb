package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context, page, limit int) ([]model.Payment, int64, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]model.Payment, error)
	LastNumberWithPrefix(ctx context.Context, column, prefix string) (string, error)
	SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error)
	GroupByMode(ctx context.Context) (map[model.PaymentMode]ModeAggregate, error)
}

// ModeAggregate is the per-payment-mode revenue rollup.
type ModeAggregate struct {
	Amount decimal.Decimal
	Count  int64
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, page, limit int) ([]model.Payment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Order("payment_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *paymentRepository) ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("payment_date DESC").
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// LastNumberWithPrefix returns the highest stored value of column starting
// with prefix, or "" when none exists. Used for invoice and transaction
// sequence generation.
func (r *paymentRepository) LastNumberWithPrefix(ctx context.Context, column, prefix string) (string, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Select(column).
		Where(column+" LIKE ?", prefix+"%").
		Order(column + " DESC").
		First(&payment).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	switch column {
	case "transaction_id":
		return payment.TransactionID, nil
	default:
		return payment.InvoiceNumber, nil
	}
}

func (r *paymentRepository) SumBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Count int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("payment_date BETWEEN ? AND ?", from, to).
		Scan(&row).Error; err != nil {
		return decimal.Zero, 0, err
	}
	return row.Total, row.Count, nil
}

func (r *paymentRepository) GroupByMode(ctx context.Context) (map[model.PaymentMode]ModeAggregate, error) {
	var rows []struct {
		PaymentMode model.PaymentMode
		Total       decimal.Decimal
		Count       int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("payment_mode, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("payment_mode").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.PaymentMode]ModeAggregate, len(rows))
	for _, row := range rows {
		out[row.PaymentMode] = ModeAggregate{Amount: row.Total, Count: row.Count}
	}
	return out, nil
}
