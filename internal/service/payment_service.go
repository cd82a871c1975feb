package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// CreatePaymentInput carries a payment to record.
type CreatePaymentInput struct {
	MemberID      uuid.UUID
	Amount        decimal.Decimal
	PaymentMode   model.PaymentMode
	MembershipID  *uuid.UUID
	GSTNumber     string
	GSTPercentage *decimal.Decimal
	Notes         string
}

// PaymentService records payments and issues invoices.
type PaymentService interface {
	Create(ctx context.Context, sess *auth.Session, input CreatePaymentInput) (*model.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	List(ctx context.Context, page, limit int) ([]model.Payment, int64, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo    repository.PaymentRepository
	memberRepo     repository.MemberRepository
	membershipRepo repository.MembershipRepository
	activity       ActivityService
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	memberRepo repository.MemberRepository,
	membershipRepo repository.MembershipRepository,
	activity ActivityService,
) PaymentService {
	return &paymentService{
		paymentRepo:    paymentRepo,
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		activity:       activity,
	}
}

// Create records a payment with generated invoice and transaction numbers.
// When the payment settles an expired membership, that membership is
// extended by one plan duration.
func (s *paymentService) Create(ctx context.Context, sess *auth.Session, input CreatePaymentInput) (*model.Payment, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermCreatePayments) {
		return nil, apperrors.ErrUnauthorized
	}

	member, err := s.memberRepo.FindByID(ctx, input.MemberID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	now := time.Now()
	invoiceNumber, err := s.nextNumber(ctx, "invoice_number", "INV", now)
	if err != nil {
		return nil, err
	}
	transactionID, err := s.nextNumber(ctx, "transaction_id", "TXN", now)
	if err != nil {
		return nil, err
	}

	total := input.Amount
	var gstAmount *decimal.Decimal
	if input.GSTPercentage != nil && input.GSTPercentage.IsPositive() {
		gst := input.Amount.Mul(*input.GSTPercentage).Div(decimal.NewFromInt(100))
		gstAmount = &gst
		total = input.Amount.Add(gst)
	}

	payment := &model.Payment{
		MemberID:      input.MemberID,
		MembershipID:  input.MembershipID,
		Amount:        total,
		PaymentMode:   input.PaymentMode,
		TransactionID: transactionID,
		InvoiceNumber: invoiceNumber,
		GSTNumber:     input.GSTNumber,
		GSTPercentage: input.GSTPercentage,
		GSTAmount:     gstAmount,
		PaymentDate:   now,
		Notes:         input.Notes,
		CreatedBy:     sess.UserID,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// Renewal payment against a lapsed membership extends it.
	if input.MembershipID != nil {
		if err := s.extendIfExpired(ctx, *input.MembershipID, now); err != nil {
			return nil, err
		}
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "Payment", payment.ID.String(), map[string]any{
		"invoice_number": invoiceNumber,
		"member":         member.Name,
		"amount":         total.String(),
	})

	payment.Member = member
	return payment, nil
}

func (s *paymentService) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, page, limit int) ([]model.Payment, int64, error) {
	return s.paymentRepo.List(ctx, page, limit)
}

func (s *paymentService) ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]model.Payment, error) {
	if limit < 1 {
		limit = 20
	}
	return s.paymentRepo.ListByMember(ctx, memberID, limit)
}

// nextNumber continues the monthly sequence for a numbering column, e.g.
// INV20260800001.
func (s *paymentService) nextNumber(ctx context.Context, column, kind string, now time.Time) (string, error) {
	prefix := fmt.Sprintf("%s%04d%02d", kind, now.Year(), int(now.Month()))
	last, err := s.paymentRepo.LastNumberWithPrefix(ctx, column, prefix)
	if err != nil {
		return "", fmt.Errorf("last %s: %w", column, err)
	}

	seq := 1
	if len(last) >= 5 {
		if n, err := strconv.Atoi(last[len(last)-5:]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%05d", prefix, seq), nil
}

func (s *paymentService) extendIfExpired(ctx context.Context, membershipID uuid.UUID, now time.Time) error {
	membership, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find membership: %w", err)
	}

	if membership.Plan != nil && membership.EndDate.Before(now) {
		membership.EndDate = membership.EndDate.AddDate(0, 0, membership.Plan.Duration)
		membership.Active = true
		if err := s.membershipRepo.Update(ctx, membership); err != nil {
			return fmt.Errorf("extend membership: %w", err)
		}
		if err := s.memberRepo.UpdateStatus(ctx, membership.MemberID, model.MemberActive); err != nil {
			return fmt.Errorf("activate member: %w", err)
		}
	}
	return nil
}
