package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMode is how a payment was collected.
type PaymentMode string

const (
	ModeCash         PaymentMode = "CASH"
	ModeCard         PaymentMode = "CARD"
	ModeUPI          PaymentMode = "UPI"
	ModeBankTransfer PaymentMode = "BANK_TRANSFER"
	ModeOther        PaymentMode = "OTHER"
)

// Payment is a collected payment with its generated invoice. Amount is the
// total charged including GST when a GST percentage was applied.
type Payment struct {
	ID            uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID      uuid.UUID        `json:"member_id" gorm:"type:char(36);not null;index"`
	MembershipID  *uuid.UUID       `json:"membership_id,omitempty" gorm:"type:char(36);index"`
	Amount        decimal.Decimal  `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMode   PaymentMode      `json:"payment_mode" gorm:"size:20;not null"`
	TransactionID string           `json:"transaction_id" gorm:"size:20;index"`
	InvoiceNumber string           `json:"invoice_number" gorm:"uniqueIndex;size:20;not null"`
	GSTNumber     string           `json:"gst_number,omitempty" gorm:"size:20"`
	GSTPercentage *decimal.Decimal `json:"gst_percentage,omitempty" gorm:"type:decimal(5,2)"`
	GSTAmount     *decimal.Decimal `json:"gst_amount,omitempty" gorm:"type:decimal(10,2)"`
	PaymentDate   time.Time        `json:"payment_date" gorm:"not null;index"`
	Notes         string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedBy     uuid.UUID        `json:"created_by" gorm:"type:char(36)"`
	CreatedAt     time.Time        `json:"created_at"`

	// Relations
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
