package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DiscountType distinguishes percentage discounts from flat deductions.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// MembershipPlan is a sellable plan. Plans are soft-deleted via the active
// flag so historical memberships keep their reference.
type MembershipPlan struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string          `json:"description,omitempty" gorm:"size:512"`
	Duration    int             `json:"duration" gorm:"not null"` // days
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Features    []string        `json:"features" gorm:"serializer:json"`
	Color       string          `json:"color,omitempty" gorm:"size:10"`
	Popular     bool            `json:"popular" gorm:"default:false"`
	Active      bool            `json:"active" gorm:"default:true;index"`
	SortOrder   int             `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *MembershipPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Membership assigns a plan to a member for a date range. At most one
// membership per member is active; assigning a new one deactivates the rest.
type Membership struct {
	ID           uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID     uuid.UUID        `json:"member_id" gorm:"type:char(36);not null;index"`
	PlanID       uuid.UUID        `json:"plan_id" gorm:"type:char(36);not null;index"`
	StartDate    time.Time        `json:"start_date" gorm:"not null"`
	EndDate      time.Time        `json:"end_date" gorm:"not null;index"`
	Amount       decimal.Decimal  `json:"amount" gorm:"type:decimal(10,2);not null"`
	Discount     *decimal.Decimal `json:"discount,omitempty" gorm:"type:decimal(10,2)"`
	DiscountType DiscountType     `json:"discount_type,omitempty" gorm:"size:20"`
	FinalAmount  decimal.Decimal  `json:"final_amount" gorm:"type:decimal(10,2);not null"`
	Active       bool             `json:"active" gorm:"default:true;index"`
	Notes        string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Relations
	Member *Member         `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Plan   *MembershipPlan `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
