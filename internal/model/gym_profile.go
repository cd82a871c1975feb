package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GymProfile is the gym identity shown on invoices and the settings page.
type GymProfile struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Tagline   string    `json:"tagline,omitempty" gorm:"size:255"`
	Address   string    `json:"address,omitempty" gorm:"size:512"`
	City      string    `json:"city,omitempty" gorm:"size:100"`
	State     string    `json:"state,omitempty" gorm:"size:100"`
	Pincode   string    `json:"pincode,omitempty" gorm:"size:10"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Email     string    `json:"email,omitempty" gorm:"size:255"`
	GSTNumber string    `json:"gst_number,omitempty" gorm:"size:20"`
	Logo      string    `json:"logo,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GymProfile) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
