package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipStatus tracks whether a member currently holds a valid membership.
type MembershipStatus string

const (
	MemberPending   MembershipStatus = "PENDING"
	MemberActive    MembershipStatus = "ACTIVE"
	MemberExpired   MembershipStatus = "EXPIRED"
	MemberSuspended MembershipStatus = "SUSPENDED"
)

// Member is a gym member. Members created from a converted lead copy the
// lead's contact fields but keep no back-reference to it.
type Member struct {
	ID               uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	MembershipNumber string           `json:"membership_number" gorm:"uniqueIndex;size:20;not null"`
	Name             string           `json:"name" gorm:"size:255;not null;index"`
	Email            string           `json:"email,omitempty" gorm:"size:255"`
	Phone            string           `json:"phone" gorm:"size:20;not null;index"`
	Address          string           `json:"address,omitempty" gorm:"size:512"`
	City             string           `json:"city,omitempty" gorm:"size:100"`
	State            string           `json:"state,omitempty" gorm:"size:100"`
	Pincode          string           `json:"pincode,omitempty" gorm:"size:10"`
	DateOfBirth      *time.Time       `json:"date_of_birth,omitempty"`
	Gender           string           `json:"gender,omitempty" gorm:"size:10"`
	EmergencyName    string           `json:"emergency_name,omitempty" gorm:"size:255"`
	EmergencyContact string           `json:"emergency_contact,omitempty" gorm:"size:20"`
	BloodGroup       string           `json:"blood_group,omitempty" gorm:"size:5"`
	MedicalNotes     string           `json:"medical_notes,omitempty" gorm:"type:text"`
	Status           MembershipStatus `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	JoiningDate      time.Time        `json:"joining_date"`
	TrainerID        *uuid.UUID       `json:"trainer_id,omitempty" gorm:"type:char(36);index"`
	Notes            string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	// Relations
	Trainer     *User        `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:MemberID"`
	Payments    []Payment    `json:"payments,omitempty" gorm:"foreignKey:MemberID"`
	Attendance  []Attendance `json:"attendance,omitempty" gorm:"foreignKey:MemberID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
