package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadStatus is the pipeline stage of a prospective member.
type LeadStatus string

const (
	LeadNew       LeadStatus = "NEW"
	LeadContacted LeadStatus = "CONTACTED"
	LeadFollowUp  LeadStatus = "FOLLOW_UP"
	LeadConverted LeadStatus = "CONVERTED"
	LeadLost      LeadStatus = "LOST"
)

// Terminal reports whether the status ends the pipeline. Nothing at the
// storage layer enforces this; the conversion workflow checks it.
func (s LeadStatus) Terminal() bool {
	return s == LeadConverted || s == LeadLost
}

// LeadSource records how the prospect reached the gym.
type LeadSource string

const (
	SourceWalkIn      LeadSource = "WALK_IN"
	SourceReferral    LeadSource = "REFERRAL"
	SourcePhone       LeadSource = "PHONE"
	SourceSocialMedia LeadSource = "SOCIAL_MEDIA"
	SourceWebsite     LeadSource = "WEBSITE"
	SourceOther       LeadSource = "OTHER"
)

// Lead is a prospective member moving through the sales pipeline.
type Lead struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name            string     `json:"name" gorm:"size:255;not null;index"`
	Phone           string     `json:"phone" gorm:"size:20;not null"`
	Email           string     `json:"email,omitempty" gorm:"size:255"`
	Source          LeadSource `json:"source" gorm:"size:20;not null"`
	Status          LeadStatus `json:"status" gorm:"size:20;not null;default:'NEW';index"`
	InterestedPlan  string     `json:"interested_plan,omitempty" gorm:"size:255"`
	Notes           string     `json:"notes,omitempty" gorm:"type:text"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty" gorm:"index"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
	ConvertedDate   *time.Time `json:"converted_date,omitempty"`
	AssignedTo      uuid.UUID  `json:"assigned_to" gorm:"type:char(36);index"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
