package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a single meal entry of a diet plan.
type Meal struct {
	Name     string   `json:"name"` // e.g. Breakfast
	Time     string   `json:"time,omitempty"`
	Items    []string `json:"items"`
	Calories int      `json:"calories,omitempty"`
}

// DietPlan is a nutrition program for a member.
type DietPlan struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID       uuid.UUID  `json:"member_id" gorm:"type:char(36);not null;index"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	DietTypeID     *uuid.UUID `json:"diet_type_id,omitempty" gorm:"type:char(36);index"`
	Meals          []Meal     `json:"meals" gorm:"serializer:json"`
	TargetCalories int        `json:"target_calories,omitempty"`
	Notes          string     `json:"notes,omitempty" gorm:"type:text"`
	Active         bool       `json:"active" gorm:"default:true;index"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:char(36)"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Member   *Member   `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	DietType *DietType `json:"diet_type,omitempty" gorm:"foreignKey:DietTypeID"`
}

// BeforeCreate sets UUID before creating the record.
func (d *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
