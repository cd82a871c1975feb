package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is an admin-defined permission bundle offered when creating CUSTOM users.
type Role struct {
	ID                 uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Name               string       `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description        string       `json:"description,omitempty" gorm:"size:512"`
	DefaultPermissions []Permission `json:"default_permissions" gorm:"serializer:json"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
