package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is a best-effort audit row. Writes never fail the action that
// triggered them.
type ActivityLog struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;index"`
	Action    string         `json:"action" gorm:"size:50;not null"` // CREATE, UPDATE, DELETE, CHECKIN, ...
	Entity    string         `json:"entity" gorm:"size:50;not null;index"`
	EntityID  string         `json:"entity_id,omitempty" gorm:"size:36"`
	Details   map[string]any `json:"details,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
