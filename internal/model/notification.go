package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType categorizes in-app notifications for the header popup.
type NotificationType string

const (
	NotifLeadFollowUp       NotificationType = "LEAD_FOLLOW_UP"
	NotifPaymentDue         NotificationType = "PAYMENT_DUE"
	NotifMembershipExpiring NotificationType = "MEMBERSHIP_EXPIRING"
	NotifNewMember          NotificationType = "NEW_MEMBER"
)

// NotificationStatus is the read state of a notification.
type NotificationStatus string

const (
	NotifUnread    NotificationStatus = "UNREAD"
	NotifRead      NotificationStatus = "READ"
	NotifDismissed NotificationStatus = "DISMISSED"
)

// Notification is an in-app notification produced by the periodic check.
type Notification struct {
	ID          uuid.UUID          `json:"id" gorm:"type:char(36);primaryKey"`
	Type        NotificationType   `json:"type" gorm:"size:30;not null;index"`
	Title       string             `json:"title" gorm:"size:255;not null"`
	Message     string             `json:"message" gorm:"size:512;not null"`
	EntityType  string             `json:"entity_type" gorm:"size:50;not null"`
	EntityID    string             `json:"entity_id,omitempty" gorm:"size:36;index"`
	Status      NotificationStatus `json:"status" gorm:"size:20;not null;default:'UNREAD';index"`
	Metadata    map[string]any     `json:"metadata,omitempty" gorm:"serializer:json"`
	ReadAt      *time.Time         `json:"read_at,omitempty"`
	DismissedAt *time.Time         `json:"dismissed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
