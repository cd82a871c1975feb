package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one gym visit. A member has at most one row per calendar day;
// Date is the check-in time truncated to midnight.
type Attendance struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID  uuid.UUID  `json:"member_id" gorm:"type:char(36);not null;uniqueIndex:idx_member_date"`
	Date      time.Time  `json:"date" gorm:"not null;uniqueIndex:idx_member_date;index"`
	CheckIn   time.Time  `json:"check_in" gorm:"not null"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Duration  int        `json:"duration,omitempty"` // minutes, set at check-out
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
