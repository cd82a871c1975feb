package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExerciseSet is one prescribed exercise inside a workout plan.
type ExerciseSet struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight,omitempty"`
	RestTime int     `json:"rest_time,omitempty"` // seconds
	Notes    string  `json:"notes,omitempty"`
}

// WorkoutPlan is a trainer-authored exercise program for a member.
type WorkoutPlan struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	MemberID    uuid.UUID     `json:"member_id" gorm:"type:char(36);not null;index"`
	Name        string        `json:"name" gorm:"size:255;not null"`
	Description string        `json:"description,omitempty" gorm:"size:512"`
	Exercises   []ExerciseSet `json:"exercises" gorm:"serializer:json"`
	Difficulty  string        `json:"difficulty,omitempty" gorm:"size:20"`
	GoalID      *uuid.UUID    `json:"goal_id,omitempty" gorm:"type:char(36);index"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Active      bool          `json:"active" gorm:"default:true;index"`
	CreatedBy   uuid.UUID     `json:"created_by" gorm:"type:char(36)"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Member *Member      `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Goal   *FitnessGoal `json:"goal,omitempty" gorm:"foreignKey:GoalID"`
}

// BeforeCreate sets UUID before creating the record.
func (w *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
