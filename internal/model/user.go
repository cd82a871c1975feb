package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole enumerates the built-in staff roles. CUSTOM users carry an
// explicit permission set instead of deriving it from role defaults.
type UserRole string

const (
	RoleSuperAdmin   UserRole = "SUPER_ADMIN"
	RoleAdmin        UserRole = "ADMIN"
	RoleTrainer      UserRole = "TRAINER"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleHelper       UserRole = "HELPER"
	RoleCustom       UserRole = "CUSTOM"
)

// Permission is a named capability string checked by the policy layer.
type Permission string

const (
	PermViewDashboard  Permission = "VIEW_DASHBOARD"
	PermViewMembers    Permission = "VIEW_MEMBERS"
	PermCreateMembers  Permission = "CREATE_MEMBERS"
	PermEditMembers    Permission = "EDIT_MEMBERS"
	PermDeleteMembers  Permission = "DELETE_MEMBERS"
	PermViewLeads      Permission = "VIEW_LEADS"
	PermCreateLeads    Permission = "CREATE_LEADS"
	PermEditLeads      Permission = "EDIT_LEADS"
	PermViewBilling    Permission = "VIEW_BILLING"
	PermCreatePayments Permission = "CREATE_PAYMENTS"
	PermEditPayments   Permission = "EDIT_PAYMENTS"
	PermViewInvoices   Permission = "VIEW_INVOICES"
	PermCreateInvoices Permission = "CREATE_INVOICES"
	PermViewAttendance Permission = "VIEW_ATTENDANCE"
	PermViewWorkouts   Permission = "VIEW_WORKOUTS"
	PermCreateWorkouts Permission = "CREATE_WORKOUTS"
	PermEditWorkouts   Permission = "EDIT_WORKOUTS"
	PermDeleteWorkouts Permission = "DELETE_WORKOUTS"
	PermViewDiets      Permission = "VIEW_DIETS"
	PermCreateDiets    Permission = "CREATE_DIETS"
	PermEditDiets      Permission = "EDIT_DIETS"
	PermDeleteDiets    Permission = "DELETE_DIETS"
	PermViewReports    Permission = "VIEW_REPORTS"
	PermViewStaff      Permission = "VIEW_STAFF"
	PermCreateStaff    Permission = "CREATE_STAFF"
	PermEditStaff      Permission = "EDIT_STAFF"
	PermDeleteStaff    Permission = "DELETE_STAFF"
	PermViewSettings   Permission = "VIEW_SETTINGS"
	PermEditSettings   Permission = "EDIT_SETTINGS"
)

// User represents a staff account that can sign in to the CRM.
type User struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole     `json:"role" gorm:"size:20;not null;default:'HELPER';index"`
	Permissions  []Permission `json:"permissions" gorm:"serializer:json"` // Explicit set, authoritative only for CUSTOM
	Phone        string       `json:"phone,omitempty" gorm:"size:20"`
	Avatar       string       `json:"avatar,omitempty" gorm:"size:512"`
	Active       bool         `json:"active" gorm:"default:true;index"`
	LastLogin    *time.Time   `json:"last_login,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	TrainedMembers []Member `json:"trained_members,omitempty" gorm:"foreignKey:TrainerID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
