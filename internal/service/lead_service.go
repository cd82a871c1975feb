package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// CreateLeadInput carries the fields captured for a new lead.
type CreateLeadInput struct {
	Name           string
	Phone          string
	Email          string
	Source         model.LeadSource
	InterestedPlan string
	Notes          string
	FollowUpDate   *time.Time
}

// UpdateLeadInput carries the editable lead fields; nil means unchanged.
type UpdateLeadInput struct {
	Name           *string
	Phone          *string
	Email          *string
	InterestedPlan *string
	Notes          *string
	FollowUpDate   *time.Time
}

// ConvertedContact is the lead data handed forward to pre-populate the
// member creation form. The member is never created by the conversion itself.
type ConvertedContact struct {
	LeadID uuid.UUID `json:"lead_id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone"`
	Email  string    `json:"email,omitempty"`
}

// LeadStats summarizes the pipeline.
type LeadStats struct {
	Total          int64                      `json:"total"`
	Converted      int64                      `json:"converted"`
	ConversionRate string                     `json:"conversion_rate"`
	ByStatus       map[model.LeadStatus]int64 `json:"by_status"`
	BySource       map[model.LeadSource]int64 `json:"by_source"`
}

// LeadService handles the leads pipeline, including the conversion workflow.
type LeadService interface {
	Create(ctx context.Context, sess *auth.Session, input CreateLeadInput) (*model.Lead, error)
	Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input UpdateLeadInput) (*model.Lead, error)
	UpdateStatus(ctx context.Context, sess *auth.Session, id uuid.UUID, status model.LeadStatus) (*model.Lead, error)
	Convert(ctx context.Context, sess *auth.Session, id uuid.UUID, confirm bool) (*ConvertedContact, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, limit int) ([]model.Lead, error)
	GroupedByStatus(ctx context.Context) (map[model.LeadStatus][]model.Lead, error)
	Stats(ctx context.Context) (*LeadStats, error)
	Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error
}

type leadService struct {
	leadRepo repository.LeadRepository
	activity ActivityService
}

// NewLeadService creates a new lead service.
func NewLeadService(leadRepo repository.LeadRepository, activity ActivityService) LeadService {
	return &leadService{leadRepo: leadRepo, activity: activity}
}

// Create registers a new lead: status NEW, assigned to the creator, with the
// first contact stamped now.
func (s *leadService) Create(ctx context.Context, sess *auth.Session, input CreateLeadInput) (*model.Lead, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermCreateLeads) {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	lead := &model.Lead{
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Source:          input.Source,
		Status:          model.LeadNew,
		InterestedPlan:  input.InterestedPlan,
		Notes:           input.Notes,
		FollowUpDate:    input.FollowUpDate,
		LastContactDate: &now,
		AssignedTo:      sess.UserID,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "CREATE", "Lead", lead.ID.String(), map[string]any{
		"name":   lead.Name,
		"source": lead.Source,
	})
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, input UpdateLeadInput) (*model.Lead, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditLeads) {
		return nil, apperrors.ErrUnauthorized
	}

	lead, err := s.findLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.InterestedPlan != nil {
		lead.InterestedPlan = *input.InterestedPlan
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.FollowUpDate != nil {
		lead.FollowUpDate = input.FollowUpDate
	}
	now := time.Now()
	lead.LastContactDate = &now

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

// UpdateStatus moves a lead through the pipeline. A transition to CONVERTED
// stamps convertedDate; LOST does not. On failure the prior status stands
// and no retry is attempted.
func (s *leadService) UpdateStatus(ctx context.Context, sess *auth.Session, id uuid.UUID, status model.LeadStatus) (*model.Lead, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditLeads) {
		return nil, apperrors.ErrUnauthorized
	}

	lead, err := s.findLead(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lead.Status = status
	lead.LastContactDate = &now
	if status == model.LeadConverted {
		lead.ConvertedDate = &now
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("update lead status: %w", err)
	}

	s.activity.Log(ctx, sess.UserID, "UPDATE", "Lead", lead.ID.String(), map[string]any{
		"status": status,
	})
	return lead, nil
}

// Convert executes the staff decision on a lead. Confirm marks it CONVERTED
// and returns the captured contact fields so the caller can pre-populate a
// member form; decline marks it LOST and returns no contact. The status
// write and any subsequent member creation are separate, independently
// failing steps: a lead left CONVERTED with no member is accepted.
func (s *leadService) Convert(ctx context.Context, sess *auth.Session, id uuid.UUID, confirm bool) (*ConvertedContact, error) {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditLeads) {
		return nil, apperrors.ErrUnauthorized
	}

	lead, err := s.findLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead.Status.Terminal() {
		return nil, apperrors.ErrLeadFinalized
	}

	if !confirm {
		if _, err := s.UpdateStatus(ctx, sess, id, model.LeadLost); err != nil {
			return nil, err
		}
		return nil, nil
	}

	updated, err := s.UpdateStatus(ctx, sess, id, model.LeadConverted)
	if err != nil {
		return nil, err
	}

	return &ConvertedContact{
		LeadID: updated.ID,
		Name:   updated.Name,
		Phone:  updated.Phone,
		Email:  updated.Email,
	}, nil
}

func (s *leadService) Get(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	return s.findLead(ctx, id)
}

func (s *leadService) List(ctx context.Context, limit int) ([]model.Lead, error) {
	if limit < 1 {
		limit = 500
	}
	return s.leadRepo.List(ctx, limit)
}

// GroupedByStatus returns the newest 100 leads bucketed by pipeline stage.
func (s *leadService) GroupedByStatus(ctx context.Context) (map[model.LeadStatus][]model.Lead, error) {
	leads, err := s.leadRepo.List(ctx, 100)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	grouped := map[model.LeadStatus][]model.Lead{
		model.LeadNew:       {},
		model.LeadContacted: {},
		model.LeadFollowUp:  {},
		model.LeadConverted: {},
		model.LeadLost:      {},
	}
	for _, lead := range leads {
		grouped[lead.Status] = append(grouped[lead.Status], lead)
	}
	return grouped, nil
}

func (s *leadService) Stats(ctx context.Context) (*LeadStats, error) {
	total, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	byStatus, err := s.leadRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count leads by status: %w", err)
	}
	bySource, err := s.leadRepo.CountBySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("count leads by source: %w", err)
	}

	converted := byStatus[model.LeadConverted]
	rate := "0"
	if total > 0 {
		rate = fmt.Sprintf("%.1f", float64(converted)/float64(total)*100)
	}

	return &LeadStats{
		Total:          total,
		Converted:      converted,
		ConversionRate: rate,
		ByStatus:       byStatus,
		BySource:       bySource,
	}, nil
}

func (s *leadService) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil || !authz.Allow(sess.Role, sess.Permissions, model.PermEditLeads) {
		return apperrors.ErrUnauthorized
	}
	if _, err := s.findLead(ctx, id); err != nil {
		return err
	}
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	s.activity.Log(ctx, sess.UserID, "DELETE", "Lead", id.String(), nil)
	return nil
}

func (s *leadService) findLead(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}
