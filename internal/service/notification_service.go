package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"gymcrm/internal/cache"
	apperrors "gymcrm/internal/errors"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

const (
	// Leads whose follow-up is due within this window raise a notification.
	followUpWindow = 2 * time.Hour
	// Memberships ending within this many days raise an expiry notification.
	expiryHorizonDays = 7

	notifCountsKey = "notifications:counts"
	notifCountsTTL = time.Minute
)

// NotificationCounts summarizes open items per category for the header badge.
type NotificationCounts struct {
	Leads    int `json:"leads"`
	Payments int `json:"payments"`
	Members  int `json:"members"`
}

// NotificationService produces and reads in-app notifications. Check scans
// leads, memberships and payments and upserts one open notification per
// entity, so repeated polling never duplicates alerts.
type NotificationService interface {
	Check(ctx context.Context) (NotificationCounts, error)
	List(ctx context.Context, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	Dismiss(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	leadRepo         repository.LeadRepository
	membershipRepo   repository.MembershipRepository
	cache            *cache.Client
	logger           zerolog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	leadRepo repository.LeadRepository,
	membershipRepo repository.MembershipRepository,
	cacheClient *cache.Client,
	logger zerolog.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		leadRepo:         leadRepo,
		membershipRepo:   membershipRepo,
		cache:            cacheClient,
		logger:           logger,
	}
}

// Check runs the three scans and returns per-category counts. Counts are
// memoized briefly so the header polling stays cheap.
func (s *notificationService) Check(ctx context.Context) (NotificationCounts, error) {
	var counts NotificationCounts
	if s.cache.GetJSON(ctx, notifCountsKey, &counts) {
		return counts, nil
	}

	now := time.Now()

	leads, err := s.leadRepo.ListFollowUpsBetween(ctx, now, now.Add(followUpWindow))
	if err != nil {
		return counts, err
	}
	for i := range leads {
		lead := &leads[i]
		s.upsert(ctx, &model.Notification{
			Type:       model.NotifLeadFollowUp,
			Title:      "Lead follow-up due",
			Message:    fmt.Sprintf("Follow up with %s", lead.Name),
			EntityType: "Lead",
			EntityID:   lead.ID.String(),
			Metadata:   map[string]any{"phone": lead.Phone},
		})
	}
	counts.Leads = len(leads)

	expiring, err := s.membershipRepo.ListExpiringBetween(ctx, now, now.AddDate(0, 0, expiryHorizonDays))
	if err != nil {
		return counts, err
	}
	for i := range expiring {
		m := &expiring[i]
		name := ""
		if m.Member != nil {
			name = m.Member.Name
		}
		s.upsert(ctx, &model.Notification{
			Type:       model.NotifMembershipExpiring,
			Title:      "Membership expiring",
			Message:    fmt.Sprintf("%s's membership ends on %s", name, m.EndDate.Format("02 Jan 2006")),
			EntityType: "Membership",
			EntityID:   m.ID.String(),
		})
	}
	counts.Members = len(expiring)

	overdue, err := s.membershipRepo.ListOverdue(ctx, now)
	if err != nil {
		return counts, err
	}
	for i := range overdue {
		m := &overdue[i]
		name := ""
		if m.Member != nil {
			name = m.Member.Name
		}
		s.upsert(ctx, &model.Notification{
			Type:       model.NotifPaymentDue,
			Title:      "Payment overdue",
			Message:    fmt.Sprintf("%s's renewal payment is overdue", name),
			EntityType: "Membership",
			EntityID:   m.ID.String(),
		})
	}
	counts.Payments = len(overdue)

	s.cache.SetJSON(ctx, notifCountsKey, counts, notifCountsTTL)
	return counts, nil
}

// upsert creates the notification unless an open one already exists for the
// same type and entity. Failures are logged, never surfaced: a broken alert
// must not break the page that triggered the check.
func (s *notificationService) upsert(ctx context.Context, n *model.Notification) {
	existing, err := s.notificationRepo.FindOpenByTypeAndEntity(ctx, n.Type, n.EntityID)
	if err != nil && err != gorm.ErrRecordNotFound {
		s.logger.Error().Err(err).Str("type", string(n.Type)).Msg("notification lookup failed")
		return
	}
	if existing != nil {
		return
	}
	n.Status = model.NotifUnread
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("type", string(n.Type)).Msg("notification create failed")
	}
}

func (s *notificationService) List(ctx context.Context, limit int) ([]model.Notification, error) {
	if limit < 1 {
		limit = 20
	}
	return s.notificationRepo.ListOpen(ctx, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	now := time.Now()
	n.Status = model.NotifRead
	n.ReadAt = &now
	return s.notificationRepo.Update(ctx, n)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx, time.Now())
}

func (s *notificationService) Dismiss(ctx context.Context, id uuid.UUID) error {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	now := time.Now()
	n.Status = model.NotifDismissed
	n.DismissedAt = &now
	return s.notificationRepo.Update(ctx, n)
}
