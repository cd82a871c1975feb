package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gymcrm/internal/model"
	"gymcrm/internal/repository"
)

// ActivityService records and reads the audit trail.
type ActivityService interface {
	// Log writes an audit row best-effort: failures are logged server-side
	// and never fail the action that triggered them.
	Log(ctx context.Context, userID uuid.UUID, action, entity, entityID string, details map[string]any)
	Recent(ctx context.Context, limit int) ([]model.ActivityLog, error)
}

type activityService struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(repo repository.ActivityRepository, logger zerolog.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

func (s *activityService) Log(ctx context.Context, userID uuid.UUID, action, entity, entityID string, details map[string]any) {
	entry := &model.ActivityLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  details,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error().Err(err).
			Str("action", action).
			Str("entity", entity).
			Msg("activity log write failed")
	}
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	if limit < 1 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}
