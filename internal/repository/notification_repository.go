package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// NotificationRepository defines in-app notification persistence operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	Update(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	FindOpenByTypeAndEntity(ctx context.Context, typ model.NotificationType, entityID string) (*model.Notification, error)
	ListOpen(ctx context.Context, limit int) ([]model.Notification, error)
	MarkAllRead(ctx context.Context, at time.Time) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// FindOpenByTypeAndEntity returns the non-dismissed notification for an
// entity, so the periodic check updates instead of duplicating.
func (r *notificationRepository) FindOpenByTypeAndEntity(ctx context.Context, typ model.NotificationType, entityID string) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.WithContext(ctx).
		Where("type = ? AND entity_id = ? AND status <> ?", typ, entityID, model.NotifDismissed).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListOpen returns non-dismissed notifications, newest first.
func (r *notificationRepository) ListOpen(ctx context.Context, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.WithContext(ctx).
		Where("status <> ?", model.NotifDismissed).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("status = ?", model.NotifUnread).
		Updates(map[string]interface{}{
			"status":  model.NotifRead,
			"read_at": at,
		}).Error
}
