package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// LeadRepository defines lead persistence operations.
type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	Update(ctx context.Context, lead *model.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error)
	List(ctx context.Context, limit int) ([]model.Lead, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[model.LeadStatus]int64, error)
	CountBySource(ctx context.Context) (map[model.LeadSource]int64, error)
	ListFollowUpsBetween(ctx context.Context, from, to time.Time) ([]model.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// Update saves the full record. Concurrent updates on the same lead race
// with last-write-wins semantics; no locking is taken.
func (r *leadRepository) Update(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns the newest leads up to limit.
func (r *leadRepository) List(ctx context.Context, limit int) ([]model.Lead, error) {
	var leads []model.Lead
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Lead{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type statusCount struct {
	Status model.LeadStatus
	Count  int64
}

func (r *leadRepository) CountByStatus(ctx context.Context) (map[model.LeadStatus]int64, error) {
	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&model.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.LeadStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type sourceCount struct {
	Source model.LeadSource
	Count  int64
}

func (r *leadRepository) CountBySource(ctx context.Context) (map[model.LeadSource]int64, error) {
	var rows []sourceCount
	if err := r.db.WithContext(ctx).Model(&model.Lead{}).
		Select("source, COUNT(*) AS count").
		Group("source").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.LeadSource]int64, len(rows))
	for _, row := range rows {
		counts[row.Source] = row.Count
	}
	return counts, nil
}

// ListFollowUpsBetween returns non-terminal leads whose follow-up date falls
// inside the window.
func (r *leadRepository) ListFollowUpsBetween(ctx context.Context, from, to time.Time) ([]model.Lead, error) {
	var leads []model.Lead
	if err := r.db.WithContext(ctx).
		Where("follow_up_date BETWEEN ? AND ?", from, to).
		Where("status NOT IN ?", []model.LeadStatus{model.LeadConverted, model.LeadLost}).
		Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
