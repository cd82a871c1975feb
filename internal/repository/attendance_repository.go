package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymcrm/internal/model"
)

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	Update(ctx context.Context, attendance *model.Attendance) error
	FindByMemberAndDate(ctx context.Context, memberID uuid.UUID, date time.Time) (*model.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]model.Attendance, error)
	ListByMemberBetween(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]model.Attendance, error)
	CountPerDay(ctx context.Context, from, to time.Time) (map[string]int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) Update(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepository) FindByMemberAndDate(ctx context.Context, memberID uuid.UUID, date time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	if err := r.db.WithContext(ctx).
		Where("member_id = ? AND date = ?", memberID, date).
		First(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]model.Attendance, error) {
	var rows []model.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Where("date = ?", date).
		Order("check_in ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *attendanceRepository) ListByMemberBetween(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]model.Attendance, error) {
	var rows []model.Attendance
	if err := r.db.WithContext(ctx).
		Where("member_id = ? AND date BETWEEN ? AND ?", memberID, from, to).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountPerDay returns visit counts keyed by date (YYYY-MM-DD).
func (r *attendanceRepository) CountPerDay(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Day   string
		Count int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Select("DATE_FORMAT(date, '%Y-%m-%d') AS day, COUNT(*) AS count").
		Where("date BETWEEN ? AND ?", from, to).
		Group("day").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Day] = row.Count
	}
	return out, nil
}
