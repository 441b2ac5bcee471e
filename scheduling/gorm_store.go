package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
	"glowbook-backend/utils"
)

var activeStatuses = []string{models.BookingPending, models.BookingConfirmed}

// GormStore backs the availability checker with the bookings table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CountActive(ctx context.Context, staffID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("staff_id = ? AND scheduled_date = ? AND scheduled_time = ?",
			staffID, utils.BeginningOfDay(date), timeOfDay).
		Where("status IN ?", activeStatuses)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (s *GormStore) BookedTimes(ctx context.Context, staffID uuid.UUID, date time.Time) ([]string, error) {
	var times []string
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("staff_id = ? AND scheduled_date = ?", staffID, utils.BeginningOfDay(date)).
		Where("status IN ?", activeStatuses).
		Order("scheduled_time").
		Pluck("scheduled_time", &times).Error
	return times, err
}
