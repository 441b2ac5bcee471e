package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingStore is the storage surface the availability logic needs.
type BookingStore interface {
	// CountActive returns the number of bookings in status pending or
	// confirmed at the exact (staff, date, time) triple, optionally
	// excluding one booking id.
	CountActive(ctx context.Context, staffID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (int64, error)

	// BookedTimes returns the "HH:MM" values of active bookings for a
	// staff member on a date.
	BookedTimes(ctx context.Context, staffID uuid.UUID, date time.Time) ([]string, error)
}

// Checker decides whether a slot is free for a staff member.
type Checker struct {
	store  BookingStore
	logger *zap.Logger
}

func NewChecker(store BookingStore, logger *zap.Logger) *Checker {
	return &Checker{store: store, logger: logger}
}

// IsSlotAvailable reports whether a booking at (staffID, date,
// timeOfDay) would collide with an existing active booking. excludeID is
// set on reschedule so a booking does not conflict with itself.
//
// Fails open: a storage error is logged and the slot reported available.
// Double-booking is possible in that window; the slot lock and the
// partial unique index on bookings are the hard backstops.
func (c *Checker) IsSlotAvailable(ctx context.Context, date time.Time, timeOfDay string, staffID uuid.UUID, excludeID *uuid.UUID) bool {
	count, err := c.store.CountActive(ctx, staffID, date, timeOfDay, excludeID)
	if err != nil {
		c.logger.Error("availability check failed, treating slot as available",
			zap.String("staffId", staffID.String()),
			zap.String("date", date.Format("2006-01-02")),
			zap.String("time", timeOfDay),
			zap.Error(err),
		)
		return true
	}
	return count == 0
}

// FreeSlots enumerates the offerable slots for a staff member on a date:
// the working-hours window minus times already taken by active bookings.
// A storage error degrades to the full window (same fail-open policy).
func (c *Checker) FreeSlots(ctx context.Context, staffID uuid.UUID, date time.Time, openHour, closeHour int, step time.Duration) []string {
	all := Slots(openHour, closeHour, step)
	if len(all) == 0 {
		return nil
	}

	booked, err := c.store.BookedTimes(ctx, staffID, date)
	if err != nil {
		c.logger.Error("failed to load booked times, offering full window",
			zap.String("staffId", staffID.String()),
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err),
		)
		return all
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	free := make([]string, 0, len(all))
	for _, slot := range all {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free
}
