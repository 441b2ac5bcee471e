package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SlotLock serializes the check-then-write window of booking mutations
// with a short-lived Redis SETNX lock per (staff, date, time) slot. Two
// concurrent requests for the same slot cannot both pass the
// availability check while one holds the lock.
type SlotLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSlotLock(client *redis.Client, logger *zap.Logger) *SlotLock {
	return &SlotLock{client: client, ttl: 15 * time.Second, logger: logger}
}

func slotKey(staffID uuid.UUID, date time.Time, timeOfDay string) string {
	return fmt.Sprintf("slotlock:%s:%s:%s", staffID, date.Format("2006-01-02"), timeOfDay)
}

// Acquire takes the lock for the slot. A Redis failure is logged and
// treated as acquired so an outage never blocks bookings; the partial
// unique index on bookings still rejects conflicting commits.
func (l *SlotLock) Acquire(ctx context.Context, staffID uuid.UUID, date time.Time, timeOfDay string) bool {
	ok, err := l.client.SetNX(ctx, slotKey(staffID, date, timeOfDay), "1", l.ttl).Result()
	if err != nil {
		l.logger.Error("slot lock unavailable, proceeding without it",
			zap.String("staffId", staffID.String()),
			zap.Error(err),
		)
		return true
	}
	return ok
}

// Release drops the lock after the mutation commits or aborts.
func (l *SlotLock) Release(ctx context.Context, staffID uuid.UUID, date time.Time, timeOfDay string) {
	if err := l.client.Del(ctx, slotKey(staffID, date, timeOfDay)).Err(); err != nil {
		l.logger.Warn("failed to release slot lock", zap.Error(err))
	}
}
