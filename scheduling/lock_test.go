package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSlotLock_AcquireAndRelease(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	lock := NewSlotLock(client, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	key := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	mockRedis.ExpectSetNX(key, "1", 15*time.Second).SetVal(true)
	mockRedis.ExpectDel(key).SetVal(1)

	assert.True(t, lock.Acquire(ctx, staffID, date, "10:00"))
	lock.Release(ctx, staffID, date, "10:00")

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSlotLock_HeldByAnotherRequest(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	lock := NewSlotLock(client, zap.NewNop())

	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	key := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	mockRedis.ExpectSetNX(key, "1", 15*time.Second).SetVal(false)

	assert.False(t, lock.Acquire(context.Background(), staffID, date, "10:00"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSlotLock_FailsOpenOnRedisError(t *testing.T) {
	client, mockRedis := redismock.NewClientMock()
	lock := NewSlotLock(client, zap.NewNop())

	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	key := fmt.Sprintf("slotlock:%s:2024-06-01:10:00", staffID)
	mockRedis.ExpectSetNX(key, "1", 15*time.Second).SetErr(errors.New("connection refused"))

	assert.True(t, lock.Acquire(context.Background(), staffID, date, "10:00"),
		"a Redis outage must not block bookings")
}
