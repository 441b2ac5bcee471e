package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CountActive(ctx context.Context, staffID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (int64, error) {
	args := m.Called(ctx, staffID, date, timeOfDay, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) BookedTimes(ctx context.Context, staffID uuid.UUID, date time.Time) ([]string, error) {
	args := m.Called(ctx, staffID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestIsSlotAvailable_OccupiedSlot(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// booking A is confirmed for this staff at 10:00; booking B must be rejected
	store.On("CountActive", ctx, staffID, date, "10:00", (*uuid.UUID)(nil)).Return(int64(1), nil)

	assert.False(t, checker.IsSlotAvailable(ctx, date, "10:00", staffID, nil))
	store.AssertExpectations(t)
}

func TestIsSlotAvailable_FreeSlot(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store.On("CountActive", ctx, staffID, date, "11:30", (*uuid.UUID)(nil)).Return(int64(0), nil)

	assert.True(t, checker.IsSlotAvailable(ctx, date, "11:30", staffID, nil))
}

func TestIsSlotAvailable_ExcludesSelfOnReschedule(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	bookingID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// rescheduling booking A onto its own slot: the store is asked to
	// exclude it and finds no other active booking there
	store.On("CountActive", ctx, staffID, date, "10:00", &bookingID).Return(int64(0), nil)

	assert.True(t, checker.IsSlotAvailable(ctx, date, "10:00", staffID, &bookingID))
	store.AssertExpectations(t)
}

func TestIsSlotAvailable_FailsOpenOnStoreError(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store.On("CountActive", ctx, staffID, date, "10:00", (*uuid.UUID)(nil)).
		Return(int64(0), errors.New("network error"))

	assert.True(t, checker.IsSlotAvailable(ctx, date, "10:00", staffID, nil),
		"checker must fail open on storage errors")
}

func TestFreeSlots_RemovesBookedTimes(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store.On("BookedTimes", ctx, staffID, date).Return([]string{"10:00", "14:30"}, nil)

	free := checker.FreeSlots(ctx, staffID, date, 9, 18, 30*time.Minute)

	assert.Len(t, free, 16)
	assert.NotContains(t, free, "10:00")
	assert.NotContains(t, free, "14:30")
	assert.Contains(t, free, "09:00")
	assert.Contains(t, free, "17:30")
}

func TestFreeSlots_ClosedDay(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	free := checker.FreeSlots(context.Background(), uuid.New(), time.Now(), 9, 9, 30*time.Minute)
	assert.Empty(t, free)
	store.AssertNotCalled(t, "BookedTimes")
}

func TestFreeSlots_FailsOpenOnStoreError(t *testing.T) {
	store := new(mockStore)
	checker := NewChecker(store, zap.NewNop())

	ctx := context.Background()
	staffID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store.On("BookedTimes", ctx, staffID, date).Return(nil, errors.New("timeout"))

	free := checker.FreeSlots(ctx, staffID, date, 9, 18, 30*time.Minute)
	assert.Len(t, free, 18, "full window is offered when booked times cannot be loaded")
}
