package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCompleted, BookingCancelled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).IsActive())
	assert.True(t, (&Booking{Status: BookingConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: BookingCancelled}).IsActive())
	assert.False(t, (&Booking{Status: BookingCompleted}).IsActive())
}

func TestBusinessProfileHoursFor(t *testing.T) {
	profile := BusinessProfile{WorkingHours: DefaultWorkingHours()}

	open, close, ok := profile.HoursFor("monday")
	assert.True(t, ok)
	assert.Equal(t, 9, open)
	assert.Equal(t, 18, close)

	_, _, ok = profile.HoursFor("sunday")
	assert.False(t, ok, "closed day should not return hours")

	_, _, ok = profile.HoursFor("someday")
	assert.False(t, ok)
}
