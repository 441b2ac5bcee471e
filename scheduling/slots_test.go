package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlots_BusinessDay(t *testing.T) {
	slots := Slots(9, 18, 30*time.Minute)

	assert.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "slots must be strictly increasing")
	}
}

func TestSlots_EmptyWindow(t *testing.T) {
	assert.Empty(t, Slots(9, 9, 30*time.Minute))
	assert.Empty(t, Slots(18, 9, 30*time.Minute))
}

func TestSlots_InvalidStep(t *testing.T) {
	assert.Empty(t, Slots(9, 18, 0))
	assert.Empty(t, Slots(9, 18, -time.Minute))
}

func TestSlots_HourlyStep(t *testing.T) {
	slots := Slots(10, 13, time.Hour)
	assert.Equal(t, []string{"10:00", "11:00", "12:00"}, slots)
}

func TestSlots_Restartable(t *testing.T) {
	first := Slots(9, 18, 30*time.Minute)
	second := Slots(9, 18, 30*time.Minute)
	assert.Equal(t, first, second)
}
