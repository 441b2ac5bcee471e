// Package scheduling owns appointment slot enumeration and the
// conflict-avoidance check used by every booking write path.
package scheduling

import (
	"fmt"
	"time"
)

// DefaultSlotInterval is the booking granularity offered to customers.
const DefaultSlotInterval = 30 * time.Minute

// Slots enumerates bookable time-of-day values between openHour
// (inclusive) and closeHour (exclusive) at the given step, formatted as
// zero-padded "HH:MM". openHour == closeHour yields no slots.
func Slots(openHour, closeHour int, step time.Duration) []string {
	if step <= 0 || closeHour <= openHour {
		return nil
	}

	var slots []string
	open := time.Duration(openHour) * time.Hour
	end := time.Duration(closeHour) * time.Hour
	for t := open; t < end; t += step {
		h := int(t / time.Hour)
		m := int(t % time.Hour / time.Minute)
		slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
	}
	return slots
}
