package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the single salon profile row: contact details,
// working hours and notification toggles. Working hours drive the
// bookable slot window per weekday.
type BusinessProfile struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string
	Phone   string
	Email   string

	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'"`

	AppointmentReminders  bool `gorm:"default:true"`
	WhatsAppNotifications bool `gorm:"default:false"`
	SMSNotifications      bool `gorm:"default:false"`

	gorm.Model
}

func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// DefaultWorkingHours is used when a profile is created without explicit hours.
func DefaultWorkingHours() JSONB {
	return JSONB{
		"monday":    map[string]interface{}{"open": 9, "close": 18, "closed": false},
		"tuesday":   map[string]interface{}{"open": 9, "close": 18, "closed": false},
		"wednesday": map[string]interface{}{"open": 9, "close": 18, "closed": false},
		"thursday":  map[string]interface{}{"open": 9, "close": 18, "closed": false},
		"friday":    map[string]interface{}{"open": 9, "close": 18, "closed": false},
		"saturday":  map[string]interface{}{"open": 9, "close": 19, "closed": false},
		"sunday":    map[string]interface{}{"open": 10, "close": 17, "closed": true},
	}
}

// HoursFor returns the open/close hours for a weekday name ("monday"...).
// The second return value is false when the salon is closed that day or
// the entry is missing/malformed.
func (p *BusinessProfile) HoursFor(weekday string) (open, close int, ok bool) {
	raw, found := p.WorkingHours[weekday]
	if !found {
		return 0, 0, false
	}
	day, isMap := raw.(map[string]interface{})
	if !isMap {
		return 0, 0, false
	}
	if closed, _ := day["closed"].(bool); closed {
		return 0, 0, false
	}
	open, okOpen := asHour(day["open"])
	close, okClose := asHour(day["close"])
	if !okOpen || !okClose {
		return 0, 0, false
	}
	return open, close, true
}

// JSONB round-trips numbers as float64
func asHour(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
