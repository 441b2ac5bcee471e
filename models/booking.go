package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ServiceID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null"`
	// Partial unique index backs the conflict-avoidance invariant: at
	// most one active booking per (staff, date, time) triple.
	StaffID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_staff_slot,priority:1,where:status = 'pending' OR status = 'confirmed'"`

	ScheduledDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_staff_slot,priority:2"`
	ScheduledTime string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_staff_slot,priority:3"` // "HH:MM"

	Status string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	Price  float64 `gorm:"type:decimal(10,2);not null"`
	Notes  string

	Service  Service `gorm:"foreignKey:ServiceID"`
	Customer User    `gorm:"foreignKey:CustomerID"`
	Staff    *User   `gorm:"foreignKey:StaffID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// IsActive reports whether the booking counts toward slot conflicts.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// IsTerminal reports whether the booking has left the normal flow.
// Terminal bookings can only be removed by an admin delete.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingCancelled || b.Status == BookingCompleted
}

// CanTransition validates a status change against the booking state machine:
//
//	pending   -> confirmed, cancelled
//	confirmed -> completed, cancelled
func CanTransition(from, to string) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}
