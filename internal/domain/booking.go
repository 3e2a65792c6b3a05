package domain

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a client appointment in the salon
type Booking struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64

	BookingDate     time.Time // Календарная дата без времени и таймзоны
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	ClientID    string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string

	// Denormalized service snapshot, frozen at creation time so that
	// later edits to the service do not rewrite booking history
	ServiceName  string
	ServicePrice float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlocksSlot returns true if the booking occupies its time slot.
// Only pending and confirmed bookings block it; cancelled and completed
// bookings free the slot.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true for statuses with no outgoing transitions
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// Interval returns the half-open minute interval [start, start+duration)
// the booking occupies within its day.
func (b *Booking) Interval() (start, end int, err error) {
	start, err = b.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, start + b.DurationMinutes, nil
}

// CanTransitionTo validates the booking status state machine:
// pending -> {confirmed, cancelled}; confirmed -> {completed, cancelled};
// cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// IsTerminal returns true for cancelled and completed
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsValid returns true for a known booking status value
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований профессионала
type BookingsFilter struct {
	ProfessionalID int64          // Обязательный параметр
	Date           *time.Time     // Конкретная дата (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	OnlyBlocking   bool           // Только занимающие слот (pending/confirmed)
}
