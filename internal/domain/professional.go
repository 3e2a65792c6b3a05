package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// DayHours working-hours record for a single weekday
type DayHours struct {
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
	Active bool             `json:"active"`
}

// WeekSchedule weekly working hours keyed by weekday name (monday..sunday).
// An absent key means the day is closed.
type WeekSchedule map[string]DayHours

// Professional represents a service provider
type Professional struct {
	ID           int64
	Name         string
	IsActive     bool
	WorkingHours WeekSchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WeekdayKey derives the weekday key (monday..sunday) for a calendar date.
// The date is re-anchored to noon before deriving the weekday: date values
// arrive truncated to 00:00, and deriving the weekday straight from a
// midnight instant is fragile around local/UTC boundaries.
func WeekdayKey(date time.Time) string {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	return WeekdayKeys[int(noon.Weekday())]
}

// HoursFor returns the working-hours record governing the given date.
// The second result is false when the weekday has no active record.
func (ws WeekSchedule) HoursFor(date time.Time) (DayHours, bool) {
	hours, ok := ws[WeekdayKey(date)]
	if !ok || !hours.Active {
		return DayHours{}, false
	}
	return hours, true
}

// Validate проверяет ключи дней недели и инвариант start < end
// для каждого активного дня
func (ws WeekSchedule) Validate() error {
	for key, hours := range ws {
		if !isWeekdayKey(key) {
			return fmt.Errorf("unknown weekday key %q", key)
		}
		if !hours.Active {
			continue
		}
		if err := hours.Start.Validate(); err != nil {
			return fmt.Errorf("weekday %s: start: %v", key, err)
		}
		if err := hours.End.Validate(); err != nil {
			return fmt.Errorf("weekday %s: end: %v", key, err)
		}
		if !hours.Start.IsBefore(hours.End) {
			return fmt.Errorf("weekday %s: start %s must be before end %s", key, hours.Start, hours.End)
		}
	}
	return nil
}

// IsDayOpen reports whether the professional accepts bookings on the date.
// Dates strictly before today are always closed regardless of the schedule;
// a weekday without an active working-hours record is closed (fail safe:
// no configuration means no slots offered).
func (p *Professional) IsDayOpen(date, now time.Time) bool {
	if isDateInPast(date, now) {
		return false
	}
	_, open := p.WorkingHours.HoursFor(date)
	return open
}

func isWeekdayKey(key string) bool {
	for _, k := range WeekdayKeys {
		if k == key {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
