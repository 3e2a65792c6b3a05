package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdayKey(t *testing.T) {
	// 2025-10-13 - понедельник
	assert.Equal(t, "monday", WeekdayKey(date(2025, 10, 13)))
	assert.Equal(t, "sunday", WeekdayKey(date(2025, 10, 19)))
	assert.Equal(t, "saturday", WeekdayKey(date(2025, 10, 18)))
}

func TestWeekSchedule_HoursFor(t *testing.T) {
	ws := WeekSchedule{
		"monday":  {Start: "09:00", End: "18:00", Active: true},
		"tuesday": {Start: "09:00", End: "18:00", Active: false},
	}

	hours, ok := ws.HoursFor(date(2025, 10, 13)) // понедельник
	require.True(t, ok)
	assert.Equal(t, DayHours{Start: "09:00", End: "18:00", Active: true}, hours)

	// Неактивный день закрыт
	_, ok = ws.HoursFor(date(2025, 10, 14)) // вторник
	assert.False(t, ok)

	// Отсутствующий день закрыт
	_, ok = ws.HoursFor(date(2025, 10, 15)) // среда
	assert.False(t, ok)
}

func TestWeekSchedule_Validate(t *testing.T) {
	valid := WeekSchedule{
		"monday": {Start: "09:00", End: "18:00", Active: true},
		"sunday": {Active: false},
	}
	assert.NoError(t, valid.Validate())

	unknownKey := WeekSchedule{"funday": {Start: "09:00", End: "18:00", Active: true}}
	assert.Error(t, unknownKey.Validate())

	invertedRange := WeekSchedule{"monday": {Start: "18:00", End: "09:00", Active: true}}
	assert.Error(t, invertedRange.Validate())

	badFormat := WeekSchedule{"monday": {Start: "9am", End: "18:00", Active: true}}
	assert.Error(t, badFormat.Validate())

	// Для неактивного дня время не проверяется
	inactiveBad := WeekSchedule{"monday": {Start: "bad", End: "worse", Active: false}}
	assert.NoError(t, inactiveBad.Validate())
}

func TestProfessional_IsDayOpen(t *testing.T) {
	p := &Professional{
		IsActive: true,
		WorkingHours: WeekSchedule{
			"monday": {Start: "09:00", End: "18:00", Active: true},
		},
	}

	now := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC) // понедельник

	// Сегодняшний рабочий день открыт
	assert.True(t, p.IsDayOpen(date(2025, 10, 13), now))

	// Прошедшая дата всегда закрыта, даже рабочий понедельник
	assert.False(t, p.IsDayOpen(date(2025, 10, 6), now))

	// Будущий понедельник открыт
	assert.True(t, p.IsDayOpen(date(2025, 10, 20), now))

	// День без записи в расписании закрыт
	assert.False(t, p.IsDayOpen(date(2025, 10, 14), now))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, IsSameDay(date(2025, 10, 13), time.Date(2025, 10, 13, 23, 59, 0, 0, time.UTC)))
	assert.False(t, IsSameDay(date(2025, 10, 13), date(2025, 10, 14)))
}
