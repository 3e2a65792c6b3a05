package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// Slot represents a candidate appointment start time on the fixed
// 30-minute grid, tagged with its availability
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// GenerateSlots перечисляет кандидатов времени начала на сетке
// SlotStepMinutes внутри рабочего окна дня и помечает каждый флагом
// доступности. Недоступные слоты не скрываются: клиент должен видеть,
// что день занят, а не что расписание пустое.
//
// Слот недоступен, если:
//   - дата "сегодня" и время начала не строго в будущем относительно now;
//   - интервал [t, t+duration) пересекается с активным бронированием;
//   - интервал [t, t+duration) пересекается с блокировкой администратора.
//
// Кандидат, чьё окончание выходит за конец рабочего дня, не создается
// вовсе: услуга, заканчивающаяся ровно в закрытие, допустима, минутой
// позже - нет.
func GenerateSlots(
	hours DayHours,
	serviceDuration int,
	date time.Time,
	now time.Time,
	bookings []*Booking,
	blocks []*BlockedSlot,
) ([]Slot, error) {
	if serviceDuration <= 0 {
		serviceDuration = DefaultServiceDurationMinutes
	}

	dayStart, err := hours.Start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours start: %w", err)
	}
	dayEnd, err := hours.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("working hours end: %w", err)
	}

	isToday := IsSameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]Slot, 0, (dayEnd-dayStart)/SlotStepMinutes+1)

	for t := dayStart; t+serviceDuration <= dayEnd; t += SlotStepMinutes {
		startTime, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, err
		}

		available := true

		// Слоты сегодняшнего дня должны начинаться строго в будущем
		if isToday && t <= nowMinutes {
			available = false
		}

		if available && overlapsBooking(t, t+serviceDuration, bookings) {
			available = false
		}

		if available && overlapsBlock(t, t+serviceDuration, blocks) {
			available = false
		}

		slots = append(slots, Slot{StartTime: startTime, Available: available})
	}

	return slots, nil
}

// SlotAvailable возвращает true, если start присутствует в сетке слотов
// и помечен доступным. Используется аллокатором для серверной
// перепроверки выбранного клиентом слота.
func SlotAvailable(slots []Slot, start types.TimeString) bool {
	for _, slot := range slots {
		if slot.StartTime == start {
			return slot.Available
		}
	}
	return false
}

// overlapsBooking проверяет пересечение интервала с активными бронированиями
func overlapsBooking(start, end int, bookings []*Booking) bool {
	for _, booking := range bookings {
		if !booking.BlocksSlot() {
			continue
		}
		bStart, bEnd, err := booking.Interval()
		if err != nil {
			// Бронирование с нечитаемым временем не должно ронять выдачу
			continue
		}
		if Overlaps(start, end, bStart, bEnd) {
			return true
		}
	}
	return false
}

// overlapsBlock проверяет пересечение интервала с блокировками
func overlapsBlock(start, end int, blocks []*BlockedSlot) bool {
	for _, block := range blocks {
		bStart, bEnd, err := block.Interval()
		if err != nil {
			continue
		}
		if Overlaps(start, end, bStart, bEnd) {
			return true
		}
	}
	return false
}
