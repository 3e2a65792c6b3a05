package domain

// Slot grid constants
const (
	// SlotStepMinutes фиксированный шаг сетки слотов.
	// Не зависит от длительности услуги: услуга на 90 минут всё равно
	// начинается только на границе 30 минут.
	SlotStepMinutes = 30

	// DefaultServiceDurationMinutes длительность услуги, если не задана
	DefaultServiceDurationMinutes = 60
)

// Full-day block convention: администратор блокирует весь день
// интервалом 00:00-23:59
const (
	FullDayBlockStart = "00:00"
	FullDayBlockEnd   = "23:59"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength  = 500
	MaxReasonLength = 500
)

// BlockingStatuses статусы бронирований, занимающих слот.
// Используются при выборке конфликтующих бронирований.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// WeekdayKeys ключи дней недели в порядке time.Weekday (Sunday=0)
var WeekdayKeys = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}
