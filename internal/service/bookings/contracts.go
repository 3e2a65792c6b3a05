package bookings

import (
	"context"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// Notifier интерфейс отправки уведомлений о смене статуса.
// Best-effort: ошибки логируются внутри и не влияют на результат операции.
type Notifier interface {
	NotifyStatusChanged(ctx context.Context, booking *domain.Booking, status domain.BookingStatus)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
