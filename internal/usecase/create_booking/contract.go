package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetWithFilter внутри транзакции блокирует строки дня (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Notifier интерфейс отправки уведомлений о новом бронировании.
// Все методы best-effort: ошибки логируются внутри и не влияют на результат.
type Notifier interface {
	NotifyBookingRequested(ctx context.Context, booking *domain.Booking)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	// DoSerializable выполняет функцию в транзакции уровня SERIALIZABLE
	// с повтором при конфликтах сериализации
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
