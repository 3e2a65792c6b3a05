package blockedslots

import (
	"context"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
