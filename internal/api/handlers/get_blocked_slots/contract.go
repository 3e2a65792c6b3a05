package get_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

type BlockedSlotService interface {
	List(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
