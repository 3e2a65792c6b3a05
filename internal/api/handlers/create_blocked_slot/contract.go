package create_blocked_slot

import (
	"context"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
)

type BlockedSlotService interface {
	Create(ctx context.Context, req blockedslots.CreateBlockRequest) (*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
