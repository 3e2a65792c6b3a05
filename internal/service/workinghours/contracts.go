package workinghours

import (
	"context"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	UpdateWorkingHours(ctx context.Context, id int64, hours domain.WeekSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
