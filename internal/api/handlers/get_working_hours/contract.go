package get_working_hours

import (
	"context"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

type WorkingHoursService interface {
	Get(ctx context.Context, professionalID int64) (domain.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
