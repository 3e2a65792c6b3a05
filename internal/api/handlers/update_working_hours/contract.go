package update_working_hours

import (
	"context"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

type WorkingHoursService interface {
	Update(ctx context.Context, professionalID int64, hours domain.WeekSchedule) (domain.WeekSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
