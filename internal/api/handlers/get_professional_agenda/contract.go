package get_professional_agenda

import (
	"context"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetAgenda(ctx context.Context, professionalID int64, date time.Time) (*models.AgendaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
