package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional_id must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id must be positive", ErrInvalidInput)
	}
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	return nil
}

// validateContact проверяет контактные данные клиента. Вызывается после
// проверок существования и доступности слота: при несуществующем мастере
// или занятом слоте клиент получает not found / conflict, а не validation.
func validateContact(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientEmail) == "" {
		return fmt.Errorf("%w: client_email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client_phone is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
