package create_booking

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	BookingDate    time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")

	ClientID    string  // Идентификатор клиента (опционально для гостей)
	ClientName  string  // Имя клиента
	ClientEmail string  // Email клиента
	ClientPhone string  // Телефон клиента
	Notes       *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ProfessionalID  int64            // ID профессионала
	ServiceID       int64            // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования (всегда pending)

	ClientID    string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги на момент создания
	ServicePrice float64 // Цена услуги на момент создания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// FromDomainBooking конвертирует доменную модель в ответ use case
func FromDomainBooking(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		ProfessionalID:  booking.ProfessionalID,
		ServiceID:       booking.ServiceID,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		DurationMinutes: booking.DurationMinutes,
		Status:          string(booking.Status),
		ClientID:        booking.ClientID,
		ClientName:      booking.ClientName,
		ClientEmail:     booking.ClientEmail,
		ClientPhone:     booking.ClientPhone,
		Notes:           booking.Notes,
		ServiceName:     booking.ServiceName,
		ServicePrice:    booking.ServicePrice,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
