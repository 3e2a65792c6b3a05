package create_booking

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	createBooking "github.com/m04kA/IS-SalonBookingService/internal/usecase/create_booking"
	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ServiceID      int64   `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"` // "2025-10-15"
	StartTime      string  `json:"startTime"`   // "10:00"
	ClientID       string  `json:"clientId,omitempty"`
	ClientName     string  `json:"clientName"`
	ClientEmail    string  `json:"clientEmail"`
	ClientPhone    string  `json:"clientPhone"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProfessionalID  int64   `json:"professionalId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientID        string  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		BookingDate:    bookingDate,
		StartTime:      startTime,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		ClientEmail:    r.ClientEmail,
		ClientPhone:    r.ClientPhone,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ClientEmail:     resp.ClientEmail,
		ClientPhone:     resp.ClientPhone,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
