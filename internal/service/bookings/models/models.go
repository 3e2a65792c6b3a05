package models

import (
	"errors"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID string  `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	ProfessionalID  int64  `json:"professionalId"`
	ServiceID       int64  `json:"serviceId"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ClientID    string  `json:"clientId,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Notes       *string `json:"notes,omitempty"`

	// Денормализованные данные услуги
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID             int64   `json:"id"`
	ProfessionalID int64   `json:"professionalId"`
	BlockDate      string  `json:"blockDate"` // "2025-10-15"
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Reason         string  `json:"reason,omitempty"`
	FullDay        bool    `json:"fullDay"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AgendaResponse расписание профессионала на день
type AgendaResponse struct {
	Date         string                `json:"date"`
	Bookings     []BookingResponse     `json:"bookings"`
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ProfessionalID:  b.ProfessionalID,
		ServiceID:       b.ServiceID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ClientID:        b.ClientID,
		ClientName:      b.ClientName,
		ClientEmail:     b.ClientEmail,
		ClientPhone:     b.ClientPhone,
		Notes:           b.Notes,
		ServiceName:     b.ServiceName,
		ServicePrice:    b.ServicePrice,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainBlockedSlot конвертирует domain блокировку в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}

	return &BlockedSlotResponse{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		BlockDate:      b.BlockDate.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Reason:         b.Reason,
		FullDay:        b.IsFullDay(),
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain блокировок в DTO
func FromDomainBlockedSlotList(blocks []*domain.BlockedSlot) []BlockedSlotResponse {
	resp := make([]BlockedSlotResponse, len(blocks))
	for i, block := range blocks {
		if blockResp := FromDomainBlockedSlot(block); blockResp != nil {
			resp[i] = *blockResp
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
