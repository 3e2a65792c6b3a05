package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo     BookingRepository
	blockedSlotRepo BlockedSlotRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	blockedSlotRepo BlockedSlotRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		blockedSlotRepo: blockedSlotRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента,
// опционально фильтруя по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetAgenda получает расписание профессионала на день: бронирования и
// блокировки. Возвращает все бронирования дня независимо от статуса -
// панель администратора показывает в том числе отменённые и завершённые.
func (s *Service) GetAgenda(ctx context.Context, professionalID int64, date time.Time) (*models.AgendaResponse, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professional id must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		ProfessionalID: professionalID,
		Date:           &date,
	})
	if err != nil {
		s.logger.Error("GetAgenda: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetAgenda - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockedSlotRepo.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		s.logger.Error("GetAgenda: blocked slots error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetAgenda - blocked slots error: %v", ErrInternal, err)
	}

	return &models.AgendaResponse{
		Date:         date.Format(domain.DateFormat),
		Bookings:     models.FromDomainBookingList(bookings).Bookings,
		BlockedSlots: models.FromDomainBlockedSlotList(blocks),
	}, nil
}

// UpdateStatus переводит бронирование в новый статус с проверкой
// допустимости перехода: pending -> {confirmed, cancelled},
// confirmed -> {completed, cancelled}. Терминальные статусы
// (cancelled, completed) не меняются.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus string) (*models.BookingResponse, error) {
	status, err := models.ToDomainBookingStatus(newStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", newStatus, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.Status.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d", booking.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved %s -> %s", id, booking.Status, status)

	booking.Status = status
	if status == domain.StatusCancelled {
		now := time.Now()
		booking.CancelledAt = &now
	}

	s.notifier.NotifyStatusChanged(ctx, booking, status)

	return models.FromDomainBooking(booking), nil
}
