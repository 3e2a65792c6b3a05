package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	professionalstore "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/professional"
	servicestore "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/service"
)

// UseCase создание бронирования с конфликт-безопасной проверкой слота
type UseCase struct {
	bookings      BookingRepository
	blockedSlots  BlockedSlotRepository
	professionals ProfessionalRepository
	services      ServiceRepository
	notifier      Notifier
	txManager     TxManager
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	bookings BookingRepository,
	blockedSlots BlockedSlotRepository,
	professionals ProfessionalRepository,
	services ServiceRepository,
	notifier Notifier,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:      bookings,
		blockedSlots:  blockedSlots,
		professionals: professionals,
		services:      services,
		notifier:      notifier,
		txManager:     txManager,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute создает бронирование в статусе pending.
// Доступность слота перепроверяется внутри сериализуемой транзакции с
// блокировкой бронирований дня: из двух конкурентных запросов на один
// слот ровно один получает бронирование, второй - ErrSlotNotAvailable.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	professional, err := uc.professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalstore.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProfessionalNotFound, req.ProfessionalID)
		}
		uc.logger.Error("create_booking: failed to get professional %d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: get professional: %v", ErrInternal, err)
	}
	if !professional.IsActive {
		return nil, fmt.Errorf("%w: id %d is inactive", ErrProfessionalNotFound, req.ProfessionalID)
	}

	service, err := uc.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("create_booking: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: id %d is inactive", ErrServiceNotFound, req.ServiceID)
	}

	booking := &domain.Booking{
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		BookingDate:     req.BookingDate,
		StartTime:       req.StartTime,
		DurationMinutes: service.EffectiveDuration(),
		Status:          domain.StatusPending,
		ClientID:        req.ClientID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Notes:           req.Notes,
		ServiceName:     service.Name,
		ServicePrice:    service.EffectivePrice(),
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.ensureSlotAvailable(txCtx, professional, service, req); err != nil {
			return err
		}
		if err := validateContact(req); err != nil {
			return err
		}

		created, err := uc.bookings.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: create booking: %w", ErrInternal, err)
		}
		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		uc.logger.Error("create_booking: transaction failed for professional %d at %s %s: %v",
			req.ProfessionalID, req.BookingDate.Format(domain.DateFormat), req.StartTime, err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("create_booking: booking %d created for professional %d at %s %s",
		booking.ID, booking.ProfessionalID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)

	uc.notifier.NotifyBookingRequested(ctx, booking)

	return FromDomainBooking(booking), nil
}

// ensureSlotAvailable перепроверяет доступность запрошенного слота по
// актуальному состоянию дня. Вызывается внутри транзакции: выборка
// бронирований берет строки дня под FOR UPDATE.
func (uc *UseCase) ensureSlotAvailable(ctx context.Context, professional *domain.Professional, service *domain.Service, req *Request) error {
	now := uc.timeProvider.Now()

	if !professional.IsDayOpen(req.BookingDate, now) {
		return fmt.Errorf("%w: professional %d is not working on %s",
			ErrSlotNotAvailable, req.ProfessionalID, req.BookingDate.Format(domain.DateFormat))
	}

	hours, ok := professional.WorkingHours.HoursFor(req.BookingDate)
	if !ok {
		return fmt.Errorf("%w: professional %d is not working on %s",
			ErrSlotNotAvailable, req.ProfessionalID, req.BookingDate.Format(domain.DateFormat))
	}

	date := req.BookingDate
	bookings, err := uc.bookings.GetWithFilter(ctx, domain.BookingsFilter{
		ProfessionalID: req.ProfessionalID,
		Date:           &date,
		OnlyBlocking:   true,
	})
	if err != nil {
		return fmt.Errorf("%w: get bookings: %w", ErrInternal, err)
	}

	blocks, err := uc.blockedSlots.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.BookingDate)
	if err != nil {
		return fmt.Errorf("%w: get blocked slots: %w", ErrInternal, err)
	}

	slots, err := domain.GenerateSlots(hours, service.EffectiveDuration(), req.BookingDate, now, bookings, blocks)
	if err != nil {
		return fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	if !domain.SlotAvailable(slots, req.StartTime) {
		return fmt.Errorf("%w: professional %d at %s %s",
			ErrSlotNotAvailable, req.ProfessionalID, req.BookingDate.Format(domain.DateFormat), req.StartTime)
	}

	return nil
}
