package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	professionalstore "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/professional"
	servicestore "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/service"
)

// UseCase расчёт сетки слотов на день для пары профессионал+услуга
type UseCase struct {
	bookings      BookingRepository
	blockedSlots  BlockedSlotRepository
	professionals ProfessionalRepository
	services      ServiceRepository
	timeProvider  TimeProvider
	logger        Logger
}

func NewUseCase(
	bookings BookingRepository,
	blockedSlots BlockedSlotRepository,
	professionals ProfessionalRepository,
	services ServiceRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:      bookings,
		blockedSlots:  blockedSlots,
		professionals: professionals,
		services:      services,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute возвращает сетку слотов дня с признаком доступности каждого
// слота. Закрытый день (прошедшая дата, выходной, неактивный
// профессионал) - пустой список, не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	professional, err := uc.professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalstore.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProfessionalNotFound, req.ProfessionalID)
		}
		uc.logger.Error("get_available_slots: failed to get professional %d: %v", req.ProfessionalID, err)
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
		uc.logger.Error("get_available_slots: failed to get service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: id %d is inactive", ErrServiceNotFound, req.ServiceID)
	}

	response := &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.EffectiveDuration(),
		Slots:           []Slot{},
	}

	now := uc.timeProvider.Now()

	if !professional.IsDayOpen(req.Date, now) {
		return response, nil
	}

	hours, ok := professional.WorkingHours.HoursFor(req.Date)
	if !ok {
		return response, nil
	}

	date := req.Date
	bookings, err := uc.bookings.GetWithFilter(ctx, domain.BookingsFilter{
		ProfessionalID: req.ProfessionalID,
		Date:           &date,
		OnlyBlocking:   true,
	})
	if err != nil {
		uc.logger.Error("get_available_slots: failed to get bookings for professional %d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockedSlots.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("get_available_slots: failed to get blocked slots for professional %d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: get blocked slots: %v", ErrInternal, err)
	}

	slots, err := domain.GenerateSlots(hours, service.EffectiveDuration(), req.Date, now, bookings, blocks)
	if err != nil {
		uc.logger.Error("get_available_slots: failed to generate slots for professional %d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	response.Slots = make([]Slot, len(slots))
	for i, slot := range slots {
		response.Slots[i] = Slot{StartTime: slot.StartTime, Available: slot.Available}
	}

	return response, nil
}
