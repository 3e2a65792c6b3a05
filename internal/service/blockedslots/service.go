package blockedslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	blockedSlotRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/blockedslot"
	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// Service сервис управления блокировками слотов
type Service struct {
	blockedSlotRepo BlockedSlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedSlotRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedSlotRepo: blockedSlotRepo,
		logger:          logger,
	}
}

// CreateBlockRequest запрос на создание блокировки
type CreateBlockRequest struct {
	ProfessionalID int64
	BlockDate      time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Reason         string
	FullDay        bool
}

// Create создает блокировку интервала. При FullDay интервал времени
// игнорируется и блокируется весь день (00:00-23:59).
// Пересечение с существующими блокировками и бронированиями не
// проверяется: блокировки лишь объединяют свой запрещающий эффект.
func (s *Service) Create(ctx context.Context, req CreateBlockRequest) (*domain.BlockedSlot, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professional id must be positive", ErrInvalidInput)
	}
	if req.BlockDate.IsZero() {
		return nil, fmt.Errorf("%w: block date is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	block := &domain.BlockedSlot{
		ProfessionalID: req.ProfessionalID,
		BlockDate:      req.BlockDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
	}

	if req.FullDay {
		block.StartTime = domain.FullDayBlockStart
		block.EndTime = domain.FullDayBlockEnd
	} else {
		if err := block.StartTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
		}
		if err := block.EndTime.Validate(); err != nil {
			return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
		}
		if !block.StartTime.IsBefore(block.EndTime) {
			return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
		}
	}

	created, err := s.blockedSlotRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked slot id=%d created for professional=%d on %s (%s-%s)",
		created.ID, created.ProfessionalID, created.BlockDate.Format(domain.DateFormat),
		created.StartTime, created.EndTime)

	return created, nil
}

// List получает блокировки профессионала на день
func (s *Service) List(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professional id must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	blocks, err := s.blockedSlotRepo.GetByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку. Операция идемпотентна: удаление
// несуществующей блокировки - успех, слот и так разблокирован.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: block id must be positive", ErrInvalidInput)
	}

	err := s.blockedSlotRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Info("Delete: blocked slot id=%d already absent", id)
			return nil
		}
		s.logger.Error("Delete: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked slot id=%d removed", id)
	return nil
}
