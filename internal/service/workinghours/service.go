package workinghours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	professionalRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/professional"
)

// Service сервис управления рабочим расписанием профессионалов
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Get получает недельное расписание профессионала
func (s *Service) Get(ctx context.Context, professionalID int64) (domain.WeekSchedule, error) {
	professional, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Get: professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Get: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return professional.WorkingHours, nil
}

// Update заменяет недельное расписание профессионала целиком.
// Для каждого активного дня проверяется формат времени и start < end.
func (s *Service) Update(ctx context.Context, professionalID int64, hours domain.WeekSchedule) (domain.WeekSchedule, error) {
	if err := hours.Validate(); err != nil {
		s.logger.Warn("Update: invalid schedule for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.professionalRepo.UpdateWorkingHours(ctx, professionalID, hours); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Update: professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Update: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: working hours replaced for professional id=%d", professionalID)
	return hours, nil
}
