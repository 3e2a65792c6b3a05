package professional

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/IS-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профессионалами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профессионала по ID вместе с недельным расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"is_active",
		"working_hours",
		"created_at",
		"updated_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var prof domain.Professional
	var workingHoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.Name,
		&prof.IsActive,
		&workingHoursRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %w", ErrScanRow, err)
	}

	// Санитизация на границе хранилища: нечитаемое или пустое расписание
	// превращается в пустую карту (день без записи = закрыт), а не в ошибку
	prof.WorkingHours = domain.WeekSchedule{}
	if len(workingHoursRaw) > 0 {
		if err := json.Unmarshal(workingHoursRaw, &prof.WorkingHours); err != nil {
			return nil, fmt.Errorf("%w: GetByID - id=%d: %w", ErrInvalidWorkingHours, id, err)
		}
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return &prof, nil
}

// UpdateWorkingHours заменяет недельное расписание профессионала целиком.
// Интерфейс настроек календаря сохраняет всю неделю одним действием.
func (r *Repository) UpdateWorkingHours(ctx context.Context, id int64, hours domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - marshal: %w", ErrInvalidWorkingHours, err)
	}

	query, args, err := psqlbuilder.Update("professionals").
		Set("working_hours", payload).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}
