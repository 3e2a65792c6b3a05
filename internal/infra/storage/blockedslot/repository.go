package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/IS-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"professional_id",
			"block_date",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			block.ProfessionalID,
			block.BlockDate,
			block.StartTime,
			block.EndTime,
			block.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByProfessionalAndDate получает все блокировки профессионала на дату.
// Пересекающиеся блокировки допустимы и возвращаются как есть - их
// эффект объединяется на стороне генератора слотов.
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"block_date",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"block_date":      date,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var block domain.BlockedSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.ProfessionalID,
			&block.BlockDate,
			&block.StartTime,
			&block.EndTime,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProfessionalAndDate - scan row: %w", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку.
// Возвращает ErrBlockedSlotNotFound при нуле затронутых строк -
// идемпотентность удаления обеспечивает сервисный слой.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}
