package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/IS-SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий внутренних уведомлений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое уведомление.
// Вызывается только как best-effort побочный эффект: ошибки создания
// уведомления логируются вызывающей стороной и никогда не откатывают
// породившую их операцию.
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"user_id",
			"type",
			"title",
			"message",
			"read",
		).
		Values(
			n.UserID,
			n.Type,
			n.Title,
			n.Message,
			n.Read,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}
