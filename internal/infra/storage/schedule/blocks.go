package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/dbmetrics"
	"github.com/m04kA/BeautyBookingService/pkg/psqlbuilder"
)

// ListManualBlocks возвращает ручные блокировки на дату, по времени начала
func (r *Repository) ListManualBlocks(ctx context.Context, date time.Time) ([]*domain.ManualBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"start_time",
		"end_time",
		"available",
		"reason",
		"created_at",
	).
		From(blocksTable).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListManualBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListManualBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.ManualBlock, 0)
	for rows.Next() {
		var b domain.ManualBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.TimeRange.Start,
			&b.TimeRange.End,
			&b.Available,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListManualBlocks - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListManualBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// CreateManualBlock создает ручную блокировку
func (r *Repository) CreateManualBlock(ctx context.Context, b *domain.ManualBlock) (*domain.ManualBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(blocksTable).
		Columns("date", "start_time", "end_time", "available", "reason").
		Values(b.Date.Format(domain.DateFormat), b.TimeRange.Start, b.TimeRange.End, b.Available, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateManualBlock - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateManualBlock - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// DeleteManualBlock удаляет ручную блокировку
func (r *Repository) DeleteManualBlock(ctx context.Context, id int64) error {
	return r.execAffected(ctx, "DeleteManualBlock",
		psqlbuilder.Delete(blocksTable).Where(squirrel.Eq{"id": id}),
		ErrManualBlockNotFound,
	)
}
