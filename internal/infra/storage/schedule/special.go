package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/dbmetrics"
	"github.com/m04kA/BeautyBookingService/pkg/psqlbuilder"
)

// GetSpecialDate возвращает исключение для даты или ErrSpecialDateNotFound
func (r *Repository) GetSpecialDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"is_available",
		"start_time",
		"end_time",
		"note",
		"created_at",
		"updated_at",
	).
		From(specialTable).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDate - build select query: %v", ErrBuildQuery, err)
	}

	var sd domain.SpecialDate
	var start, end sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sd.ID,
		&sd.Date,
		&sd.IsAvailable,
		&start,
		&end,
		&sd.Note,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDate - scan special date: %v", ErrScanRow, err)
	}

	sd.TimeRange, err = nullableRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDate - parse hours: %v", ErrScanRow, err)
	}
	sd.CreatedAt = createdAt.Time
	sd.UpdatedAt = updatedAt.Time

	return &sd, nil
}

// UpsertSpecialDate создает или заменяет исключение для даты (одно на дату)
func (r *Repository) UpsertSpecialDate(ctx context.Context, sd *domain.SpecialDate) (*domain.SpecialDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var start, end interface{}
	if sd.TimeRange != nil {
		start, end = sd.TimeRange.Start, sd.TimeRange.End
	}

	query, args, err := psqlbuilder.Insert(specialTable).
		Columns("date", "is_available", "start_time", "end_time", "note").
		Values(sd.Date.Format(domain.DateFormat), sd.IsAvailable, start, end, sd.Note).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSpecialDate - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sd.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSpecialDate - execute upsert: %v", ErrExecQuery, err)
	}

	sd.CreatedAt = createdAt.Time
	sd.UpdatedAt = updatedAt.Time

	return sd, nil
}

// DeleteSpecialDate удаляет исключение для даты
func (r *Repository) DeleteSpecialDate(ctx context.Context, date time.Time) error {
	return r.execAffected(ctx, "DeleteSpecialDate",
		psqlbuilder.Delete(specialTable).Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}),
		ErrSpecialDateNotFound,
	)
}
