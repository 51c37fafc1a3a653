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

var regularColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"location_type",
	"is_active",
	"created_at",
	"updated_at",
}

// ListRegularWindows возвращает окна недельного расписания на день недели.
// location == nil - окна всех мест.
func (r *Repository) ListRegularWindows(ctx context.Context, day time.Weekday, location *domain.LocationType, activeOnly bool) ([]*domain.RegularWindow, error) {
	return r.listRegular(ctx, &day, location, activeOnly)
}

// ListAllRegularWindows возвращает окна всех дней недели (для админки)
func (r *Repository) ListAllRegularWindows(ctx context.Context) ([]*domain.RegularWindow, error) {
	return r.listRegular(ctx, nil, nil, false)
}

func (r *Repository) listRegular(ctx context.Context, day *time.Weekday, location *domain.LocationType, activeOnly bool) ([]*domain.RegularWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(regularColumns...).
		From(regularTable).
		OrderBy("day_of_week ASC", "start_time ASC")

	if day != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"day_of_week": int(*day)})
	}
	if location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_type": *location})
	}
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRegularWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRegularWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.RegularWindow, 0)
	for rows.Next() {
		w, err := scanRegularWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRegularWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRegularWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// CreateRegularWindow создает окно недельного расписания
func (r *Repository) CreateRegularWindow(ctx context.Context, w *domain.RegularWindow) (*domain.RegularWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(regularTable).
		Columns("day_of_week", "start_time", "end_time", "location_type", "is_active").
		Values(int(w.DayOfWeek), w.TimeRange.Start, w.TimeRange.End, w.LocationType, w.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegularWindow - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegularWindow - execute insert: %v", ErrExecQuery, err)
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return w, nil
}

// DeleteRegularWindow удаляет окно недельного расписания
func (r *Repository) DeleteRegularWindow(ctx context.Context, id int64) error {
	return r.execAffected(ctx, "DeleteRegularWindow",
		psqlbuilder.Delete(regularTable).Where(squirrel.Eq{"id": id}),
		ErrRegularWindowNotFound,
	)
}

func scanRegularWindow(row rowScanner) (*domain.RegularWindow, error) {
	var w domain.RegularWindow
	var day int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&w.ID,
		&day,
		&w.TimeRange.Start,
		&w.TimeRange.End,
		&w.LocationType,
		&w.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.DayOfWeek = time.Weekday(day)
	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}
