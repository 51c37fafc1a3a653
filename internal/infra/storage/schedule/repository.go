package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BeautyBookingService/pkg/dbmetrics"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

const (
	regularTable = "regular_availability"
	specialTable = "special_dates"
	blocksTable  = "manual_blocks"
)

// Repository репозиторий расписания: недельные окна, особые даты и ручные блокировки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// execAffected выполняет запрос и возвращает notFound, если ни одна строка не затронута
func (r *Repository) execAffected(ctx context.Context, op string, builder squirrel.Sqlizer, notFound error) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// nullableRange собирает интервал из необязательных колонок start_time/end_time
func nullableRange(start, end sql.NullString) (*types.TimeRange, error) {
	if !start.Valid || !end.Valid {
		return nil, nil
	}

	startClock, err := types.ParseClock(start.String)
	if err != nil {
		return nil, err
	}
	endClock, err := types.ParseClock(end.String)
	if err != nil {
		return nil, err
	}

	tr := types.NewTimeRange(startClock, endClock)
	return &tr, nil
}
