package schedule

import (
	"context"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListRegularWindows(ctx context.Context, day time.Weekday, location *domain.LocationType, activeOnly bool) ([]*domain.RegularWindow, error)
	ListAllRegularWindows(ctx context.Context) ([]*domain.RegularWindow, error)
	CreateRegularWindow(ctx context.Context, window *domain.RegularWindow) (*domain.RegularWindow, error)
	DeleteRegularWindow(ctx context.Context, id int64) error

	UpsertSpecialDate(ctx context.Context, specialDate *domain.SpecialDate) (*domain.SpecialDate, error)
	DeleteSpecialDate(ctx context.Context, date time.Time) error

	ListManualBlocks(ctx context.Context, date time.Time) ([]*domain.ManualBlock, error)
	CreateManualBlock(ctx context.Context, block *domain.ManualBlock) (*domain.ManualBlock, error)
	DeleteManualBlock(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
