package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	// ListActive возвращает активные услуги каталога
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// List возвращает записи по фильтру (для доступности - только активные на одну дату)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// ListRegularWindows возвращает окна недельного расписания на день недели.
	// location == nil - окна всех мест.
	ListRegularWindows(ctx context.Context, day time.Weekday, location *domain.LocationType, activeOnly bool) ([]*domain.RegularWindow, error)
	// GetSpecialDate возвращает исключение для даты или schedule.ErrSpecialDateNotFound
	GetSpecialDate(ctx context.Context, date time.Time) (*domain.SpecialDate, error)
	// ListManualBlocks возвращает ручные блокировки на дату
	ListManualBlocks(ctx context.Context, date time.Time) ([]*domain.ManualBlock, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
