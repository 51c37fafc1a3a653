package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/BeautyBookingService/pkg/dbmetrics"
	"github.com/m04kA/BeautyBookingService/pkg/ptr"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

const (
	closedDayMessage   = "Fecha no disponible"
	noWindowsMessage   = "No hay horarios de atención configurados para este día"
	specialHoursFormat = "Horario especial para esta fecha: %s"
	sameDayMessage     = "Para reservas del mismo día se requiere una anticipación mínima de 2 horas."
)

// UseCase use case для вычисления доступных интервалов на дату
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location - фиксированный часовой пояс бизнеса, от него считаются "сегодня" и отсечка.
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// dayData данные на дату, загружаемые из хранилища
type dayData struct {
	catalog      []*domain.Service
	appointments []*domain.Appointment
	specialDate  *domain.SpecialDate
	windows      []*domain.RegularWindow
	blocks       []*domain.ManualBlock
}

// Execute вычисляет доступные интервалы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	date := dateOnly(req.Date, uc.location)
	now := uc.timeProvider.Now().In(uc.location)

	uc.logger.Info("GetAvailability: date=%s, services=%v, location=%s",
		date.Format(domain.DateFormat), req.ServiceIdentifiers, req.LocationType)

	// 2. Дата не может быть в прошлом (по часовому поясу бизнеса)
	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailability: date %s is in the past", date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrPastDate, date.Format(domain.DateFormat))
	}
	isToday := isSameDay(date, now)

	// 3. Загружаем данные на дату
	data, err := uc.load(ctx, date, req.LocationType)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load data for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Сопоставляем услуги и считаем длительность
	services, duration, matches, err := resolveServices(req.ServiceIdentifiers, data.catalog)
	if err != nil {
		uc.logger.Warn("GetAvailability: %v", err)
		return nil, err
	}
	for _, m := range matches {
		uc.logger.Info("GetAvailability: service %q matched as %s to id=%d", m.Searched, m.Kind, m.Service.ID)
	}

	resp := &Response{
		Date:            date,
		AvailableRanges: []types.TimeRange{},
		IsToday:         isToday,
		Services:        services,
		DurationMinutes: duration,
	}

	// 5. Рабочие периоды
	periods, ok := uc.resolvePeriods(resp, data)
	if !ok {
		return resp, nil
	}

	// 6. Занятые интервалы и нарезка
	blocked := buildBlockedRanges(data.appointments, req.LocationType)
	ranges := cleanupRanges(generateSlots(periods, blocked, duration, req.LocationType))

	// 7. Ручные блокировки
	ranges = removeManuallyBlocked(ranges, data.blocks)

	// 8. Отсечка для записи на сегодня
	if isToday {
		ranges = applySameDayCutoff(ranges, types.ClockFromTime(now))
		resp.Message = ptr.Ptr(sameDayMessage)
	}

	resp.AvailableRanges = ranges

	uc.logger.Info("GetAvailability: %d ranges for date=%s, location=%s, duration=%d",
		len(ranges), date.Format(domain.DateFormat), req.LocationType, duration)

	return resp, nil
}

// resolvePeriods определяет рабочие периоды дня и заполняет признаки особой даты.
// ok=false означает, что день закрыт и ответ уже готов.
func (uc *UseCase) resolvePeriods(resp *Response, data *dayData) ([]types.TimeRange, bool) {
	special := data.specialDate
	if special != nil {
		resp.IsSpecialDate = true
		resp.SpecialDateNote = special.Note

		if special.IsClosed() {
			message := closedDayMessage
			if special.Note != nil && *special.Note != "" {
				message = *special.Note
			}
			resp.Message = &message
			uc.logger.Info("GetAvailability: date %s is closed", resp.Date.Format(domain.DateFormat))
			return nil, false
		}

		if special.HasCustomHours() {
			resp.Message = ptr.Ptr(fmt.Sprintf(specialHoursFormat, special.TimeRange.String()))
			return []types.TimeRange{*special.TimeRange}, true
		}
	}

	periods := make([]types.TimeRange, 0, len(data.windows))
	for _, w := range data.windows {
		if w.IsActive && !w.TimeRange.IsEmpty() {
			periods = append(periods, w.TimeRange)
		}
	}

	if len(periods) == 0 {
		resp.Message = ptr.Ptr(noWindowsMessage)
		uc.logger.Info("GetAvailability: no regular windows for %s", resp.Date.Weekday())
		return nil, false
	}

	return periods, true
}

// load выполняет независимые чтения параллельно.
// Внутри транзакции чтения идут последовательно: одно соединение нельзя использовать конкурентно.
func (uc *UseCase) load(ctx context.Context, date time.Time, location domain.LocationType) (*dayData, error) {
	data := &dayData{}

	g, gctx := errgroup.WithContext(ctx)
	if dbmetrics.IsInTransaction(ctx) {
		g.SetLimit(1)
	}

	g.Go(func() error {
		catalog, err := uc.catalogRepo.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		data.catalog = catalog
		return nil
	})

	g.Go(func() error {
		appointments, err := uc.appointmentRepo.List(gctx, domain.AppointmentsFilter{
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}
		data.appointments = appointments
		return nil
	})

	g.Go(func() error {
		special, err := uc.scheduleRepo.GetSpecialDate(gctx, date)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrSpecialDateNotFound) {
				return nil
			}
			return fmt.Errorf("get special date: %w", err)
		}
		data.specialDate = special
		return nil
	})

	g.Go(func() error {
		windows, err := uc.scheduleRepo.ListRegularWindows(gctx, date.Weekday(), locationFilter(location), true)
		if err != nil {
			return fmt.Errorf("list regular windows: %w", err)
		}
		data.windows = windows
		return nil
	})

	g.Go(func() error {
		blocks, err := uc.scheduleRepo.ListManualBlocks(gctx, date)
		if err != nil {
			return fmt.Errorf("list manual blocks: %w", err)
		}
		data.blocks = blocks
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}
