package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
)

// UseCase use case для создания записи из публичной формы
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityResolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availability AvailabilityResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Доступность пересчитывается в сериализуемой транзакции: запрошенный интервал
// должен быть среди доступных на момент создания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, range=%s, location=%s, services=%v",
		req.Date.Format(domain.DateFormat), req.TimeRange, req.LocationType, req.ServiceIdentifiers)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Проверка доступности и создание в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		availability, err := uc.availability.Execute(txCtx, &get_availability.Request{
			Date:               req.Date,
			ServiceIdentifiers: req.ServiceIdentifiers,
			LocationType:       req.LocationType,
		})
		if err != nil {
			return mapAvailabilityError(err)
		}

		if !availability.HasRange(req.TimeRange) {
			uc.logger.Warn("CreateAppointment: range %s is not available on %s (available: %v)",
				req.TimeRange, req.Date.Format(domain.DateFormat), availability.AvailableRanges)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.TimeRange)
		}

		names, price := serviceSummary(availability.Services)

		appointment := &domain.Appointment{
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientPhone:     strings.TrimSpace(req.ClientPhone),
			ClientEmail:     req.ClientEmail,
			Date:            availability.Date,
			TimeRange:       req.TimeRange,
			LocationType:    req.LocationType,
			Address:         req.Address,
			ServiceNames:    names,
			DurationMinutes: availability.DurationMinutes,
			TotalPrice:      price,
			Notes:           req.Notes,
			Status:          domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPastDate), errors.Is(err, ErrUnknownService):
			uc.logger.Warn("CreateAppointment: %v", err)
			return nil, err
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrInternal):
			return nil, err
		case isSerializationFailure(err):
			uc.logger.Warn("CreateAppointment: concurrent booking for %s: %v", req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: concurrent booking", ErrSlotNotAvailable)
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{Appointment: result}, nil
}

// mapAvailabilityError переводит ошибки поиска доступности в ошибки этого use case.
// Детали UnknownServiceError сохраняются для ответа клиенту.
func mapAvailabilityError(err error) error {
	switch {
	case errors.Is(err, get_availability.ErrMissingParameter):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, get_availability.ErrPastDate):
		return fmt.Errorf("%w: %v", ErrPastDate, err)
	case errors.Is(err, get_availability.ErrUnknownService):
		return fmt.Errorf("%w: %w", ErrUnknownService, err)
	default:
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
}
