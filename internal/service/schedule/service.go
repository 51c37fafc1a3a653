package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием: недельные окна, особые даты и блокировки
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListRegularWindows возвращает окна недельного расписания.
// day == nil - окна всех дней недели, включая неактивные.
func (s *Service) ListRegularWindows(ctx context.Context, day *int) (*models.RegularWindowListResponse, error) {
	var (
		windows []*domain.RegularWindow
		err     error
	)

	if day == nil {
		s.logger.Info("ListRegularWindows: fetching all windows")
		windows, err = s.scheduleRepo.ListAllRegularWindows(ctx)
	} else {
		if *day < int(time.Sunday) || *day > int(time.Saturday) {
			s.logger.Warn("ListRegularWindows: invalid day=%d", *day)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidDay)
		}
		s.logger.Info("ListRegularWindows: fetching windows for day=%d", *day)
		windows, err = s.scheduleRepo.ListRegularWindows(ctx, time.Weekday(*day), nil, false)
	}

	if err != nil {
		s.logger.Error("ListRegularWindows: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRegularWindows - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRegularWindowList(windows), nil
}

// CreateRegularWindow создает окно недельного расписания.
// Окна одного дня и места не должны пересекаться.
func (s *Service) CreateRegularWindow(ctx context.Context, req *models.CreateRegularWindowRequest) (*models.RegularWindowResponse, error) {
	s.logger.Info("CreateRegularWindow: day=%d, %s-%s, location=%s",
		req.DayOfWeek, req.StartTime, req.EndTime, req.LocationType)

	window, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateRegularWindow: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.RegularWindow
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.scheduleRepo.ListRegularWindows(txCtx, window.DayOfWeek, &window.LocationType, false)
		if err != nil {
			return fmt.Errorf("%w: CreateRegularWindow - list windows: %v", ErrInternal, err)
		}

		for _, w := range existing {
			if w.TimeRange.Overlaps(window.TimeRange) {
				return fmt.Errorf("%w: %s", ErrOverlappingWindow, w.TimeRange.String())
			}
		}

		created, err = s.scheduleRepo.CreateRegularWindow(txCtx, window)
		if err != nil {
			return fmt.Errorf("%w: CreateRegularWindow - create window: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverlappingWindow) {
			s.logger.Warn("CreateRegularWindow: %v", err)
			return nil, err
		}
		s.logger.Error("CreateRegularWindow: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: CreateRegularWindow - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRegularWindow: successfully created window id=%d", created.ID)
	resp := models.FromDomainRegularWindow(created)
	return &resp, nil
}

// DeleteRegularWindow удаляет окно недельного расписания
func (s *Service) DeleteRegularWindow(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRegularWindow: deleting window id=%d", id)

	if err := s.scheduleRepo.DeleteRegularWindow(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRegularWindowNotFound) {
			s.logger.Warn("DeleteRegularWindow: window id=%d not found", id)
			return ErrRegularWindowNotFound
		}
		s.logger.Error("DeleteRegularWindow: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRegularWindow - repository error: %v", ErrInternal, err)
	}

	return nil
}

// UpsertSpecialDate создает или заменяет исключение для даты
func (s *Service) UpsertSpecialDate(ctx context.Context, date time.Time, req *models.UpsertSpecialDateRequest) (*models.SpecialDateResponse, error) {
	dateStr := date.Format(domain.DateFormat)
	s.logger.Info("UpsertSpecialDate: date=%s, isAvailable=%t", dateStr, req.IsAvailable)

	specialDate, err := req.ToDomain(date)
	if err != nil {
		s.logger.Warn("UpsertSpecialDate: validation failed for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.scheduleRepo.UpsertSpecialDate(ctx, specialDate)
	if err != nil {
		s.logger.Error("UpsertSpecialDate: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: UpsertSpecialDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSpecialDate: successfully saved special date id=%d", saved.ID)
	return models.FromDomainSpecialDate(saved), nil
}

// DeleteSpecialDate удаляет исключение для даты
func (s *Service) DeleteSpecialDate(ctx context.Context, date time.Time) error {
	dateStr := date.Format(domain.DateFormat)
	s.logger.Info("DeleteSpecialDate: deleting special date=%s", dateStr)

	if err := s.scheduleRepo.DeleteSpecialDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrSpecialDateNotFound) {
			s.logger.Warn("DeleteSpecialDate: special date=%s not found", dateStr)
			return ErrSpecialDateNotFound
		}
		s.logger.Error("DeleteSpecialDate: repository error for date=%s: %v", dateStr, err)
		return fmt.Errorf("%w: DeleteSpecialDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListManualBlocks возвращает ручные блокировки на дату
func (s *Service) ListManualBlocks(ctx context.Context, date time.Time) (*models.ManualBlockListResponse, error) {
	dateStr := date.Format(domain.DateFormat)
	s.logger.Info("ListManualBlocks: fetching blocks for date=%s", dateStr)

	blocks, err := s.scheduleRepo.ListManualBlocks(ctx, date)
	if err != nil {
		s.logger.Error("ListManualBlocks: repository error for date=%s: %v", dateStr, err)
		return nil, fmt.Errorf("%w: ListManualBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainManualBlockList(blocks), nil
}

// CreateManualBlock создает ручную блокировку
func (s *Service) CreateManualBlock(ctx context.Context, req *models.CreateManualBlockRequest) (*models.ManualBlockResponse, error) {
	s.logger.Info("CreateManualBlock: date=%s, %s-%s, available=%t",
		req.Date, req.StartTime, req.EndTime, req.Available)

	block, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateManualBlock: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.scheduleRepo.CreateManualBlock(ctx, block)
	if err != nil {
		s.logger.Error("CreateManualBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateManualBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateManualBlock: successfully created block id=%d", created.ID)
	resp := models.FromDomainManualBlock(created)
	return &resp, nil
}

// DeleteManualBlock удаляет ручную блокировку
func (s *Service) DeleteManualBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteManualBlock: deleting block id=%d", id)

	if err := s.scheduleRepo.DeleteManualBlock(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrManualBlockNotFound) {
			s.logger.Warn("DeleteManualBlock: block id=%d not found", id)
			return ErrManualBlockNotFound
		}
		s.logger.Error("DeleteManualBlock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteManualBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}
