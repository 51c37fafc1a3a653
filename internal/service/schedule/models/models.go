package models

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

var (
	// ErrInvalidDay возвращается при дне недели вне 0..6
	ErrInvalidDay = errors.New("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")

	// ErrInvalidLocation возвращается, когда место не STUDIO и не HOME
	ErrInvalidLocation = errors.New("locationType must be STUDIO or HOME")

	// ErrInvalidHours возвращается, когда конец интервала не позже начала
	ErrInvalidHours = errors.New("endTime must be after startTime")

	// ErrMissingHours возвращается, когда задана только одна граница интервала
	ErrMissingHours = errors.New("startTime and endTime must be provided together")

	// ErrNoteTooLong возвращается при слишком длинном комментарии к дате
	ErrNoteTooLong = fmt.Errorf("note must be at most %d characters", domain.MaxSpecialDateNoteLength)
)

// parseHours разбирает пару строк времени в непустой интервал
func parseHours(start, end string) (types.TimeRange, error) {
	startClock, err := types.ParseClock(start)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("startTime: %w", err)
	}
	endClock, err := types.ParseClock(end)
	if err != nil {
		return types.TimeRange{}, fmt.Errorf("endTime: %w", err)
	}

	tr := types.NewTimeRange(startClock, endClock)
	if tr.IsEmpty() {
		return types.TimeRange{}, ErrInvalidHours
	}
	return tr, nil
}

// Request модели

// CreateRegularWindowRequest запрос на создание окна недельного расписания
type CreateRegularWindowRequest struct {
	DayOfWeek    int    `json:"dayOfWeek"` // 0 - воскресенье
	StartTime    string `json:"startTime"` // "09:00" или "9:00 a. m."
	EndTime      string `json:"endTime"`
	LocationType string `json:"locationType"`
	IsActive     *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomain конвертирует запрос в domain модель с валидацией
func (r *CreateRegularWindowRequest) ToDomain() (*domain.RegularWindow, error) {
	if r.DayOfWeek < int(time.Sunday) || r.DayOfWeek > int(time.Saturday) {
		return nil, ErrInvalidDay
	}

	location := domain.ParseLocationType(r.LocationType)
	if !location.IsBookable() {
		return nil, ErrInvalidLocation
	}

	hours, err := parseHours(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.RegularWindow{
		DayOfWeek:    time.Weekday(r.DayOfWeek),
		TimeRange:    hours,
		LocationType: location,
		IsActive:     isActive,
	}, nil
}

// UpsertSpecialDateRequest запрос на создание или замену исключения для даты
type UpsertSpecialDateRequest struct {
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// ToDomain конвертирует запрос в domain модель с валидацией.
// Часы учитываются только для открытого дня.
func (r *UpsertSpecialDateRequest) ToDomain(date time.Time) (*domain.SpecialDate, error) {
	sd := &domain.SpecialDate{
		Date:        date,
		IsAvailable: r.IsAvailable,
		Note:        r.Note,
	}

	if r.Note != nil && utf8.RuneCountInString(*r.Note) > domain.MaxSpecialDateNoteLength {
		return nil, ErrNoteTooLong
	}

	if (r.StartTime == nil) != (r.EndTime == nil) {
		return nil, ErrMissingHours
	}

	if r.IsAvailable && r.StartTime != nil {
		hours, err := parseHours(*r.StartTime, *r.EndTime)
		if err != nil {
			return nil, err
		}
		sd.TimeRange = &hours
	}

	return sd, nil
}

// CreateManualBlockRequest запрос на создание ручной блокировки
type CreateManualBlockRequest struct {
	Date      string  `json:"date"` // "2025-12-23"
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"` // false - интервал закрыт
	Reason    *string `json:"reason,omitempty"`
}

// ToDomain конвертирует запрос в domain модель с валидацией
func (r *CreateManualBlockRequest) ToDomain() (*domain.ManualBlock, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	hours, err := parseHours(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.ManualBlock{
		Date:      date,
		TimeRange: hours,
		Available: r.Available,
		Reason:    r.Reason,
	}, nil
}

// Response модели

// RegularWindowResponse ответ с окном недельного расписания
type RegularWindowResponse struct {
	ID           int64  `json:"id"`
	DayOfWeek    int    `json:"dayOfWeek"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	LocationType string `json:"locationType"`
	IsActive     bool   `json:"isActive"`
}

// RegularWindowListResponse ответ со списком окон
type RegularWindowListResponse struct {
	Windows []RegularWindowResponse `json:"windows"`
}

// FromDomainRegularWindow конвертирует domain модель в DTO
func FromDomainRegularWindow(w *domain.RegularWindow) RegularWindowResponse {
	return RegularWindowResponse{
		ID:           w.ID,
		DayOfWeek:    int(w.DayOfWeek),
		StartTime:    w.TimeRange.Start.String(),
		EndTime:      w.TimeRange.End.String(),
		LocationType: string(w.LocationType),
		IsActive:     w.IsActive,
	}
}

// FromDomainRegularWindowList конвертирует список domain моделей в DTO
func FromDomainRegularWindowList(windows []*domain.RegularWindow) *RegularWindowListResponse {
	resp := &RegularWindowListResponse{Windows: make([]RegularWindowResponse, 0, len(windows))}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, FromDomainRegularWindow(w))
	}
	return resp
}

// SpecialDateResponse ответ с исключением для даты
type SpecialDateResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// FromDomainSpecialDate конвертирует domain модель в DTO
func FromDomainSpecialDate(sd *domain.SpecialDate) *SpecialDateResponse {
	resp := &SpecialDateResponse{
		ID:          sd.ID,
		Date:        sd.Date.Format(domain.DateFormat),
		IsAvailable: sd.IsAvailable,
		Note:        sd.Note,
	}
	if sd.TimeRange != nil {
		start, end := sd.TimeRange.Start.String(), sd.TimeRange.End.String()
		resp.StartTime, resp.EndTime = &start, &end
	}
	return resp
}

// ManualBlockResponse ответ с ручной блокировкой
type ManualBlockResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// ManualBlockListResponse ответ со списком блокировок
type ManualBlockListResponse struct {
	Blocks []ManualBlockResponse `json:"blocks"`
}

// FromDomainManualBlock конвертирует domain модель в DTO
func FromDomainManualBlock(b *domain.ManualBlock) ManualBlockResponse {
	return ManualBlockResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.TimeRange.Start.String(),
		EndTime:   b.TimeRange.End.String(),
		Available: b.Available,
		Reason:    b.Reason,
	}
}

// FromDomainManualBlockList конвертирует список domain моделей в DTO
func FromDomainManualBlockList(blocks []*domain.ManualBlock) *ManualBlockListResponse {
	resp := &ManualBlockListResponse{Blocks: make([]ManualBlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, FromDomainManualBlock(b))
	}
	return resp
}
