package get_availability

import (
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// Request модель запроса доступных интервалов
type Request struct {
	Date               time.Time           // Дата (без времени) в часовом поясе бизнеса
	ServiceIdentifiers []string            // ID услуг или строки вида "Название (S/ цена)"
	LocationType       domain.LocationType // STUDIO, HOME или any
}

// Response модель ответа с доступными интервалами
type Response struct {
	Date            time.Time
	AvailableRanges []types.TimeRange
	IsSpecialDate   bool
	SpecialDateNote *string
	Message         *string
	IsToday         bool

	// Результат сопоставления услуг (используется при создании записи)
	Services        []*domain.Service
	DurationMinutes int
}

// HasRange проверяет, что интервал r есть среди доступных
func (r *Response) HasRange(tr types.TimeRange) bool {
	for _, available := range r.AvailableRanges {
		if available == tr {
			return true
		}
	}
	return false
}
