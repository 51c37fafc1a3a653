package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingParameter)
	}

	if len(req.ServiceIdentifiers) == 0 {
		return fmt.Errorf("%w: serviceTypes is required", ErrMissingParameter)
	}

	if req.LocationType == "" {
		return fmt.Errorf("%w: locationType is required", ErrMissingParameter)
	}

	return nil
}

// dateOnly возвращает полночь календарной даты date в локации loc
func dateOnly(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что календарная дата раньше сегодняшней.
// now должен быть уже переведен в часовой пояс бизнеса.
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date, time.UTC).Before(dateOnly(now, time.UTC))
}

// locationFilter возвращает фильтр по месту для выборки регулярных окон (nil - все места)
func locationFilter(location domain.LocationType) *domain.LocationType {
	if location.IsBookable() {
		return &location
	}
	return nil
}
