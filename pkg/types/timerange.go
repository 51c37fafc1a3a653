package types

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidTimeRange возвращается при некорректном формате интервала
var ErrInvalidTimeRange = errors.New("invalid time range format")

// TimeRangeSeparator разделитель начала и конца интервала в строковом представлении
const TimeRangeSeparator = " - "

// TimeRange полуоткрытый интервал времени суток [Start, End)
type TimeRange struct {
	Start Clock
	End   Clock
}

// NewTimeRange создает интервал
func NewTimeRange(start, end Clock) TimeRange {
	return TimeRange{Start: start, End: end}
}

// ParseTimeRange парсит интервал вида "HH:MM - HH:MM".
// Каждая граница может быть в любом формате, поддерживаемом ParseClock.
func ParseTimeRange(s string) (TimeRange, error) {
	idx := strings.Index(s, TimeRangeSeparator)
	sepLen := len(TimeRangeSeparator)
	if idx < 0 {
		// Допускаем запись без пробелов вокруг дефиса: "09:00-10:00"
		idx = strings.Index(s, "-")
		sepLen = 1
	}
	if idx < 0 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := ParseClock(s[:idx])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	end, err := ParseClock(s[idx+sepLen:])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	if end.IsBefore(start) {
		return TimeRange{}, fmt.Errorf("%w: end before start in %q", ErrInvalidTimeRange, s)
	}

	return TimeRange{Start: start, End: end}, nil
}

// Minutes возвращает длительность интервала в минутах
func (r TimeRange) Minutes() int {
	return int(r.End - r.Start)
}

// IsEmpty возвращает true для интервала нулевой (или отрицательной) ширины
func (r TimeRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Overlaps проверяет РЕАЛЬНОЕ пересечение интервалов.
// Интервалы, которые только граничат друг с другом, не пересекаются.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains проверяет, что other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Expand расширяет интервал на before минут влево и after минут вправо в пределах суток
func (r TimeRange) Expand(before, after int) TimeRange {
	return TimeRange{Start: r.Start.AddMinutes(-before), End: r.End.AddMinutes(after)}
}

// Clip обрезает интервал границами bounds
func (r TimeRange) Clip(bounds TimeRange) TimeRange {
	start, end := r.Start, r.End
	if start < bounds.Start {
		start = bounds.Start
	}
	if end > bounds.End {
		end = bounds.End
	}
	return TimeRange{Start: start, End: end}
}

// String возвращает интервал в формате "HH:MM - HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + TimeRangeSeparator + r.End.String()
}

// MarshalJSON сериализует интервал в строку "HH:MM - HH:MM"
func (r TimeRange) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// UnmarshalJSON десериализует интервал из строки
func (r *TimeRange) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeRange, string(data))
	}
	parsed, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// SortTimeRanges сортирует интервалы по началу, затем по концу
func SortTimeRanges(ranges []TimeRange) {
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
}

// OverlapsAny проверяет, пересекается ли r хотя бы с одним интервалом из list
func OverlapsAny(r TimeRange, list []TimeRange) bool {
	for _, other := range list {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}

// TimeRangeStrings конвертирует интервалы в строки "HH:MM - HH:MM"
func TimeRangeStrings(ranges []TimeRange) []string {
	result := make([]string, len(ranges))
	for i, r := range ranges {
		result[i] = r.String()
	}
	return result
}
