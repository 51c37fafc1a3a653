package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var (
	// ErrInvalidClock возвращается при некорректном формате времени суток
	ErrInvalidClock = errors.New("invalid time of day format")

	// ErrClockOutOfRange возвращается, когда время выходит за пределы суток
	ErrClockOutOfRange = errors.New("time of day out of range")
)

// Clock время суток в минутах от полуночи (0..1440).
// 1440 допустимо только как конец интервала ("24:00").
type Clock int

// NewClock создает Clock из часов и минут
func NewClock(hour, minute int) Clock {
	return Clock(hour*MinutesPerHour + minute)
}

// ClockFromTime возвращает время суток для момента t в его собственной локации
func ClockFromTime(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

// ParseClock парсит время суток.
// Поддерживаемые форматы:
//   - 24-часовой: "09:30", "9:30", "09:30:00"
//   - 12-часовой: "9:30 AM", "09:30pm", "9:30 p.m."
//   - испанские маркеры: "9:30 a. m.", "2:00 p. m."
func ParseClock(s string) (Clock, error) {
	raw := s
	// Нормализуем: нижний регистр, без пробелов (включая неразрывные) и точек
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", ".", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidClock)
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "am"):
		meridiem = "am"
	case strings.HasSuffix(s, "pm"):
		meridiem = "pm"
	}
	s = strings.TrimSuffix(s, meridiem)

	parts := strings.Split(s, ":")
	if len(parts) == 1 && meridiem != "" {
		// "9 am" без минут
		parts = append(parts, "00")
	}
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
		}
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrClockOutOfRange, raw)
	}

	if meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrClockOutOfRange, raw)
		}
		// 12:xx AM = 00:xx, 12:xx PM = 12:xx
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
		return NewClock(hour, minute), nil
	}

	if hour == 24 && minute == 0 {
		return Clock(MinutesPerDay), nil
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrClockOutOfRange, raw)
	}

	return NewClock(hour, minute), nil
}

// Minutes возвращает количество минут от полуночи
func (c Clock) Minutes() int {
	return int(c)
}

// AddMinutes сдвигает время на n минут с ограничением пределами суток
func (c Clock) AddMinutes(n int) Clock {
	return Clock(clamp(int(c)+n, 0, MinutesPerDay))
}

// RoundUp округляет время вверх до ближайшего кратного step минут
func (c Clock) RoundUp(step int) Clock {
	if step <= 0 {
		return c
	}
	rem := int(c) % step
	if rem == 0 {
		return c
	}
	return c.AddMinutes(step - rem)
}

// IsBefore возвращает true, если c строго раньше other
func (c Clock) IsBefore(other Clock) bool {
	return c < other
}

// String возвращает время в формате HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/MinutesPerHour, int(c)%MinutesPerHour)
}

// MarshalJSON сериализует время в строку "HH:MM"
func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON десериализует время из строки
func (c *Clock) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClock, string(data))
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок TIME
func (c *Clock) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*c = parsed
	case []byte:
		parsed, err := ParseClock(string(v))
		if err != nil {
			return err
		}
		*c = parsed
	case time.Time:
		*c = ClockFromTime(v)
	case nil:
		return fmt.Errorf("%w: NULL value", ErrInvalidClock)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidClock, src)
	}
	return nil
}

// Value реализует driver.Valuer
func (c Clock) Value() (driver.Value, error) {
	if c == MinutesPerDay {
		return "24:00:00", nil
	}
	return c.String() + ":00", nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
