package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

var (
	// ErrMissingValue возвращается, когда параметр не передан
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidID возвращается при некорректном идентификаторе
	ErrInvalidID = errors.New("invalid id")
)

// PathID извлекает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingValue, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}

	return id, nil
}

// ParseDate парсит дату "YYYY-MM-DD" или ISO 8601 с временем.
// Для ISO берется календарная дата из строки, без перевода в другой часовой пояс.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingValue
	}

	if date, err := time.Parse(domain.DateFormat, s); err == nil {
		return date, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
