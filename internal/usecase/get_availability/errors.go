package get_availability

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter возвращается, когда не передана дата, услуги или место
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrPastDate возвращается, когда дата раньше сегодняшней (по часовому поясу бизнеса)
	ErrPastDate = errors.New("date is in the past")

	// ErrUnknownService возвращается, когда услугу не удалось сопоставить с каталогом
	ErrUnknownService = errors.New("unknown service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// UnknownServiceError подробности о несопоставленной услуге
type UnknownServiceError struct {
	Searched  string   // Значение, по которому искали (без цены)
	Original  string   // Исходное значение из запроса
	Available []string // Названия активных услуг
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownService, e.Searched)
}

func (e *UnknownServiceError) Unwrap() error {
	return ErrUnknownService
}
