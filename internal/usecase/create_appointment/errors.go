package create_appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastDate возвращается, когда дата записи уже прошла
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrUnknownService возвращается, когда услугу не удалось сопоставить с каталогом
	ErrUnknownService = errors.New("create_appointment: unknown service")

	// ErrSlotNotAvailable возвращается, когда выбранный интервал недоступен
	ErrSlotNotAvailable = errors.New("create_appointment: time range is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// serializationFailure код ошибки PostgreSQL serialization_failure
const serializationFailure = "40001"

// isSerializationFailure проверяет, что транзакция проиграла конкурентной записи на ту же дату
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}
