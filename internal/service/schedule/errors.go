package schedule

import "errors"

var (
	// ErrRegularWindowNotFound возвращается, когда окно расписания не найдено
	ErrRegularWindowNotFound = errors.New("regular window not found")

	// ErrSpecialDateNotFound возвращается, когда для даты нет исключения
	ErrSpecialDateNotFound = errors.New("special date not found")

	// ErrManualBlockNotFound возвращается, когда блокировка не найдена
	ErrManualBlockNotFound = errors.New("manual block not found")

	// ErrOverlappingWindow возвращается, когда новое окно пересекается с существующим
	ErrOverlappingWindow = errors.New("window overlaps an existing window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
