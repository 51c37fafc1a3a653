package schedule

import "errors"

var (
	// ErrRegularWindowNotFound возвращается, когда окно расписания не найдено
	ErrRegularWindowNotFound = errors.New("schedule.repository: regular window not found")

	// ErrSpecialDateNotFound возвращается, когда для даты нет исключения
	ErrSpecialDateNotFound = errors.New("schedule.repository: special date not found")

	// ErrManualBlockNotFound возвращается, когда блокировка не найдена
	ErrManualBlockNotFound = errors.New("schedule.repository: manual block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
