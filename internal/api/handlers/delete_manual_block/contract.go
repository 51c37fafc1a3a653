package delete_manual_block

import "context"

type ScheduleService interface {
	DeleteManualBlock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
