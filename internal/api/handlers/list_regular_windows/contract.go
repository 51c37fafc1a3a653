package list_regular_windows

import (
	"context"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListRegularWindows(ctx context.Context, day *int) (*models.RegularWindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
