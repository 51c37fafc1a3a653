package create_regular_window

import (
	"context"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateRegularWindow(ctx context.Context, req *models.CreateRegularWindowRequest) (*models.RegularWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
