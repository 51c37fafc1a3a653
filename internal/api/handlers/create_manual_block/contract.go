package create_manual_block

import (
	"context"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateManualBlock(ctx context.Context, req *models.CreateManualBlockRequest) (*models.ManualBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
