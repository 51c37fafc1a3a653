package list_manual_blocks

import (
	"context"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListManualBlocks(ctx context.Context, date time.Time) (*models.ManualBlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
