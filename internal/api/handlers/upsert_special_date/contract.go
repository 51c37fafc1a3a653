package upsert_special_date

import (
	"context"
	"time"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertSpecialDate(ctx context.Context, date time.Time, req *models.UpsertSpecialDateRequest) (*models.SpecialDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
