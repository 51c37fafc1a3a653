package create_regular_window

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) CreateRegularWindow(_ context.Context, req *models.CreateRegularWindowRequest) (*models.RegularWindowResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.RegularWindowResponse{
		ID: 9, DayOfWeek: req.DayOfWeek, StartTime: req.StartTime, EndTime: req.EndTime,
		LocationType: req.LocationType, IsActive: true,
	}, nil
}

func TestHandle(t *testing.T) {
	const body = `{"dayOfWeek":2,"startTime":"09:00","endTime":"13:00","locationType":"STUDIO"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"created", body, nil, http.StatusCreated, `"id":9`},
		{"bad body", `{`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"invalid", body, fmt.Errorf("%w: endTime must be after startTime", schedule.ErrInvalidInput), http.StatusBadRequest, msgInvalidWindow},
		{"overlap", body, fmt.Errorf("%w: 08:00 - 10:00", schedule.ErrOverlappingWindow), http.StatusConflict, msgOverlappingWindow},
		{"internal", body, schedule.ErrInternal, http.StatusInternalServerError, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/availability/regular", strings.NewReader(tt.body))

			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
