package list_regular_windows

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
)

type fakeService struct {
	err     error
	lastDay *int
}

func (f *fakeService) ListRegularWindows(_ context.Context, day *int) (*models.RegularWindowListResponse, error) {
	f.lastDay = day
	if f.err != nil {
		return nil, f.err
	}
	return &models.RegularWindowListResponse{Windows: []models.RegularWindowResponse{}}, nil
}

func get(svc *fakeService, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/availability/regular"+query, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := get(svc, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastDay)
	assert.Contains(t, rec.Body.String(), `"windows":[]`)

	rec = get(svc, "?day=0")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastDay)
	assert.Equal(t, 0, *svc.lastDay)

	assert.Equal(t, http.StatusBadRequest, get(svc, "?day=lunes").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{err: schedule.ErrInvalidInput}, "?day=9").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: schedule.ErrInternal}, "").Code)
}
