package delete_manual_block

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) DeleteManualBlock(_ context.Context, _ int64) error {
	return f.err
}

func del(svc *fakeService, id string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/availability/blocks/"+id, nil),
		map[string]string{"blockId": id})
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, del(&fakeService{}, "8").Code)
	assert.Equal(t, http.StatusBadRequest, del(&fakeService{}, "0").Code)
	assert.Equal(t, http.StatusNotFound, del(&fakeService{err: schedule.ErrManualBlockNotFound}, "8").Code)
	assert.Equal(t, http.StatusInternalServerError, del(&fakeService{err: schedule.ErrInternal}, "8").Code)
}
