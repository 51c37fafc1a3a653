package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BeautyBookingService/internal/service/appointments"
	"github.com/m04kA/BeautyBookingService/internal/service/appointments/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, ClientName: "Ana Torres", Status: "PENDING"}, nil
}

func get(svc *fakeService, id string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments/"+id, nil),
		map[string]string{"appointmentId": id})
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(&fakeService{}, "3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientName":"Ana Torres"`)

	rec = get(&fakeService{}, "0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(&fakeService{err: appointments.ErrAppointmentNotFound}, "3")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgAppointmentNotFound)

	rec = get(&fakeService{err: appointments.ErrInternal}, "3")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
