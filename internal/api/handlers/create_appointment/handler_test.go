package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	createAppointment "github.com/m04kA/BeautyBookingService/internal/usecase/create_appointment"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

type fakeUseCase struct {
	err     error
	lastReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{Appointment: &domain.Appointment{
		ID:           7,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		Date:         req.Date,
		TimeRange:    req.TimeRange,
		LocationType: req.LocationType,
		Status:       domain.StatusPending,
	}}, nil
}

const validBody = `{
	"clientName": "Ana Torres",
	"clientPhone": "+51 999 888 777",
	"date": "2025-12-23",
	"serviceTypes": ["1", "Peinado (S/ 80)"],
	"locationType": "STUDIO",
	"timeRange": "11:00 - 13:00"
}`

func post(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := post(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC), uc.lastReq.Date)
	assert.Equal(t, []string{"1", "Peinado (S/ 80)"}, uc.lastReq.ServiceIdentifiers)
	assert.Equal(t, types.NewTimeRange(types.NewClock(11, 0), types.NewClock(13, 0)), uc.lastReq.TimeRange)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "PENDING", body["status"])
	assert.Equal(t, "11:00 - 13:00", body["timeRange"])
}

func TestHandle_PriceWithThousandsSeparator(t *testing.T) {
	uc := &fakeUseCase{}
	body := strings.Replace(validBody,
		`["1", "Peinado (S/ 80)"]`,
		`["Maquillaje de novia (S/ 1,500), Peinado (S/ 80)"]`, 1)

	rec := post(t, uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"Maquillaje de novia (S/ 1,500)", "Peinado (S/ 80)"}, uc.lastReq.ServiceIdentifiers)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{"clientName":`, msgInvalidRequestBody},
		{"empty", ``, msgInvalidRequestBody},
		{"bad date", strings.Replace(validBody, "2025-12-23", "mañana", 1), msgInvalidDateOrRange},
		{"bad range", strings.Replace(validBody, "11:00 - 13:00", "11:00", 1), msgInvalidDateOrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	unknown := &getAvailability.UnknownServiceError{Searched: "Uñas", Original: "Uñas", Available: []string{"Peinado"}}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"slot taken", fmt.Errorf("%w: 11:00 - 13:00", createAppointment.ErrSlotNotAvailable), http.StatusConflict, msgSlotNotAvailable},
		{"unknown service", fmt.Errorf("%w: %w", createAppointment.ErrUnknownService, unknown), http.StatusBadRequest, `"availableServices":["Peinado"]`},
		{"past date", createAppointment.ErrPastDate, http.StatusBadRequest, msgPastDate},
		{"invalid input", fmt.Errorf("%w: clientPhone is required", createAppointment.ErrInvalidInput), http.StatusBadRequest, msgInvalidInput},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
