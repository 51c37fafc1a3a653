package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/ptr"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

type fakeUseCase struct {
	resp    *getAvailability.Response
	err     error
	lastReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func serve(t *testing.T, uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?"+query, nil)
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Date: time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
		AvailableRanges: []types.TimeRange{
			types.NewTimeRange(types.NewClock(9, 0), types.NewClock(11, 0)),
			types.NewTimeRange(types.NewClock(11, 0), types.NewClock(13, 0)),
		},
		IsSpecialDate:   true,
		SpecialDateNote: ptr.Ptr("Horario navideño"),
	}}

	rec := serve(t, uc, "date=2025-12-23&serviceTypes=1,Peinado%20(S/%2080)&locationType=studio")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1", "Peinado (S/ 80)"}, uc.lastReq.ServiceIdentifiers)
	assert.Equal(t, domain.LocationStudio, uc.lastReq.LocationType)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-12-23", body["date"])
	assert.Equal(t, []interface{}{"09:00 - 11:00", "11:00 - 13:00"}, body["availableRanges"])
	assert.Equal(t, true, body["isSpecialDate"])
	assert.Equal(t, "Horario navideño", body["specialDateNote"])
	assert.NotContains(t, body, "isToday")
	assert.NotContains(t, body, "message")
}

func TestHandle_PriceWithThousandsSeparator(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Date: time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC),
	}}

	query := url.Values{
		"date":         {"2025-12-23"},
		"serviceTypes": {"Maquillaje social (S/ 1,500), 2"},
		"locationType": {"STUDIO"},
	}
	rec := serve(t, uc, query.Encode())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Maquillaje social (S/ 1,500)", "2"}, uc.lastReq.ServiceIdentifiers)
}

func TestHandle_EmptyRangesAreArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Date:    time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Message: ptr.Ptr("Fecha no disponible"),
	}}

	rec := serve(t, uc, "date=2025-12-25&serviceTypes=1&locationType=any")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"availableRanges":[]`)
	assert.Contains(t, rec.Body.String(), `"message":"Fecha no disponible"`)
}

func TestHandle_UnknownService(t *testing.T) {
	uc := &fakeUseCase{err: &getAvailability.UnknownServiceError{
		Searched:  "Nonexistent Service",
		Original:  "Nonexistent Service (S/ 10)",
		Available: []string{"Maquillaje social", "Peinado"},
	}}

	rec := serve(t, uc, "date=2025-12-23&serviceTypes=Nonexistent%20Service%20(S/%2010)&locationType=STUDIO")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body UnknownServiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgUnknownService, body.Error)
	assert.Equal(t, "Nonexistent Service (S/ 10)", body.OriginalServiceType)
	assert.Equal(t, []string{"Maquillaje social", "Peinado"}, body.AvailableServices)
	assert.Contains(t, body.Details, "Nonexistent Service")
	assert.NotContains(t, rec.Body.String(), "availableRanges")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantError  string
	}{
		{"bad date", "date=23-12-2025&serviceTypes=1&locationType=HOME", nil, http.StatusBadRequest, msgInvalidDate},
		{"missing parameter", "serviceTypes=1", fmt.Errorf("%w: date is required", getAvailability.ErrMissingParameter), http.StatusBadRequest, msgMissingParameter},
		{"past date", "date=2020-01-01&serviceTypes=1&locationType=HOME", getAvailability.ErrPastDate, http.StatusBadRequest, msgPastDate},
		{"internal", "date=2025-12-23&serviceTypes=1&locationType=HOME", fmt.Errorf("%w: db down", getAvailability.ErrInternal), http.StatusInternalServerError, "Error interno del servidor"},
		{"unexpected", "date=2025-12-23&serviceTypes=1&locationType=HOME", errors.New("boom"), http.StatusInternalServerError, "Error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, tt.query)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "availableRanges")
		})
	}
}
