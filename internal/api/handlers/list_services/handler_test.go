package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/service/catalog/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
)

type fakeService struct {
	err        error
	activeOnly *bool
}

func (f *fakeService) List(_ context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	f.activeOnly = &activeOnly
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceListResponse{Services: []models.ServiceResponse{
		{ID: 1, Name: "Maquillaje social", DisplayName: "Maquillaje social (S/ 150)"},
	}}, nil
}

func TestHandle_PublicIgnoresIncludeInactive(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services?includeInactive=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *svc.activeOnly)
	assert.Contains(t, rec.Body.String(), `"displayName":"Maquillaje social (S/ 150)"`)
}

func TestHandle_AdminIncludesInactive(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewAdminHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/services?includeInactive=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, *svc.activeOnly)

	rec = httptest.NewRecorder()
	NewAdminHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/services?includeInactive=si", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
