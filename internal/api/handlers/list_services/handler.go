package list_services

import (
	"net/http"
	"strconv"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
)

const (
	msgInvalidParams = "Parámetros de consulta inválidos"
)

type Handler struct {
	service CatalogService
	logger  Logger
	// allowInactive разрешает ?includeInactive=true (только для админки)
	allowInactive bool
}

// NewHandler публичный список: только активные услуги
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NewAdminHandler список для админки с поддержкой includeInactive
func NewAdminHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service:       service,
		logger:        logger,
		allowInactive: true,
	}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
// Query params: includeInactive (опционально, только админка)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true

	if raw := r.URL.Query().Get("includeInactive"); raw != "" && h.allowInactive {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /services - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		activeOnly = !includeInactive
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d, activeOnly=%t", len(result.Services), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
