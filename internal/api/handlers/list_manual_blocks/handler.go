package list_manual_blocks

import (
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
)

const (
	msgInvalidDate = "Parámetro date requerido en formato YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability/blocks
// Query params: date (обязательно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/availability/blocks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListManualBlocks(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/availability/blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/availability/blocks - Blocks retrieved successfully: count=%d", len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
