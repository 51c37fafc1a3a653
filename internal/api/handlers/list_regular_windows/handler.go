package list_regular_windows

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
)

const (
	msgInvalidDay = "Día inválido, se espera un número de 0 (domingo) a 6 (sábado)"
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

// Handle GET /api/v1/admin/availability/regular
// Query params: day (0-6, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var day *int
	if raw := r.URL.Query().Get("day"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /admin/availability/regular - Invalid day: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}
		day = &d
	}

	result, err := h.service.ListRegularWindows(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/availability/regular - Invalid day: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		default:
			h.logger.Error("GET /admin/availability/regular - Failed to list windows: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability/regular - Windows retrieved successfully: count=%d", len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
