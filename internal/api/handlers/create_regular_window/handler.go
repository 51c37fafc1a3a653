package create_regular_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidWindow      = "Horario inválido: día 0-6, inicio antes del fin y lugar STUDIO o HOME"
	msgOverlappingWindow  = "El horario se superpone con otro horario del mismo día y lugar"
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

// Handle POST /api/v1/admin/availability/regular
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRegularWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/regular - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateRegularWindow(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability/regular - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, schedule.ErrOverlappingWindow):
			h.logger.Warn("POST /admin/availability/regular - Overlapping window: %v", err)
			handlers.RespondConflict(w, msgOverlappingWindow)

		default:
			h.logger.Error("POST /admin/availability/regular - Failed to create window: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability/regular - Window created: window_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
