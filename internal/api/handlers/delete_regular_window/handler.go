package delete_regular_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
)

const (
	msgInvalidWindowID = "ID de horario inválido"
	msgWindowNotFound  = "Horario no encontrado"
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

// Handle DELETE /api/v1/admin/availability/regular/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windowID, err := handlers.PathID(r, "windowId")
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/regular/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.DeleteRegularWindow(r.Context(), windowID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrRegularWindowNotFound):
			h.logger.Warn("DELETE /admin/availability/regular/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		default:
			h.logger.Error("DELETE /admin/availability/regular/{id} - Failed to delete window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/regular/{id} - Window deleted: window_id=%d", windowID)
	handlers.RespondNoContent(w)
}
