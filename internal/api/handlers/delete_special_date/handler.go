package delete_special_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
)

const (
	msgInvalidDate         = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgSpecialDateNotFound = "No hay una fecha especial configurada para ese día"
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

// Handle DELETE /api/v1/admin/availability/special-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/special-dates/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteSpecialDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSpecialDateNotFound):
			h.logger.Warn("DELETE /admin/availability/special-dates/{date} - Special date not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgSpecialDateNotFound)

		default:
			h.logger.Error("DELETE /admin/availability/special-dates/{date} - Failed to delete special date: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/special-dates/{date} - Special date deleted: date=%s", dateStr)
	handlers.RespondNoContent(w)
}
