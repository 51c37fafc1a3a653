package upsert_special_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

const (
	msgInvalidDate        = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidSpecialDate = "Fecha especial inválida: el horario requiere inicio y fin, con el inicio antes del fin"
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

// Handle PUT /api/v1/admin/availability/special-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/special-dates/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req models.UpsertSpecialDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/special-dates/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.UpsertSpecialDate(r.Context(), date, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability/special-dates/{date} - Invalid special date: date=%s, %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidSpecialDate)

		default:
			h.logger.Error("PUT /admin/availability/special-dates/{date} - Failed to save special date: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability/special-dates/{date} - Special date saved: date=%s, isAvailable=%t",
		saved.Date, saved.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, saved)
}
