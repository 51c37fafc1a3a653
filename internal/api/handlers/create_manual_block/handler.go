package create_manual_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidBlock       = "Bloqueo inválido: fecha YYYY-MM-DD e inicio antes del fin"
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

// Handle POST /api/v1/admin/availability/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateManualBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateManualBlock(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability/blocks - Invalid block: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /admin/availability/blocks - Failed to create block: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability/blocks - Block created: block_id=%d, date=%s", created.ID, created.Date)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
