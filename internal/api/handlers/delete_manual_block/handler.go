package delete_manual_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule"
)

const (
	msgInvalidBlockID = "ID de bloqueo inválido"
	msgBlockNotFound  = "Bloqueo no encontrado"
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

// Handle DELETE /api/v1/admin/availability/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := handlers.PathID(r, "blockId")
	if err != nil {
		h.logger.Warn("DELETE /admin/availability/blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteManualBlock(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrManualBlockNotFound):
			h.logger.Warn("DELETE /admin/availability/blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/availability/blocks/{id} - Failed to delete block: block_id=%d, error=%v",
				blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/blocks/{id} - Block deleted: block_id=%d", blockID)
	handlers.RespondNoContent(w)
}
