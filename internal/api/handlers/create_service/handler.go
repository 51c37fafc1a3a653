package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/catalog"
	"github.com/m04kA/BeautyBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidService     = "Datos del servicio inválidos: nombre, duración (5-720 min) y precio no negativo"
	msgDuplicateService   = "Ya existe un servicio con ese nombre"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/services - Invalid service: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrDuplicateService):
			h.logger.Warn("POST /admin/services - Duplicate service: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateService)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
