package get_availability

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate      = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgMissingParameter = "Faltan parámetros requeridos: date, serviceTypes y locationType"
	msgPastDate         = "No se pueden consultar fechas pasadas"
	msgUnknownService   = "Servicio no encontrado"
	unknownServiceFmt   = "No se encontró el servicio %q. Servicios disponibles: %d"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (YYYY-MM-DD или ISO), serviceTypes (через запятую), locationType (STUDIO|HOME|any)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unknown *getAvailability.UnknownServiceError

		switch {
		case errors.As(err, &unknown):
			h.logger.Warn("GET /availability - Unknown service: searched=%q, original=%q", unknown.Searched, unknown.Original)
			handlers.RespondJSON(w, http.StatusBadRequest, UnknownServiceResponse{
				Error:               msgUnknownService,
				Details:             fmt.Sprintf(unknownServiceFmt, unknown.Searched, len(unknown.Available)),
				OriginalServiceType: unknown.Original,
				AvailableServices:   unknown.Available,
			})

		case errors.Is(err, getAvailability.ErrMissingParameter):
			h.logger.Warn("GET /availability - Missing parameter: %v", err)
			handlers.RespondBadRequest(w, msgMissingParameter)

		case errors.Is(err, getAvailability.ErrPastDate):
			h.logger.Warn("GET /availability - Past date: %v", err)
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("GET /availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: date=%s, location=%s, ranges_count=%d",
		response.Date, useCaseReq.LocationType, len(response.AvailableRanges))
	handlers.RespondJSON(w, http.StatusOK, response)
}
