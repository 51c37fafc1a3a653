package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	appointmentModels "github.com/m04kA/BeautyBookingService/internal/service/appointments/models"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	createAppointment "github.com/m04kA/BeautyBookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido"
	msgInvalidDateOrRange = "Fecha u horario inválido, se espera date en formato YYYY-MM-DD y timeRange en formato HH:MM - HH:MM"
	msgInvalidInput       = "Datos de la reserva incompletos o inválidos"
	msgPastDate           = "No se pueden hacer reservas en fechas pasadas"
	msgUnknownService     = "Servicio no encontrado"
	msgSlotNotAvailable   = "El horario seleccionado ya no está disponible"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unknown *getAvailability.UnknownServiceError

		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, range=%s", req.Date, req.TimeRange)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.As(err, &unknown):
			h.logger.Warn("POST /appointments - Unknown service: searched=%q", unknown.Searched)
			handlers.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":               msgUnknownService,
				"originalServiceType": unknown.Original,
				"availableServices":   unknown.Available,
			})

		case errors.Is(err, createAppointment.ErrUnknownService):
			h.logger.Warn("POST /appointments - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, range=%s, error=%v",
				req.Date, req.TimeRange, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, date=%s, range=%s",
		result.Appointment.ID, req.Date, req.TimeRange)
	handlers.RespondJSON(w, http.StatusCreated, appointmentModels.FromDomainAppointment(result.Appointment))
}
