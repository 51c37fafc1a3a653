package create_appointment

import (
	"fmt"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/domain"
	createAppointment "github.com/m04kA/BeautyBookingService/internal/usecase/create_appointment"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName   string   `json:"clientName"`
	ClientPhone  string   `json:"clientPhone"`
	ClientEmail  *string  `json:"clientEmail,omitempty"`
	Date         string   `json:"date"`         // "2025-12-23"
	ServiceTypes []string `json:"serviceTypes"` // ID или "Maquillaje social (S/ 150)"
	LocationType string   `json:"locationType"` // STUDIO или HOME
	TimeRange    string   `json:"timeRange"`    // "09:00 - 11:00", из ответа /availability
	Address      *string  `json:"address,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и интервала)
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	timeRange, err := types.ParseTimeRange(r.TimeRange)
	if err != nil {
		return nil, fmt.Errorf("timeRange: %w", err)
	}

	services := make([]string, 0, len(r.ServiceTypes))
	for _, s := range r.ServiceTypes {
		services = append(services, getAvailability.SplitServiceIdentifiers(s)...)
	}

	return &createAppointment.Request{
		ClientName:         r.ClientName,
		ClientPhone:        r.ClientPhone,
		ClientEmail:        r.ClientEmail,
		Date:               date,
		ServiceIdentifiers: services,
		LocationType:       domain.ParseLocationType(r.LocationType),
		TimeRange:          timeRange,
		Address:            r.Address,
		Notes:              r.Notes,
	}, nil
}
