package list_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// date задает один день и имеет приоритет над startDate/endDate.
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if raw := query.Get("date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.StartDate, req.EndDate = &date, &date
	} else {
		if raw := query.Get("startDate"); raw != "" {
			start, err := handlers.ParseDate(raw)
			if err != nil {
				return nil, err
			}
			req.StartDate = &start
		}
		if raw := query.Get("endDate"); raw != "" {
			end, err := handlers.ParseDate(raw)
			if err != nil {
				return nil, err
			}
			req.EndDate = &end
		}
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if location := query.Get("locationType"); location != "" {
		req.LocationType = &location
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
