package get_availability

import (
	"net/url"

	"github.com/m04kA/BeautyBookingService/internal/api/handlers"
	"github.com/m04kA/BeautyBookingService/internal/domain"
	getAvailability "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string   `json:"date"`
	AvailableRanges []string `json:"availableRanges"` // "09:00 - 11:00"
	Message         *string  `json:"message,omitempty"`
	IsSpecialDate   bool     `json:"isSpecialDate"`
	SpecialDateNote *string  `json:"specialDateNote,omitempty"`
	IsToday         bool     `json:"isToday,omitempty"`
}

// UnknownServiceResponse тело ответа, когда услугу не удалось сопоставить с каталогом
type UnknownServiceResponse struct {
	Error               string   `json:"error"`
	Details             string   `json:"details"`
	OriginalServiceType string   `json:"originalServiceType"`
	AvailableServices   []string `json:"availableServices"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		AvailableRanges: types.TimeRangeStrings(resp.AvailableRanges),
		Message:         resp.Message,
		IsSpecialDate:   resp.IsSpecialDate,
		SpecialDateNote: resp.SpecialDateNote,
		IsToday:         resp.IsToday,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Отсутствующие параметры остаются пустыми, их проверяет use case.
func ToUseCaseRequest(query url.Values) (*getAvailability.Request, error) {
	req := &getAvailability.Request{
		ServiceIdentifiers: getAvailability.SplitServiceIdentifiers(query.Get("serviceTypes")),
		LocationType:       domain.ParseLocationType(query.Get("locationType")),
	}

	if raw := query.Get("date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}
