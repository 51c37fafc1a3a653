package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/BeautyBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	if req.ClientEmail != nil && *req.ClientEmail != "" && !strings.Contains(*req.ClientEmail, "@") {
		return fmt.Errorf("%w: invalid clientEmail", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceIdentifiers) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	// "any" допустимо только для поиска, запись всегда привязана к месту
	if !req.LocationType.IsBookable() {
		return fmt.Errorf("%w: locationType must be STUDIO or HOME", ErrInvalidInput)
	}

	if req.LocationType == domain.LocationHome {
		if req.Address == nil || strings.TrimSpace(*req.Address) == "" {
			return fmt.Errorf("%w: address is required for home visits", ErrInvalidInput)
		}
	}
	if req.Address != nil && utf8.RuneCountInString(*req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address must be at most %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.TimeRange.IsEmpty() {
		return fmt.Errorf("%w: timeRange is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// serviceSummary возвращает денормализованные названия и суммарную цену услуг
func serviceSummary(services []*domain.Service) (string, float64) {
	names := make([]string, len(services))
	total := 0.0
	for i, s := range services {
		names[i] = s.Name
		total += s.Price
	}
	return strings.Join(names, ", "), total
}
