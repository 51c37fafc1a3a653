package domain

import (
	"fmt"
	"time"
)

// Service represents a catalog entry (e.g. bridal makeup)
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName returns the label shown in the booking form, e.g. "Maquillaje social (S/ 150)"
func (s *Service) DisplayName() string {
	return fmt.Sprintf("%s (%s %s)", s.Name, CurrencySymbol, formatPrice(s.Price))
}

func formatPrice(price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%d", int64(price))
	}
	return fmt.Sprintf("%.2f", price)
}
