package create_appointment

import (
	"time"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName         string
	ClientPhone        string
	ClientEmail        *string
	Date               time.Time           // Дата записи (без времени)
	ServiceIdentifiers []string            // ID услуг или строки вида "Название (S/ цена)"
	LocationType       domain.LocationType // STUDIO или HOME
	TimeRange          types.TimeRange     // Один из интервалов, выданных поиском доступности
	Address            *string             // Обязателен для HOME
	Notes              *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
