package domain

import (
	"time"

	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked makeup session
type Appointment struct {
	ID           int64
	ClientName   string
	ClientPhone  string
	ClientEmail  *string
	Date         time.Time
	TimeRange    types.TimeRange
	LocationType LocationType
	Address      *string // Адрес клиента, обязателен для HOME

	// Denormalized data for history
	ServiceNames    string
	DurationMinutes int
	TotalPrice      float64
	Notes           *string

	Status    AppointmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time range.
// Only active appointments block availability.
func (a *Appointment) IsActive() bool {
	return a.Status.IsActive()
}

// IsActive returns true for statuses that occupy the schedule
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo returns true if the appointment may move to the given status
// PENDING -> CONFIRMED | CANCELLED
// CONFIRMED -> COMPLETED | CANCELLED
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// AppointmentsFilter фильтр для получения записей
type AppointmentsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	LocationType    *LocationType      // Фильтр по месту (опционально)
	IncludeInactive bool               // Включать ли отмененные и завершенные записи
}
