package domain

// Availability policy
const (
	// StudioMergeThresholdMinutes studio appointments closer than this are merged into one group
	StudioMergeThresholdMinutes = 30
	// TravelBufferMinutes blocked on both sides of a home visit (and of a studio group for home requests)
	TravelBufferMinutes = 60
	// SameDayLeadMinutes minimum notice for a same-day booking
	SameDayLeadMinutes = 120
	// HomeSlotGridMinutes home visits start on this grid
	HomeSlotGridMinutes = 30
	// DefaultServiceDurationMinutes used when the resolved duration is not positive
	DefaultServiceDurationMinutes = 120
	// MinFuzzyMatchLength shortest fragment (in letters) a substring service match may rely on
	MinFuzzyMatchLength = 3
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 720 // 12 hours
	MaxClientNameLength       = 120
	MaxNotesLength            = 500
	MaxAddressLength          = 300
	MaxServiceNameLength      = 120
	MaxSpecialDateNoteLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CurrencySymbol used in service display names (Peruvian sol)
const CurrencySymbol = "S/"

// DefaultTimezone business timezone when none is configured
const DefaultTimezone = "America/Lima"

// InactiveStatuses statuses ignored by availability
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
