package domain

import (
	"time"

	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// RegularWindow is a recurring weekly open-hours block.
// Several disjoint windows may exist per day and location (morning and afternoon).
type RegularWindow struct {
	ID           int64
	DayOfWeek    time.Weekday
	TimeRange    types.TimeRange
	LocationType LocationType
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SpecialDate overrides regular windows for one calendar date.
// IsAvailable=false closes the whole day; custom hours replace the regular windows.
type SpecialDate struct {
	ID          int64
	Date        time.Time
	IsAvailable bool
	TimeRange   *types.TimeRange
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsClosed returns true if the whole day is closed
func (s *SpecialDate) IsClosed() bool {
	return !s.IsAvailable
}

// HasCustomHours returns true if the date is open with its own hours
func (s *SpecialDate) HasCustomHours() bool {
	return s.IsAvailable && s.TimeRange != nil && !s.TimeRange.IsEmpty()
}

// ManualBlock is an administrator-imposed exclusion for a date.
// Only blocks with Available=false remove generated ranges.
type ManualBlock struct {
	ID        int64
	Date      time.Time
	TimeRange types.TimeRange
	Available bool
	Reason    *string
	CreatedAt time.Time
}

// IsBlocking returns true if the block removes ranges overlapping it
func (b *ManualBlock) IsBlocking() bool {
	return !b.Available
}
