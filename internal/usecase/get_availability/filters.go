package get_availability

import (
	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// removeManuallyBlocked убирает интервалы, пересекающиеся с ручными блокировками.
// Частичное пересечение убирает интервал целиком (без обрезки).
func removeManuallyBlocked(ranges []types.TimeRange, blocks []*domain.ManualBlock) []types.TimeRange {
	blocking := make([]types.TimeRange, 0, len(blocks))
	for _, b := range blocks {
		if b.IsBlocking() {
			blocking = append(blocking, b.TimeRange)
		}
	}
	if len(blocking) == 0 {
		return ranges
	}

	result := make([]types.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if !types.OverlapsAny(r, blocking) {
			result = append(result, r)
		}
	}
	return result
}

// applySameDayCutoff оставляет интервалы, начинающиеся не раньше now + SameDayLeadMinutes
func applySameDayCutoff(ranges []types.TimeRange, now types.Clock) []types.TimeRange {
	cutoff := now.Minutes() + domain.SameDayLeadMinutes

	result := make([]types.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Start.Minutes() >= cutoff {
			result = append(result, r)
		}
	}
	return result
}
