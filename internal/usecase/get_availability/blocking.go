package get_availability

import (
	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// buildBlockedRanges строит список занятых интервалов из существующих записей.
//
// Правила зависят от сочетания мест:
//   - записи в студии группируются (соседние ближе 30 минут сливаются);
//     для запроса STUDIO группа блокирует только свой интервал,
//     для запроса HOME - интервал плюс 60 минут на дорогу с каждой стороны;
//   - каждая выездная запись блокирует свой интервал плюс 60 минут с каждой стороны
//     независимо от места запроса.
func buildBlockedRanges(appointments []*domain.Appointment, requested domain.LocationType) []types.TimeRange {
	studio := make([]types.TimeRange, 0)
	home := make([]types.TimeRange, 0)

	for _, a := range appointments {
		// Неактивные записи не занимают время
		if !a.IsActive() || a.TimeRange.IsEmpty() {
			continue
		}
		switch a.LocationType {
		case domain.LocationHome:
			home = append(home, a.TimeRange)
		default:
			studio = append(studio, a.TimeRange)
		}
	}

	blocked := make([]types.TimeRange, 0, len(studio)+len(home))

	for _, group := range groupStudioRanges(studio, domain.StudioMergeThresholdMinutes) {
		if requested == domain.LocationHome {
			group = group.Expand(domain.TravelBufferMinutes, domain.TravelBufferMinutes)
		}
		blocked = append(blocked, group)
	}

	for _, r := range home {
		blocked = append(blocked, r.Expand(domain.TravelBufferMinutes, domain.TravelBufferMinutes))
	}

	return blocked
}

// groupStudioRanges сливает интервалы, между которыми не больше threshold минут.
// Возвращает группы, отсортированные по началу.
func groupStudioRanges(ranges []types.TimeRange, threshold int) []types.TimeRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]types.TimeRange, len(ranges))
	copy(sorted, ranges)
	types.SortTimeRanges(sorted)

	groups := make([]types.TimeRange, 0, len(sorted))
	current := sorted[0]

	for _, r := range sorted[1:] {
		if r.Start <= current.End.AddMinutes(threshold) {
			if r.End > current.End {
				current.End = r.End
			}
			continue
		}
		groups = append(groups, current)
		current = r
	}
	groups = append(groups, current)

	return groups
}
