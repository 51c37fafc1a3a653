package get_availability

import (
	"sort"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

// slotStrategy нарезает свободный промежуток на интервалы длительностью duration
type slotStrategy func(gap types.TimeRange, duration int, blocked []types.TimeRange) []types.TimeRange

// strategyFor выбирает стратегию нарезки по месту оказания услуги:
//   - STUDIO: интервалы встык от начала промежутка;
//   - HOME: старт по сетке 30 минут с шагом 30 минут (пересекающиеся варианты);
//   - any и прочие: сетка 30 минут с шагом max(duration, 30).
func strategyFor(location domain.LocationType, duration int) slotStrategy {
	switch location {
	case domain.LocationStudio:
		return backToBackSlots
	case domain.LocationHome:
		return gridSlots(domain.HomeSlotGridMinutes)
	default:
		step := duration
		if step < domain.HomeSlotGridMinutes {
			step = domain.HomeSlotGridMinutes
		}
		return gridSlots(step)
	}
}

// backToBackSlots укладывает интервалы вплотную друг к другу, пока помещаются
func backToBackSlots(gap types.TimeRange, duration int, blocked []types.TimeRange) []types.TimeRange {
	slots := make([]types.TimeRange, 0)
	if duration <= 0 || gap.Minutes() < duration {
		return slots
	}

	for start := gap.Start; start.Minutes()+duration <= gap.End.Minutes(); start = types.Clock(start.Minutes() + duration) {
		slot := types.NewTimeRange(start, start.AddMinutes(duration))
		// Промежуток уже свободен, но перепроверяем на всякий случай
		if types.OverlapsAny(slot, blocked) {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// gridSlots возвращает стратегию: начало по сетке 30 минут, шаг step
func gridSlots(step int) slotStrategy {
	return func(gap types.TimeRange, duration int, blocked []types.TimeRange) []types.TimeRange {
		slots := make([]types.TimeRange, 0)
		if duration <= 0 || step <= 0 {
			return slots
		}

		for start := gap.Start.RoundUp(domain.HomeSlotGridMinutes); start.Minutes()+duration <= gap.End.Minutes(); start = types.Clock(start.Minutes() + step) {
			slot := types.NewTimeRange(start, start.AddMinutes(duration))
			if types.OverlapsAny(slot, blocked) {
				continue
			}
			slots = append(slots, slot)
		}

		return slots
	}
}

// openGaps делит рабочий период на свободные промежутки.
// Точки разбиения: границы периода и обрезанные границы пересекающих его блокировок.
// Промежутки внутри блокировок отбрасываются, соседние свободные сливаются.
func openGaps(period types.TimeRange, blocked []types.TimeRange) []types.TimeRange {
	gaps := make([]types.TimeRange, 0)
	if period.IsEmpty() {
		return gaps
	}

	points := []types.Clock{period.Start, period.End}
	relevant := make([]types.TimeRange, 0, len(blocked))
	for _, b := range blocked {
		if !b.Overlaps(period) {
			continue
		}
		clipped := b.Clip(period)
		relevant = append(relevant, clipped)
		points = append(points, clipped.Start, clipped.End)
	}

	points = uniqueSortedClocks(points)

	for i := 0; i+1 < len(points); i++ {
		gap := types.NewTimeRange(points[i], points[i+1])
		if isCovered(gap, relevant) {
			continue
		}
		if n := len(gaps); n > 0 && gaps[n-1].End == gap.Start {
			gaps[n-1].End = gap.End
			continue
		}
		gaps = append(gaps, gap)
	}

	return gaps
}

// isCovered проверяет, что gap целиком лежит внутри одной из блокировок
func isCovered(gap types.TimeRange, blocked []types.TimeRange) bool {
	for _, b := range blocked {
		if b.Contains(gap) {
			return true
		}
	}
	return false
}

func uniqueSortedClocks(points []types.Clock) []types.Clock {
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	result := points[:0]
	for i, p := range points {
		if i == 0 || p != points[i-1] {
			result = append(result, p)
		}
	}
	return result
}

// generateSlots строит кандидатов по всем рабочим периодам
func generateSlots(periods []types.TimeRange, blocked []types.TimeRange, duration int, location domain.LocationType) []types.TimeRange {
	strategy := strategyFor(location, duration)
	slots := make([]types.TimeRange, 0)

	for _, period := range mergeOverlappingPeriods(periods) {
		for _, gap := range openGaps(period, blocked) {
			slots = append(slots, strategy(gap, duration, blocked)...)
		}
	}

	return slots
}

// mergeOverlappingPeriods объединяет пересекающиеся рабочие периоды (например, STUDIO и HOME при "any").
// Соприкасающиеся периоды остаются раздельными.
func mergeOverlappingPeriods(periods []types.TimeRange) []types.TimeRange {
	if len(periods) < 2 {
		return periods
	}

	sorted := make([]types.TimeRange, len(periods))
	copy(sorted, periods)
	types.SortTimeRanges(sorted)

	merged := make([]types.TimeRange, 0, len(sorted))
	current := sorted[0]
	for _, p := range sorted[1:] {
		if p.Start < current.End {
			if p.End > current.End {
				current.End = p.End
			}
			continue
		}
		merged = append(merged, current)
		current = p
	}
	merged = append(merged, current)

	return merged
}

// cleanupRanges убирает интервалы нулевой ширины и дубликаты, сортирует по началу
func cleanupRanges(ranges []types.TimeRange) []types.TimeRange {
	seen := make(map[types.TimeRange]struct{}, len(ranges))
	result := make([]types.TimeRange, 0, len(ranges))

	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		result = append(result, r)
	}

	types.SortTimeRanges(result)
	return result
}
