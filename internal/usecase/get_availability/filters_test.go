package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

func TestRemoveManuallyBlocked(t *testing.T) {
	input := ranges(t, "09:00 - 11:00", "11:00 - 13:00", "13:00 - 15:00")

	t.Run("partial overlap removes whole range", func(t *testing.T) {
		blocks := []*domain.ManualBlock{{TimeRange: tr(t, "12:30 - 13:30")}}
		got := removeManuallyBlocked(input, blocks)
		assert.Equal(t, ranges(t, "09:00 - 11:00"), got)
	})

	t.Run("touching block keeps range", func(t *testing.T) {
		blocks := []*domain.ManualBlock{{TimeRange: tr(t, "08:00 - 09:00")}}
		got := removeManuallyBlocked(input, blocks)
		assert.Equal(t, input, got)
	})

	t.Run("available block ignored", func(t *testing.T) {
		blocks := []*domain.ManualBlock{{TimeRange: tr(t, "09:00 - 15:00"), Available: true}}
		got := removeManuallyBlocked(input, blocks)
		assert.Equal(t, input, got)
	})
}

func TestApplySameDayCutoff(t *testing.T) {
	input := ranges(t, "11:00 - 12:00", "12:00 - 13:00", "12:05 - 13:05", "13:00 - 14:00")

	got := applySameDayCutoff(input, types.NewClock(10, 5))

	assert.Equal(t, ranges(t, "12:05 - 13:05", "13:00 - 14:00"), got)
}

func TestApplySameDayCutoff_LateEvening(t *testing.T) {
	got := applySameDayCutoff(ranges(t, "22:00 - 23:00", "23:00 - 24:00"), types.NewClock(22, 30))

	assert.Empty(t, got)
}
