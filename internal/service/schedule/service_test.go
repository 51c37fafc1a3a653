package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/BeautyBookingService/internal/service/schedule/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/ptr"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

type fakeRepo struct {
	windows []*domain.RegularWindow
	special *domain.SpecialDate
	blocks  []*domain.ManualBlock
	err     error

	listedDay      *time.Weekday
	listedLocation *domain.LocationType
	listedAll      bool
}

func (f *fakeRepo) ListRegularWindows(_ context.Context, day time.Weekday, location *domain.LocationType, _ bool) ([]*domain.RegularWindow, error) {
	f.listedDay, f.listedLocation = &day, location
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.RegularWindow, 0)
	for _, w := range f.windows {
		if w.DayOfWeek == day && (location == nil || w.LocationType == *location) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (f *fakeRepo) ListAllRegularWindows(_ context.Context) ([]*domain.RegularWindow, error) {
	f.listedAll = true
	return f.windows, f.err
}

func (f *fakeRepo) CreateRegularWindow(_ context.Context, w *domain.RegularWindow) (*domain.RegularWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	w.ID = int64(len(f.windows) + 1)
	f.windows = append(f.windows, w)
	return w, nil
}

func (f *fakeRepo) DeleteRegularWindow(_ context.Context, id int64) error {
	for i, w := range f.windows {
		if w.ID == id {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrRegularWindowNotFound
}

func (f *fakeRepo) UpsertSpecialDate(_ context.Context, sd *domain.SpecialDate) (*domain.SpecialDate, error) {
	if f.err != nil {
		return nil, f.err
	}
	sd.ID = 1
	f.special = sd
	return sd, nil
}

func (f *fakeRepo) DeleteSpecialDate(_ context.Context, _ time.Time) error {
	if f.special == nil {
		return scheduleRepo.ErrSpecialDateNotFound
	}
	f.special = nil
	return nil
}

func (f *fakeRepo) ListManualBlocks(_ context.Context, _ time.Time) ([]*domain.ManualBlock, error) {
	return f.blocks, f.err
}

func (f *fakeRepo) CreateManualBlock(_ context.Context, b *domain.ManualBlock) (*domain.ManualBlock, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = int64(len(f.blocks) + 1)
	f.blocks = append(f.blocks, b)
	return b, nil
}

func (f *fakeRepo) DeleteManualBlock(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	return scheduleRepo.ErrManualBlockNotFound
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func window(t *testing.T, day time.Weekday, s string, location domain.LocationType) *domain.RegularWindow {
	t.Helper()
	tr, err := types.ParseTimeRange(s)
	require.NoError(t, err)
	return &domain.RegularWindow{ID: int64(day)*10 + 1, DayOfWeek: day, TimeRange: tr, LocationType: location, IsActive: true}
}

func newService(repo *fakeRepo) (*Service, *fakeTxManager) {
	tx := &fakeTxManager{}
	return NewService(repo, tx, logger.NewNop()), tx
}

func TestListRegularWindows(t *testing.T) {
	repo := &fakeRepo{windows: []*domain.RegularWindow{
		window(t, time.Tuesday, "09:00 - 13:00", domain.LocationStudio),
		window(t, time.Wednesday, "15:00 - 19:00", domain.LocationHome),
	}}
	svc, _ := newService(repo)

	all, err := svc.ListRegularWindows(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, repo.listedAll)
	assert.Len(t, all.Windows, 2)

	tuesday, err := svc.ListRegularWindows(context.Background(), ptr.Ptr(int(time.Tuesday)))
	require.NoError(t, err)
	require.Len(t, tuesday.Windows, 1)
	assert.Equal(t, "09:00", tuesday.Windows[0].StartTime)
	assert.Equal(t, "13:00", tuesday.Windows[0].EndTime)
	assert.Equal(t, "STUDIO", tuesday.Windows[0].LocationType)
	assert.Nil(t, repo.listedLocation)

	_, err = svc.ListRegularWindows(context.Background(), ptr.Ptr(7))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRegularWindow(t *testing.T) {
	repo := &fakeRepo{windows: []*domain.RegularWindow{
		window(t, time.Tuesday, "09:00 - 13:00", domain.LocationStudio),
	}}
	svc, tx := newService(repo)

	resp, err := svc.CreateRegularWindow(context.Background(), &models.CreateRegularWindowRequest{
		DayOfWeek:    int(time.Tuesday),
		StartTime:    "2:00 p. m.",
		EndTime:      "18:00",
		LocationType: "studio",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "STUDIO", resp.LocationType)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.windows, 2)
}

func TestCreateRegularWindow_Overlap(t *testing.T) {
	repo := &fakeRepo{windows: []*domain.RegularWindow{
		window(t, time.Tuesday, "09:00 - 13:00", domain.LocationStudio),
	}}
	svc, _ := newService(repo)

	_, err := svc.CreateRegularWindow(context.Background(), &models.CreateRegularWindowRequest{
		DayOfWeek: int(time.Tuesday), StartTime: "12:00", EndTime: "15:00", LocationType: "STUDIO",
	})
	assert.ErrorIs(t, err, ErrOverlappingWindow)

	// Другое место в то же время допустимо
	_, err = svc.CreateRegularWindow(context.Background(), &models.CreateRegularWindowRequest{
		DayOfWeek: int(time.Tuesday), StartTime: "12:00", EndTime: "15:00", LocationType: "HOME",
	})
	assert.NoError(t, err)
}

func TestCreateRegularWindow_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateRegularWindowRequest
	}{
		{"day out of range", models.CreateRegularWindowRequest{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00", LocationType: "STUDIO"}},
		{"any location", models.CreateRegularWindowRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", LocationType: "any"}},
		{"end before start", models.CreateRegularWindowRequest{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00", LocationType: "HOME"}},
		{"bad time", models.CreateRegularWindowRequest{DayOfWeek: 1, StartTime: "nine", EndTime: "10:00", LocationType: "HOME"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tx := newService(&fakeRepo{})
			_, err := svc.CreateRegularWindow(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestCreateRegularWindow_RepositoryError(t *testing.T) {
	svc, _ := newService(&fakeRepo{err: errors.New("connection refused")})

	_, err := svc.CreateRegularWindow(context.Background(), &models.CreateRegularWindowRequest{
		DayOfWeek: 2, StartTime: "09:00", EndTime: "10:00", LocationType: "STUDIO",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDeleteRegularWindow_NotFound(t *testing.T) {
	svc, _ := newService(&fakeRepo{})
	assert.ErrorIs(t, svc.DeleteRegularWindow(context.Background(), 42), ErrRegularWindowNotFound)
}

func TestUpsertSpecialDate(t *testing.T) {
	date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

	t.Run("closed day ignores hours", func(t *testing.T) {
		repo := &fakeRepo{}
		svc, _ := newService(repo)

		resp, err := svc.UpsertSpecialDate(context.Background(), date, &models.UpsertSpecialDateRequest{
			IsAvailable: false,
			StartTime:   ptr.Ptr("09:00"),
			EndTime:     ptr.Ptr("12:00"),
			Note:        ptr.Ptr("Nochebuena"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-12-24", resp.Date)
		assert.False(t, resp.IsAvailable)
		assert.Nil(t, resp.StartTime)
		assert.Nil(t, repo.special.TimeRange)
	})

	t.Run("custom hours", func(t *testing.T) {
		svc, _ := newService(&fakeRepo{})

		resp, err := svc.UpsertSpecialDate(context.Background(), date, &models.UpsertSpecialDateRequest{
			IsAvailable: true,
			StartTime:   ptr.Ptr("08:00"),
			EndTime:     ptr.Ptr("12:00"),
		})

		require.NoError(t, err)
		require.NotNil(t, resp.StartTime)
		assert.Equal(t, "08:00", *resp.StartTime)
		assert.Equal(t, "12:00", *resp.EndTime)
	})

	t.Run("half of the hours", func(t *testing.T) {
		svc, _ := newService(&fakeRepo{})
		_, err := svc.UpsertSpecialDate(context.Background(), date, &models.UpsertSpecialDateRequest{
			IsAvailable: true,
			StartTime:   ptr.Ptr("08:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty hours", func(t *testing.T) {
		svc, _ := newService(&fakeRepo{})
		_, err := svc.UpsertSpecialDate(context.Background(), date, &models.UpsertSpecialDateRequest{
			IsAvailable: true,
			StartTime:   ptr.Ptr("12:00"),
			EndTime:     ptr.Ptr("12:00"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteSpecialDate_NotFound(t *testing.T) {
	svc, _ := newService(&fakeRepo{})
	err := svc.DeleteSpecialDate(context.Background(), time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrSpecialDateNotFound)
}

func TestManualBlocks(t *testing.T) {
	repo := &fakeRepo{}
	svc, _ := newService(repo)

	created, err := svc.CreateManualBlock(context.Background(), &models.CreateManualBlockRequest{
		Date:      "2025-12-23",
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    ptr.Ptr("Cita médica"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.Available)

	list, err := svc.ListManualBlocks(context.Background(), time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, list.Blocks, 1)
	assert.Equal(t, "2025-12-23", list.Blocks[0].Date)
	assert.Equal(t, "10:00", list.Blocks[0].StartTime)

	_, err = svc.CreateManualBlock(context.Background(), &models.CreateManualBlockRequest{
		Date: "23/12/2025", StartTime: "10:00", EndTime: "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, svc.DeleteManualBlock(context.Background(), 99), ErrManualBlockNotFound)
}
