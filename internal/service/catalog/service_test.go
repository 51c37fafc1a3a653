package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	catalogRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/BeautyBookingService/internal/service/catalog/models"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/ptr"
)

type fakeRepo struct {
	services     []*domain.Service
	err          error
	createErr    error
	activeFilter *bool
}

func (f *fakeRepo) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	f.activeFilter = &activeOnly
	return f.services, f.err
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.services {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = int64(len(f.services) + 1)
	f.services = append(f.services, s)
	return s, nil
}

func (f *fakeRepo) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return s, nil
}

func testServices() []*domain.Service {
	return []*domain.Service{
		{ID: 1, Name: "Maquillaje social", DurationMinutes: 120, Price: 150, IsActive: true},
		{ID: 2, Name: "Maquillaje de novia", DurationMinutes: 180, Price: 450, IsActive: true},
	}
}

func TestList(t *testing.T) {
	repo := &fakeRepo{services: testServices()}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Maquillaje social (S/ 150)", resp.Services[0].DisplayName)
	assert.True(t, *repo.activeFilter)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("timeout")}, logger.NewNop())
	_, err := svc.List(context.Background(), false)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "  Peinado ",
		DurationMinutes: 60,
		Price:           80,
	})

	require.NoError(t, err)
	assert.Equal(t, "Peinado", resp.Name)
	assert.Equal(t, "Peinado (S/ 80)", resp.DisplayName)
	assert.True(t, resp.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: "  ", DurationMinutes: 60, Price: 80}},
		{"zero duration", models.CreateServiceRequest{Name: "Peinado", DurationMinutes: 0, Price: 80}},
		{"too long", models.CreateServiceRequest{Name: "Peinado", DurationMinutes: 721, Price: 80}},
		{"negative price", models.CreateServiceRequest{Name: "Peinado", DurationMinutes: 60, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{}, logger.NewNop())
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeRepo{createErr: catalogRepo.ErrDuplicateService}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{Name: "Peinado", DurationMinutes: 60, Price: 80})
	assert.ErrorIs(t, err, ErrDuplicateService)
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{services: testServices()}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Update(context.Background(), 2, &models.UpdateServiceRequest{
		Price:    ptr.Ptr(500.0),
		IsActive: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Maquillaje de novia", resp.Name)
	assert.InDelta(t, 500.0, resp.Price, 0.001)
	assert.False(t, resp.IsActive)
	assert.Equal(t, 180, resp.DurationMinutes)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{services: testServices()}, logger.NewNop())
	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{Price: ptr.Ptr(1.0)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_InvalidDuration(t *testing.T) {
	svc := NewService(&fakeRepo{services: testServices()}, logger.NewNop())
	_, err := svc.Update(context.Background(), 1, &models.UpdateServiceRequest{DurationMinutes: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
