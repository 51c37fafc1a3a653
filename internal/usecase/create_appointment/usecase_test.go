package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BeautyBookingService/internal/domain"
	"github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/ptr"
	"github.com/m04kA/BeautyBookingService/pkg/types"
)

type fakeResolver struct {
	resp    *get_availability.Response
	err     error
	lastReq *get_availability.Request
}

func (f *fakeResolver) Execute(_ context.Context, req *get_availability.Request) (*get_availability.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeRepo struct {
	created []*domain.Appointment
	err     error
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	a.ID = int64(len(f.created) + 1)
	f.created = append(f.created, a)
	return a, nil
}

type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

var date = time.Date(2025, 12, 23, 0, 0, 0, 0, time.UTC)

func mustRange(t *testing.T, s string) types.TimeRange {
	t.Helper()
	r, err := types.ParseTimeRange(s)
	require.NoError(t, err)
	return r
}

func availableResponse(t *testing.T) *get_availability.Response {
	return &get_availability.Response{
		Date:            date,
		AvailableRanges: []types.TimeRange{mustRange(t, "09:00 - 11:00"), mustRange(t, "11:00 - 13:00")},
		Services: []*domain.Service{
			{ID: 1, Name: "Maquillaje social", DurationMinutes: 90, Price: 150},
			{ID: 3, Name: "Peinado", DurationMinutes: 30, Price: 80},
		},
		DurationMinutes: 120,
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		ClientName:         "  Ana Torres ",
		ClientPhone:        "+51 999 888 777",
		Date:               date,
		ServiceIdentifiers: []string{"1", "Peinado (S/ 80)"},
		LocationType:       domain.LocationStudio,
		TimeRange:          mustRange(t, "11:00 - 13:00"),
	}
}

func newUseCase(resolver *fakeResolver, repo *fakeRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(repo, resolver, tx, logger.NewNop())
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	resolver := &fakeResolver{resp: availableResponse(t)}
	repo := &fakeRepo{}
	tx := &fakeTxManager{}

	resp, err := newUseCase(resolver, repo, tx).Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	a := resp.Appointment
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Ana Torres", a.ClientName)
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, "Maquillaje social, Peinado", a.ServiceNames)
	assert.Equal(t, 120, a.DurationMinutes)
	assert.InDelta(t, 230.0, a.TotalPrice, 0.001)
	assert.Equal(t, "11:00 - 13:00", a.TimeRange.String())
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, domain.LocationStudio, resolver.lastReq.LocationType)
}

func TestExecute_RangeNotAvailable(t *testing.T) {
	resolver := &fakeResolver{resp: availableResponse(t)}
	repo := &fakeRepo{}
	req := validRequest(t)
	req.TimeRange = mustRange(t, "10:00 - 12:00")

	resp, err := newUseCase(resolver, repo, &fakeTxManager{}).Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.created)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "empty name", modify: func(r *Request) { r.ClientName = " " }},
		{name: "empty phone", modify: func(r *Request) { r.ClientPhone = "" }},
		{name: "bad email", modify: func(r *Request) { r.ClientEmail = ptr.Ptr("ana.example.com") }},
		{name: "no date", modify: func(r *Request) { r.Date = time.Time{} }},
		{name: "no services", modify: func(r *Request) { r.ServiceIdentifiers = nil }},
		{name: "any location", modify: func(r *Request) { r.LocationType = domain.LocationAny }},
		{name: "home without address", modify: func(r *Request) { r.LocationType = domain.LocationHome }},
		{name: "empty range", modify: func(r *Request) { r.TimeRange = types.TimeRange{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{resp: availableResponse(t)}
			tx := &fakeTxManager{}
			req := validRequest(t)
			tt.modify(req)

			_, err := newUseCase(resolver, &fakeRepo{}, tx).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestExecute_HomeWithAddress(t *testing.T) {
	resolver := &fakeResolver{resp: availableResponse(t)}
	repo := &fakeRepo{}
	req := validRequest(t)
	req.LocationType = domain.LocationHome
	req.Address = ptr.Ptr("Av. Larco 123, Miraflores")

	resp, err := newUseCase(resolver, repo, &fakeTxManager{}).Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Appointment.Address)
	assert.Equal(t, domain.LocationHome, resp.Appointment.LocationType)
}

func TestExecute_AvailabilityErrors(t *testing.T) {
	unknown := &get_availability.UnknownServiceError{Searched: "x", Original: "x", Available: []string{"Peinado"}}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "past date", err: get_availability.ErrPastDate, wantErr: ErrPastDate},
		{name: "missing parameter", err: get_availability.ErrMissingParameter, wantErr: ErrInvalidInput},
		{name: "unknown service", err: unknown, wantErr: ErrUnknownService},
		{name: "internal", err: get_availability.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{err: tt.err}

			_, err := newUseCase(resolver, &fakeRepo{}, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown service keeps details", func(t *testing.T) {
		resolver := &fakeResolver{err: unknown}

		_, err := newUseCase(resolver, &fakeRepo{}, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

		var details *get_availability.UnknownServiceError
		require.True(t, errors.As(err, &details))
		assert.Equal(t, []string{"Peinado"}, details.Available)
	})
}

func TestExecute_RepositoryFailure(t *testing.T) {
	resolver := &fakeResolver{resp: availableResponse(t)}
	repo := &fakeRepo{err: errors.New("connection reset")}

	_, err := newUseCase(resolver, repo, &fakeTxManager{}).Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_SerializationFailureOnCommit(t *testing.T) {
	resolver := &fakeResolver{resp: availableResponse(t)}
	tx := &fakeTxManager{commitErr: &pq.Error{Code: "40001", Message: "could not serialize access"}}

	_, err := newUseCase(resolver, &fakeRepo{}, tx).Execute(context.Background(), validRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
