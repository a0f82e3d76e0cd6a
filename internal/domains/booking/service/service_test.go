package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/internal/domains/booking/model"
	"armada/internal/domains/booking/model/dto"
	"armada/internal/domains/booking/repository"
	"armada/internal/domains/booking/service"
	"armada/internal/gateway/events"
	gDto "armada/shared/dto"
	"armada/shared/failure"
	"armada/shared/localstore"
)

// recordingPublisher stands in for the Kafka gateway and remembers every
// event it was asked to send.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, event events.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func newBookingService(t *testing.T) service.Booking {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Local.Dir = t.TempDir()

	provider, err := localstore.NewProvider(cfg)
	require.NoError(t, err)

	repo := repository.New(provider, otelMocks.NewOtel())

	return service.New(repo, &recordingPublisher{}, cfg, otelMocks.NewOtel())
}

func TestBookingService_CreateDefaultsToPending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBookingService(t)

	created, err := svc.Create(ctx, dto.CreateBookingRequest{
		CustomerName: "Budi Santoso",
		Date:         "2025-07-01",
		Destination:  "Bandung",
		Passengers:   30,
		TotalPrice:   1500000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Equal(t, "Rp 1.500.000", created.FormattedPrice)
}

func TestBookingService_UpdateEmptyRequestLeavesRecordUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBookingService(t)

	created, err := svc.Create(ctx, dto.CreateBookingRequest{
		CustomerName: "Sari Indah",
		Date:         "2025-08-10",
		Destination:  "Yogyakarta",
		Passengers:   12,
		Status:       model.StatusConfirmed,
	})
	require.NoError(t, err)

	err = svc.Update(ctx, dto.UpdateBookingRequest{}, created.ID)
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sari Indah", got.CustomerName)
	assert.Equal(t, model.StatusConfirmed, got.Status)
}

func TestBookingService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBookingService(t)

	created, err := svc.Create(ctx, dto.CreateBookingRequest{
		CustomerName: "Budi Santoso",
		Date:         "2025-07-01",
		Destination:  "Bandung",
		Passengers:   30,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, dto.UpdateBookingRequest{Status: model.StatusCancelled}, created.ID))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, got.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_GetAllPaginates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBookingService(t)

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, dto.CreateBookingRequest{
			CustomerName: name,
			Date:         "2025-07-01",
			Destination:  "Bandung",
			Passengers:   1,
		})
		require.NoError(t, err)
	}

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Bookings, 2)

	// A page past the end yields an empty slice, not the last page.
	res, err = svc.GetAll(ctx, gDto.QueryParams{Page: 5, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, res.Bookings)
	assert.Equal(t, 3, res.TotalData)
}
