package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/internal/domains/bus/model/dto"
	"armada/internal/domains/bus/repository"
	"armada/internal/domains/bus/service"
	gDto "armada/shared/dto"
	"armada/shared/failure"
	"armada/shared/localstore"
)

func newBusService(t *testing.T) service.Bus {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Local.Dir = t.TempDir()

	provider, err := localstore.NewProvider(cfg)
	require.NoError(t, err)

	return service.New(repository.New(provider, otelMocks.NewOtel()), cfg, otelMocks.NewOtel())
}

func TestBusService_SeededFleet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Buses, 5)
}

func TestBusService_CreateAppendsToFleet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	created, err := svc.Create(ctx, dto.CreateBusRequest{
		TipeBus:        "Sleeper Class",
		RutePerjalanan: "Jakarta - Surabaya",
		OperatorBus:    "Armada Trans",
		HargaTiket:     100000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "IDR 100.000", created.FormattedHarga)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 6, res.TotalData)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sleeper Class", got.TipeBus)
}

func TestBusService_GetNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	_, err := svc.Get(ctx, "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBusService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	err := svc.Update(ctx, dto.UpdateBusRequest{}, "1")
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	err = svc.Update(ctx, dto.UpdateBusRequest{OperatorBus: "Baru Trans"}, "does-not-exist")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))

	require.NoError(t, svc.Update(ctx, dto.UpdateBusRequest{OperatorBus: "Baru Trans"}, "1"))

	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Baru Trans", got.OperatorBus)
}

func TestBusService_UpdateFacilityFlags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	wifi := true
	toilet := false

	require.NoError(t, svc.Update(ctx, dto.UpdateBusRequest{Wifi: &wifi, Toilet: &toilet}, "1"))

	got, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.Fasilitas.Wifi)
	assert.False(t, got.Fasilitas.Toilet)

	// Flags left unset stay as they were.
	ac := got.Fasilitas.AC

	wifi = false
	require.NoError(t, svc.Update(ctx, dto.UpdateBusRequest{Wifi: &wifi}, "1"))

	got, err = svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, got.Fasilitas.Wifi)
	assert.Equal(t, ac, got.Fasilitas.AC)
}

func TestBusService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newBusService(t)

	require.NoError(t, svc.Delete(ctx, "1"))

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalData)

	err = svc.Delete(ctx, "1")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
