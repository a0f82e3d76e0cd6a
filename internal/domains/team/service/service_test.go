package service_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/internal/domains/team/model"
	"armada/internal/domains/team/model/dto"
	"armada/internal/domains/team/repository"
	"armada/internal/domains/team/service"
	gDto "armada/shared/dto"
	"armada/shared/listquery"
	"armada/shared/localstore"
)

func newTeamService(t *testing.T) service.Team {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Local.Dir = t.TempDir()

	provider, err := localstore.NewProvider(cfg)
	require.NoError(t, err)

	return service.New(repository.New(provider, otelMocks.NewOtel()), cfg, otelMocks.NewOtel(), nil)
}

func seedMembers(t *testing.T, svc service.Team) {
	t.Helper()

	ctx := context.Background()

	for _, req := range []dto.CreateMemberRequest{
		{Nama: "Budi Santoso", Jabatan: "Driver"},
		{Nama: "Sari Indah", Jabatan: "Admin"},
		{Nama: "Agus Wijaya", Jabatan: "Mechanic"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
}

func TestTeamService_CreateGeneratesAvatar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTeamService(t)

	created, err := svc.Create(ctx, dto.CreateMemberRequest{Nama: "Budi Santoso", Jabatan: "Driver"})
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultFoto("Budi Santoso"), created.Foto)

	withPhoto, err := svc.Create(ctx, dto.CreateMemberRequest{
		Nama:    "Sari Indah",
		Jabatan: "Admin",
		Foto:    "https://example.com/sari.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/sari.png", withPhoto.Foto)
}

func TestTeamService_SearchFiltersMembers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTeamService(t)
	seedMembers(t, svc)

	r := httptest.NewRequest("GET", "/team?search=Budi", nil)
	state := listquery.FromRequest(r)

	filter := state.BuildFilter(listquery.Spec{
		SearchFields: []string{model.FieldNama, model.FieldJabatan},
	})

	res, err := svc.GetAll(ctx, state.QueryParams(10, model.FieldNama, gDto.SortDirAsc), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Members, 1)
	assert.Equal(t, "Budi Santoso", res.Members[0].Nama)

	// The search term also matches against the role.
	r = httptest.NewRequest("GET", "/team?search=driver", nil)
	state = listquery.FromRequest(r)

	filter = state.BuildFilter(listquery.Spec{
		SearchFields: []string{model.FieldNama, model.FieldJabatan},
	})

	res, err = svc.GetAll(ctx, state.QueryParams(10, model.FieldNama, gDto.SortDirAsc), filter)
	require.NoError(t, err)
	require.Len(t, res.Members, 1)
	assert.Equal(t, "Budi Santoso", res.Members[0].Nama)
}

func TestTeamService_GetAllSortsByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTeamService(t)
	seedMembers(t, svc)

	res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10, SortBy: model.FieldNama, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, res.Members, 3)
	assert.Equal(t, "Agus Wijaya", res.Members[0].Nama)
	assert.Equal(t, "Budi Santoso", res.Members[1].Nama)
	assert.Equal(t, "Sari Indah", res.Members[2].Nama)
}
