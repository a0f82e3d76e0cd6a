package localstore_test

import (
	"context"
	"testing"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/shared"
	"armada/shared/dto"
	"armada/shared/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type member struct {
	ID      string `db:"id"      json:"id"`
	Nama    string `db:"nama"    json:"nama"`
	Jabatan string `db:"jabatan" json:"jabatan"`
	Umur    int    `db:"umur"    json:"umur"`
}

func newTestRepository(t *testing.T, seed []byte) localstore.Repository[member] {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Local.Dir = t.TempDir()

	provider, err := localstore.NewProvider(cfg)
	require.NoError(t, err)

	return localstore.NewRepository[member]("member", "tim_data", "id", provider, otelMocks.NewOtel(), seed)
}

func TestInsertAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, nil)

	require.NoError(t, repo.Insert(ctx, member{ID: "1", Nama: "Budi Santoso", Jabatan: "Driver", Umur: 31}))
	require.NoError(t, repo.Insert(ctx, member{ID: "2", Nama: "Sari Indah", Jabatan: "Admin", Umur: 27}))

	got, err := repo.Get(ctx, shared.FilterByID("2", "id", ""))
	require.NoError(t, err)
	assert.Equal(t, "Sari Indah", got.Nama)

	missing, err := repo.Get(ctx, shared.FilterByID("404", "id", ""))
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestSeedIsUsedUntilFirstWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := []byte(`[{"id":"1","nama":"Budi Santoso","jabatan":"Driver","umur":31}]`)
	repo := newTestRepository(t, seed)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Insert(ctx, member{ID: "2", Nama: "Sari Indah", Jabatan: "Admin", Umur: 27}))

	count, err = repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGetAllFiltersSortsAndPages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, nil)

	members := []member{
		{ID: "1", Nama: "Budi Santoso", Jabatan: "Driver", Umur: 31},
		{ID: "2", Nama: "Sari Indah", Jabatan: "Admin", Umur: 27},
		{ID: "3", Nama: "Budi Hartono", Jabatan: "Driver", Umur: 44},
		{ID: "4", Nama: "Agus Salim", Jabatan: "Mekanik", Umur: 38},
	}
	require.NoError(t, repo.InsertBulk(ctx, members))

	t.Run("like filter matches case-insensitively", func(t *testing.T) {
		filter := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "nama", Value: "budi", Operator: dto.FilterOperatorLike},
			},
		}

		got, err := repo.GetAll(ctx, dto.QueryParams{}, filter)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("sorting by numeric field", func(t *testing.T) {
		params := dto.QueryParams{SortBy: "umur", SortDir: dto.SortDirDesc}

		got, err := repo.GetAll(ctx, params, dto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "Budi Hartono", got[0].Nama)
		assert.Equal(t, "Sari Indah", got[3].Nama)
	})

	t.Run("page past the end is empty, not clamped", func(t *testing.T) {
		params := dto.QueryParams{Page: 9, Limit: 2}

		got, err := repo.GetAll(ctx, params, dto.FilterGroup{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("page window", func(t *testing.T) {
		params := dto.QueryParams{Page: 2, Limit: 3, SortBy: "id", SortDir: dto.SortDirAsc}

		got, err := repo.GetAll(ctx, params, dto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "4", got[0].ID)
	})
}

func TestUpdateTouchesOnlyMatchingRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, nil)

	require.NoError(t, repo.Insert(ctx, member{ID: "1", Nama: "Budi Santoso", Jabatan: "Driver", Umur: 31}))
	require.NoError(t, repo.Insert(ctx, member{ID: "2", Nama: "Sari Indah", Jabatan: "Admin", Umur: 27}))

	err := repo.Update(ctx, map[string]any{"jabatan": "Supervisor"}, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)

	updated, err := repo.Get(ctx, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", updated.Jabatan)
	assert.Equal(t, "Budi Santoso", updated.Nama)

	untouched, err := repo.Get(ctx, shared.FilterByID("2", "id", ""))
	require.NoError(t, err)
	assert.Equal(t, member{ID: "2", Nama: "Sari Indah", Jabatan: "Admin", Umur: 27}, untouched)
}

func TestUpdateUnwrapsPointerValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, nil)

	require.NoError(t, repo.Insert(ctx, member{ID: "1", Nama: "Budi Santoso", Jabatan: "Driver", Umur: 31}))

	// Optional update fields reach the repository as pointers.
	umur := 32
	err := repo.Update(ctx, map[string]any{"umur": &umur}, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)

	updated, err := repo.Get(ctx, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)
	assert.Equal(t, 32, updated.Umur)

	err = repo.Update(ctx, map[string]any{"umur": (*int)(nil)}, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)

	updated, err = repo.Get(ctx, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)
	assert.Equal(t, 32, updated.Umur)
}

func TestUpdateWithoutFilterIsRejected(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, nil)

	err := repo.Update(context.Background(), map[string]any{"jabatan": "Supervisor"}, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, nil)

	require.NoError(t, repo.Insert(ctx, member{ID: "1", Nama: "Budi Santoso"}))
	require.NoError(t, repo.Insert(ctx, member{ID: "2", Nama: "Sari Indah"}))

	require.NoError(t, repo.Delete(ctx, shared.FilterByID("1", "id", "")))

	exist, err := repo.Exist(ctx, shared.FilterByID("1", "id", ""))
	require.NoError(t, err)
	assert.False(t, exist)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewIDIsUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for range 100 {
		id := localstore.NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
