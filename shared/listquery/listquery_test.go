package listquery_test

import (
	"net/http/httptest"
	"testing"

	"armada/shared/dto"
	"armada/shared/listquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	base := listquery.NewState()
	base = base.Apply(listquery.PageRequested{Page: 3})

	tests := []struct {
		name     string
		event    listquery.Event
		wantPage int
	}{
		{
			name:     "search change resets page",
			event:    listquery.SearchChanged{Value: "bandung"},
			wantPage: 1,
		},
		{
			name:     "same search keeps page",
			event:    listquery.SearchChanged{Value: ""},
			wantPage: 3,
		},
		{
			name:     "facet change resets page",
			event:    listquery.FacetChanged{Name: "status", Value: "Pending"},
			wantPage: 1,
		},
		{
			name:     "same facet value keeps page",
			event:    listquery.FacetChanged{Name: "status", Value: ""},
			wantPage: 3,
		},
		{
			name:     "page request is taken verbatim",
			event:    listquery.PageRequested{Page: 42},
			wantPage: 42,
		},
		{
			name:     "collection mutation keeps page",
			event:    listquery.CollectionMutated{},
			wantPage: 3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := base.Apply(test.event)

			assert.Equal(t, test.wantPage, got.Page)
		})
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	state := listquery.NewState()
	state = state.Apply(listquery.FacetChanged{Name: "status", Value: "Confirmed"})

	next := state.Apply(listquery.FacetChanged{Name: "status", Value: "Cancelled"})

	assert.Equal(t, "Confirmed", state.Facets["status"])
	assert.Equal(t, "Cancelled", next.Facets["status"])
	assert.Equal(t, 1, state.Page)
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantPage   int
		wantSearch string
		wantStatus string
	}{
		{
			name:     "defaults",
			target:   "/v1/bookings",
			wantPage: 1,
		},
		{
			name:       "filter without page lands on page one",
			target:     "/v1/bookings?status=Pending",
			wantPage:   1,
			wantStatus: "Pending",
		},
		{
			name:       "explicit page is kept even with filters",
			target:     "/v1/bookings?search=budi&page=7",
			wantPage:   7,
			wantSearch: "budi",
		},
		{
			name:     "invalid page is ignored",
			target:   "/v1/bookings?page=zero",
			wantPage: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", test.target, nil)

			state := listquery.FromRequest(r, "status")

			assert.Equal(t, test.wantPage, state.Page)
			assert.Equal(t, test.wantSearch, state.Search)
			assert.Equal(t, test.wantStatus, state.Facets["status"])
		})
	}
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	spec := listquery.Spec{
		Table:        "bookings",
		SearchFields: []string{"customer_name", "destination"},
		Facets:       map[string]string{"status": "status"},
	}

	t.Run("all sentinel adds no constraint", func(t *testing.T) {
		t.Parallel()

		state := listquery.NewState()
		state = state.Apply(listquery.FacetChanged{Name: "status", Value: listquery.FacetAll})

		filter := state.BuildFilter(spec)

		assert.Empty(t, filter.Filters)
	})

	t.Run("search expands to an OR group", func(t *testing.T) {
		t.Parallel()

		state := listquery.NewState()
		state = state.Apply(listquery.SearchChanged{Value: "budi"})

		filter := state.BuildFilter(spec)

		require.Len(t, filter.Filters, 1)

		search, ok := filter.Filters[0].(dto.FilterGroup)
		require.True(t, ok)
		assert.Equal(t, dto.FilterGroupOperatorOr, search.Operator)
		assert.Len(t, search.Filters, 2)
	})

	t.Run("selected facet becomes an exact match", func(t *testing.T) {
		t.Parallel()

		state := listquery.NewState()
		state = state.Apply(listquery.FacetChanged{Name: "status", Value: "Pending"})

		filter := state.BuildFilter(spec)

		require.Len(t, filter.Filters, 1)

		facet, ok := filter.Filters[0].(dto.Filter)
		require.True(t, ok)
		assert.Equal(t, dto.FilterOperatorEq, facet.Operator)
		assert.Equal(t, "Pending", facet.Value)
	})
}
