// Package listquery models the state of a filtered, paginated listing as an
// explicit reducer: every change to the search term, a facet, or the page
// number is an event, and page resets happen only through transitions instead
// of ad-hoc assignments scattered across handlers.
package listquery

import (
	"net/http"
	"strconv"

	"armada/shared/constant"
	"armada/shared/dto"
)

// FacetAll is the sentinel facet value meaning "no constraint". An empty
// string is treated the same way.
const FacetAll = "All"

const RequestParamSearch = "search"

// State is the full listing state. Facets maps facet name to its selected
// value.
type State struct {
	Search string
	Facets map[string]string
	Page   int
}

// NewState returns the initial listing state: no search, no facets, page 1.
func NewState() State {
	return State{
		Facets: map[string]string{},
		Page:   constant.DefaultValuePage,
	}
}

type Event interface {
	isEvent()
}

// SearchChanged carries a new search term. Applying it with the current term
// is a no-op; a different term resets the page to 1.
type SearchChanged struct {
	Value string
}

// FacetChanged carries a new value for one facet. Same-value applications are
// no-ops; a different value resets the page to 1.
type FacetChanged struct {
	Name  string
	Value string
}

// PageRequested navigates to a page verbatim. The reducer never clamps: a
// page past the end of the collection simply yields an empty slice downstream.
type PageRequested struct {
	Page int
}

// CollectionMutated records that a row was created, updated, or deleted. It
// never moves the page, even when the mutation shrinks the collection below
// the current page.
type CollectionMutated struct{}

func (SearchChanged) isEvent()     {}
func (FacetChanged) isEvent()      {}
func (PageRequested) isEvent()     {}
func (CollectionMutated) isEvent() {}

// Apply returns the state after the event. The receiver is not mutated.
func (s State) Apply(event Event) State {
	next := s
	next.Facets = make(map[string]string, len(s.Facets))

	for name, value := range s.Facets {
		next.Facets[name] = value
	}

	switch ev := event.(type) {
	case SearchChanged:
		if ev.Value == s.Search {
			return next
		}

		next.Search = ev.Value
		next.Page = constant.DefaultValuePage
	case FacetChanged:
		if s.Facets[ev.Name] == ev.Value {
			return next
		}

		next.Facets[ev.Name] = ev.Value
		next.Page = constant.DefaultValuePage
	case PageRequested:
		next.Page = ev.Page
	case CollectionMutated:
	}

	return next
}

// FromRequest rebuilds the listing state from URL query parameters by
// replaying them through the reducer, so a request carrying a filter without
// a page lands on page 1 as a transition rather than a default.
func FromRequest(r *http.Request, facetNames ...string) State {
	query := r.URL.Query()
	state := NewState()

	if search := query.Get(RequestParamSearch); search != "" {
		state = state.Apply(SearchChanged{Value: search})
	}

	for _, name := range facetNames {
		if value := query.Get(name); value != "" {
			state = state.Apply(FacetChanged{Name: name, Value: value})
		}
	}

	if page := query.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			state = state.Apply(PageRequested{Page: pageInt})
		}
	}

	return state
}

// Spec maps listing state onto repository filters: which columns the search
// term matches against and which column each facet constrains.
type Spec struct {
	Table        string
	SearchFields []string
	Facets       map[string]string
}

// BuildFilter compiles the state into a FilterGroup: the search term becomes
// an OR of case-insensitive matches over SearchFields, each selected facet an
// exact match. Facets set to FacetAll (or empty) add no constraint.
func (s State) BuildFilter(spec Spec) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	if s.Search != "" && len(spec.SearchFields) > 0 {
		search := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

		for _, field := range spec.SearchFields {
			search.Filters = append(search.Filters, dto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Value:    s.Search,
				Operator: dto.FilterOperatorLike,
				Table:    spec.Table,
			})
		}

		group.Filters = append(group.Filters, search)
	}

	for name, column := range spec.Facets {
		value := s.Facets[name]
		if value == "" || value == FacetAll {
			continue
		}

		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  "facet_" + name,
			Field:    column,
			Value:    value,
			Operator: dto.FilterOperatorEq,
			Table:    spec.Table,
		})
	}

	return group
}

// QueryParams combines the state's page with listing defaults.
func (s State) QueryParams(limit int, sortBy, sortDir string) dto.QueryParams {
	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	page := s.Page
	if page <= 0 {
		page = constant.DefaultValuePage
	}

	return dto.QueryParams{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
}
