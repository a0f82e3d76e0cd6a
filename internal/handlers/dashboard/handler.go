package dashboard

import (
	"net/http"
	"strconv"

	"armada/infras/otel"
	"armada/internal/domains/dashboard/service"
	"armada/shared/constant"
	"armada/transport/http/middleware"
	"armada/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamYear  = "year"
	requestParamLimit = "limit"
)

type Handler struct {
	service    service.Dashboard
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Dashboard, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/monthly-trips", handler.GetMonthlyTrips)
		routerGroup.Get("/top-destinations", handler.GetTopDestinations)
		routerGroup.Get("/upcoming-trips", handler.GetUpcomingTrips)
	})
}

// GetSummary returns the headline dashboard numbers.
// @Summary Get the dashboard summary
// @Description Retrieve trip counts by status and the maintenance spend total.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}

// GetMonthlyTrips returns trip counts per month for a year.
// @Summary Get monthly trip counts
// @Description Retrieve trip counts grouped by month for the given year (default: current year).
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param year query string false "Year (YYYY)"
// @Success 200 {object} dto.MonthlyTripsReport "Monthly trip counts"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/monthly-trips [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyTrips")
	defer scope.End()

	report, err := handler.service.MonthlyTrips(ctx, r.URL.Query().Get(requestParamYear))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly trips")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monthly trips retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetTopDestinations returns the most booked destinations.
// @Summary Get top destinations
// @Description Retrieve destinations ranked by trip volume.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of destinations (default 5)"
// @Success 200 {object} dto.TopDestinationsResponse "Top destinations"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/top-destinations [get]
// @Security BearerAuth
func (handler *Handler) GetTopDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTopDestinations")
	defer scope.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get(requestParamLimit))

	destinations, err := handler.service.TopDestinations(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top destinations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Top destinations retrieved successfully")

	response.WithJSON(w, http.StatusOK, destinations)
}

// GetUpcomingTrips returns the next scheduled trips.
// @Summary Get upcoming trips
// @Description Retrieve the next scheduled trips from today onward, excluding cancelled ones.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of trips (default 5)"
// @Success 200 {object} dto.UpcomingTripsResponse "Upcoming trips"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/upcoming-trips [get]
// @Security BearerAuth
func (handler *Handler) GetUpcomingTrips(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingTrips")
	defer scope.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get(requestParamLimit))

	trips, err := handler.service.UpcomingTrips(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming trips")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming trips retrieved successfully")

	response.WithJSON(w, http.StatusOK, trips)
}
