package bus

import (
	"net/http"
	"strconv"

	"armada/infras/otel"
	"armada/internal/domains/bus/model"
	"armada/internal/domains/bus/model/dto"
	"armada/internal/domains/bus/service"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/listquery"
	"armada/shared/validator"
	"armada/transport/http/middleware"
	"armada/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamMaxHarga = "max_harga"

type Handler struct {
	service    service.Bus
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Bus, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/buses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBuses)
		routerGroup.Get("/{id}", handler.GetBusByID)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.APIKey, handler.middleware.Auth)
			guarded.Post("/", handler.CreateBus)
			guarded.Patch("/{id}", handler.UpdateBus)
			guarded.Delete("/{id}", handler.DeleteBus)
		})
	})
}

// CreateBus registers a new bus in the fleet.
// @Summary Create a new bus
// @Description Register a bus with its route, schedule, facilities, and fare.
// @Tags Bus
// @Accept json
// @Produce json
// @Param request body dto.CreateBusRequest true "Create Bus Request"
// @Success 201 {object} dto.BusResponse "Bus created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/buses [post]
// @Security BearerAuth
func (handler *Handler) CreateBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBus")
	defer scope.End()

	req := dto.CreateBusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bus")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bus created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBuses lists the fleet with search, facility, and fare filters.
// @Summary Get all buses
// @Description Retrieve buses filtered by search term, type, facilities, departure time, and maximum fare.
// @Tags Bus
// @Accept json
// @Produce json
// @Param search query string false "Match against type, route, and operator"
// @Param tipe_bus query string false "Filter by bus type (or All)"
// @Param wifi query boolean false "Require wifi"
// @Param ac query boolean false "Require AC"
// @Param toilet query boolean false "Require toilet"
// @Param waktu_berangkat query string false "Filter by departure time"
// @Param max_harga query number false "Maximum ticket price"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetBusesResponse "List of buses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/buses [get]
func (handler *Handler) GetBuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = model.FieldID, gDto.SortDirAsc
	}

	state := listquery.FromRequest(r, model.FieldTipeBus, model.FieldWaktuBerangkat)

	filter := state.BuildFilter(listquery.Spec{
		SearchFields: []string{model.FieldTipeBus, model.FieldRutePerjalanan, model.FieldOperatorBus},
		Facets: map[string]string{
			model.FieldTipeBus:        model.FieldTipeBus,
			model.FieldWaktuBerangkat: model.FieldWaktuBerangkat,
		},
	})

	for _, facility := range []string{model.FieldWifi, model.FieldAC, model.FieldToilet} {
		if enabled := shared.ConvertStringToBool(r.URL.Query().Get(facility)); enabled != nil {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    facility,
				Operator: gDto.FilterOperatorEq,
				Value:    *enabled,
			})
		}
	}

	if maxHarga := r.URL.Query().Get(requestParamMaxHarga); maxHarga != "" {
		if price, err := strconv.ParseFloat(maxHarga, 64); err == nil {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    model.FieldHargaTiket,
				Operator: gDto.FilterOperatorLessEq,
				Value:    price,
			})
		}
	}

	buses, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get buses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Buses retrieved successfully")

	response.WithJSON(w, http.StatusOK, buses)
}

// GetBusByID retrieves a bus by its ID.
// @Summary Get a bus by ID
// @Description Retrieve a bus by its unique identifier.
// @Tags Bus
// @Accept json
// @Produce json
// @Param id path string true "Bus ID"
// @Success 200 {object} dto.BusResponse "Bus details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/buses/{id} [get]
func (handler *Handler) GetBusByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bus, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bus by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bus retrieved successfully")

	response.WithJSON(w, http.StatusOK, bus)
}

// UpdateBus updates an existing bus by its ID.
// @Summary Update a bus by ID
// @Description Update the details of an existing bus.
// @Tags Bus
// @Accept json
// @Produce json
// @Param id path string true "Bus ID"
// @Param request body dto.UpdateBusRequest true "Update Bus Request"
// @Success 200 {object} response.Message "Bus updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/buses/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bus")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bus updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bus updated successfully")
}

// DeleteBus deletes a bus by its ID.
// @Summary Delete a bus by ID
// @Description Delete a bus using its unique identifier.
// @Tags Bus
// @Accept json
// @Produce json
// @Param id path string true "Bus ID"
// @Success 200 {object} response.Message "Bus deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/buses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bus")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bus deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bus deleted successfully")
}
