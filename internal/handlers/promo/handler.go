package promo

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/promo/model"
	"armada/internal/domains/promo/model/dto"
	"armada/internal/domains/promo/service"
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

type Handler struct {
	service    service.Promo
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Promo, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/promos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPromos)
		routerGroup.Get("/{id}", handler.GetPromoByID)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.APIKey, handler.middleware.Auth)
			guarded.Post("/", handler.CreatePromo)
			guarded.Patch("/{id}", handler.UpdatePromo)
			guarded.Delete("/{id}", handler.DeletePromo)
		})
	})
}

// CreatePromo registers a new promo code.
// @Summary Create a new promo
// @Description Register a promo code with its discount type and value. Codes are stored uppercase without spaces.
// @Tags Promo
// @Accept json
// @Produce json
// @Param request body dto.CreatePromoRequest true "Create Promo Request"
// @Success 201 {object} dto.PromoResponse "Promo created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promos [post]
// @Security BearerAuth
func (handler *Handler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePromo")
	defer scope.End()

	req := dto.CreatePromoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create promo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPromos lists promos with search, discount-type, and active filters.
// @Summary Get all promos
// @Description Retrieve promos filtered by a search term, discount type, and active flag.
// @Tags Promo
// @Accept json
// @Produce json
// @Param search query string false "Match against code and description"
// @Param jenis_diskon query string false "Filter by discount type (or All)"
// @Param is_active query boolean false "Filter by active flag"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetPromosResponse "List of promos"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promos [get]
func (handler *Handler) GetPromos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = constant.DefaultValueSortBy, gDto.SortDirDesc
	}

	state := listquery.FromRequest(r, model.FieldJenisDiskon)

	filter := state.BuildFilter(listquery.Spec{
		Table:        model.TableName,
		SearchFields: []string{model.FieldKodePromo, model.FieldDeskripsi},
		Facets: map[string]string{
			model.FieldJenisDiskon: model.FieldJenisDiskon,
		},
	})

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
		})
	}

	promos, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Promos retrieved successfully")

	response.WithJSON(w, http.StatusOK, promos)
}

// GetPromoByID retrieves a promo by ID.
// @Summary Get a promo by ID
// @Description Retrieve a promo by its unique identifier.
// @Tags Promo
// @Accept json
// @Produce json
// @Param id path string true "Promo ID"
// @Success 200 {object} dto.PromoResponse "Promo details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promos/{id} [get]
func (handler *Handler) GetPromoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	promo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Promo retrieved successfully")

	response.WithJSON(w, http.StatusOK, promo)
}

// UpdatePromo updates an existing promo by ID.
// @Summary Update a promo by ID
// @Description Update the details of an existing promo. A new code is normalized before saving.
// @Tags Promo
// @Accept json
// @Produce json
// @Param id path string true "Promo ID"
// @Param request body dto.UpdatePromoRequest true "Update Promo Request"
// @Success 200 {object} response.Message "Promo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promos/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePromo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePromo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePromoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update promo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Promo updated successfully")
}

// DeletePromo deletes a promo by ID.
// @Summary Delete a promo by ID
// @Description Delete a promo using its unique identifier.
// @Tags Promo
// @Accept json
// @Produce json
// @Param id path string true "Promo ID"
// @Success 200 {object} response.Message "Promo deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePromo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePromo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete promo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Promo deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Promo deleted successfully")
}
