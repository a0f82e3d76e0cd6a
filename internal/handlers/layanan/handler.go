package layanan

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/layanan/model"
	"armada/internal/domains/layanan/model/dto"
	"armada/internal/domains/layanan/service"
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
	service    service.Layanan
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Layanan, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/layanan", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLayanan)
		routerGroup.Get("/{id}", handler.GetLayananByID)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.APIKey, handler.middleware.Auth)
			guarded.Post("/", handler.CreateLayanan)
			guarded.Patch("/{id}", handler.UpdateLayanan)
			guarded.Delete("/{id}", handler.DeleteLayanan)
		})
	})
}

// CreateLayanan registers a new service offering.
// @Summary Create a new service offering
// @Description Register a service offering with its category, fee, and description.
// @Tags Layanan
// @Accept json
// @Produce json
// @Param request body dto.CreateLayananRequest true "Create Layanan Request"
// @Success 201 {object} dto.LayananResponse "Layanan created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layanan [post]
// @Security BearerAuth
func (handler *Handler) CreateLayanan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLayanan")
	defer scope.End()

	req := dto.CreateLayananRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create layanan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Layanan created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetLayanan lists service offerings with search and category filters.
// @Summary Get all service offerings
// @Description Retrieve service offerings filtered by a search term and category, sorted by name.
// @Tags Layanan
// @Accept json
// @Produce json
// @Param search query string false "Match against name and description"
// @Param kategori query string false "Filter by category (or All)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetLayananResponse "List of service offerings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layanan [get]
func (handler *Handler) GetLayanan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLayanan")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = model.FieldNamaLayanan, gDto.SortDirAsc
	}

	state := listquery.FromRequest(r, model.FieldKategori)

	filter := state.BuildFilter(listquery.Spec{
		Table:        model.TableName,
		SearchFields: []string{model.FieldNamaLayanan, model.FieldDeskripsi},
		Facets: map[string]string{
			model.FieldKategori: model.FieldKategori,
		},
	})

	layanan, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get layanan")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Layanan retrieved successfully")

	response.WithJSON(w, http.StatusOK, layanan)
}

// GetLayananByID retrieves a service offering by ID.
// @Summary Get a service offering by ID
// @Description Retrieve a service offering by its unique identifier.
// @Tags Layanan
// @Accept json
// @Produce json
// @Param id path string true "Layanan ID"
// @Success 200 {object} dto.LayananResponse "Layanan details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layanan/{id} [get]
func (handler *Handler) GetLayananByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLayananByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	layanan, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get layanan by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Layanan retrieved successfully")

	response.WithJSON(w, http.StatusOK, layanan)
}

// UpdateLayanan updates an existing service offering by ID.
// @Summary Update a service offering by ID
// @Description Update the details of an existing service offering.
// @Tags Layanan
// @Accept json
// @Produce json
// @Param id path string true "Layanan ID"
// @Param request body dto.UpdateLayananRequest true "Update Layanan Request"
// @Success 200 {object} response.Message "Layanan updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layanan/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateLayanan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLayanan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateLayananRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update layanan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Layanan updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Layanan updated successfully")
}

// DeleteLayanan deletes a service offering by ID.
// @Summary Delete a service offering by ID
// @Description Delete a service offering using its unique identifier.
// @Tags Layanan
// @Accept json
// @Produce json
// @Param id path string true "Layanan ID"
// @Success 200 {object} response.Message "Layanan deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/layanan/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteLayanan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLayanan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete layanan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Layanan deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Layanan deleted successfully")
}
