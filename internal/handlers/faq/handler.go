package faq

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/faq/model"
	"armada/internal/domains/faq/model/dto"
	"armada/internal/domains/faq/service"
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
	service    service.FAQ
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.FAQ, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/faqs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFAQs)
		routerGroup.Get("/{id}", handler.GetFAQByID)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.APIKey, handler.middleware.Auth)
			guarded.Post("/", handler.CreateFAQ)
			guarded.Patch("/{id}", handler.UpdateFAQ)
			guarded.Delete("/{id}", handler.DeleteFAQ)
		})
	})
}

// CreateFAQ adds a new question-answer entry.
// @Summary Create a new FAQ
// @Description Add a question and its answer to the FAQ list.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param request body dto.CreateFAQRequest true "Create FAQ Request"
// @Success 201 {object} dto.FAQResponse "FAQ created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs [post]
// @Security BearerAuth
func (handler *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFAQ")
	defer scope.End()

	req := dto.CreateFAQRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create faq")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetFAQs lists FAQ entries with search and pagination.
// @Summary Get all FAQs
// @Description Retrieve FAQ entries filtered by a search term over question and answer.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param search query string false "Match against question and answer"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetFAQsResponse "List of FAQs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs [get]
func (handler *Handler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = constant.DefaultValueSortBy, gDto.SortDirDesc
	}

	state := listquery.FromRequest(r)

	filter := state.BuildFilter(listquery.Spec{
		Table:        model.TableName,
		SearchFields: []string{model.FieldQuestion, model.FieldAnswer},
	})

	faqs, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get faqs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("FAQs retrieved successfully")

	response.WithJSON(w, http.StatusOK, faqs)
}

// GetFAQByID retrieves a FAQ entry by ID.
// @Summary Get a FAQ by ID
// @Description Retrieve a FAQ entry by its unique identifier.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} dto.FAQResponse "FAQ details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [get]
func (handler *Handler) GetFAQByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFAQByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	faq, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get faq by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("FAQ retrieved successfully")

	response.WithJSON(w, http.StatusOK, faq)
}

// UpdateFAQ updates an existing FAQ entry by ID.
// @Summary Update a FAQ by ID
// @Description Update the question or answer of an existing FAQ entry.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Param request body dto.UpdateFAQRequest true "Update FAQ Request"
// @Success 200 {object} response.Message "FAQ updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFAQ")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFAQRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update faq")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ updated successfully")
}

// DeleteFAQ deletes a FAQ entry by ID.
// @Summary Delete a FAQ by ID
// @Description Delete a FAQ entry using its unique identifier.
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path string true "FAQ ID"
// @Success 200 {object} response.Message "FAQ deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFAQ")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete faq")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("FAQ deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "FAQ deleted successfully")
}
