package job

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/job/model"
	"armada/internal/domains/job/model/dto"
	"armada/internal/domains/job/service"
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
	service    service.Job
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Job, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/jobs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetJobs)
		routerGroup.Get("/{id}", handler.GetJobByID)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(handler.middleware.APIKey, handler.middleware.Auth)
			guarded.Post("/", handler.CreateJob)
			guarded.Patch("/{id}", handler.UpdateJob)
			guarded.Delete("/{id}", handler.DeleteJob)
		})
	})
}

// CreateJob posts a new job vacancy.
// @Summary Create a new job vacancy
// @Description Post a job vacancy with its title, location, employment type, and description.
// @Tags Job
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Create Job Request"
// @Success 201 {object} dto.JobResponse "Job created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs [post]
// @Security BearerAuth
func (handler *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateJob")
	defer scope.End()

	req := dto.CreateJobRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create job")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Job created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetJobs lists job vacancies with search, type, and location filters.
// @Summary Get all job vacancies
// @Description Retrieve job vacancies filtered by a search term, employment type, and location.
// @Tags Job
// @Accept json
// @Produce json
// @Param search query string false "Match against title and description"
// @Param type query string false "Filter by employment type (or All)"
// @Param location query string false "Filter by location (or All)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetJobsResponse "List of jobs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs [get]
func (handler *Handler) GetJobs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJobs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = constant.DefaultValueSortBy, gDto.SortDirDesc
	}

	state := listquery.FromRequest(r, model.FieldType, model.FieldLocation)

	filter := state.BuildFilter(listquery.Spec{
		Table:        model.TableName,
		SearchFields: []string{model.FieldTitle, model.FieldDescription},
		Facets: map[string]string{
			model.FieldType:     model.FieldType,
			model.FieldLocation: model.FieldLocation,
		},
	})

	jobs, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get jobs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Jobs retrieved successfully")

	response.WithJSON(w, http.StatusOK, jobs)
}

// GetJobByID retrieves a job vacancy by ID.
// @Summary Get a job by ID
// @Description Retrieve a job vacancy by its unique identifier.
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse "Job details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs/{id} [get]
func (handler *Handler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJobByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	job, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get job by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Job retrieved successfully")

	response.WithJSON(w, http.StatusOK, job)
}

// UpdateJob updates an existing job vacancy by ID.
// @Summary Update a job by ID
// @Description Update the details of an existing job vacancy.
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body dto.UpdateJobRequest true "Update Job Request"
// @Success 200 {object} response.Message "Job updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateJob")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateJobRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update job")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Job updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Job updated successfully")
}

// DeleteJob deletes a job vacancy by ID.
// @Summary Delete a job by ID
// @Description Delete a job vacancy using its unique identifier.
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Message "Job deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/jobs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteJob")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete job")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Job deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Job deleted successfully")
}
