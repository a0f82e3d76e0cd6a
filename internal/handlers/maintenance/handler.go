package maintenance

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/maintenance/model"
	"armada/internal/domains/maintenance/model/dto"
	"armada/internal/domains/maintenance/service"
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
	service    service.Maintenance
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Maintenance, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenances", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateMaintenance)
		routerGroup.Get("/", handler.GetMaintenances)
		routerGroup.Get("/{id}", handler.GetMaintenanceByID)
		routerGroup.Patch("/{id}", handler.UpdateMaintenance)
		routerGroup.Delete("/{id}", handler.DeleteMaintenance)
	})
}

// CreateMaintenance records a service visit for a bus.
// @Summary Create a maintenance record
// @Description Record a service visit with its date, type of work, cost, and vendor.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Create Maintenance Request"
// @Success 201 {object} dto.MaintenanceResponse "Maintenance record created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances [post]
// @Security BearerAuth
func (handler *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	req := dto.CreateMaintenanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMaintenances lists maintenance records with search and filters.
// @Summary Get all maintenance records
// @Description Retrieve maintenance records filtered by a search term, bus, and type of work.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param search query string false "Match against type of work, vendor, and notes"
// @Param id_bus query string false "Filter by bus (or All)"
// @Param jenis_perawatan query string false "Filter by type of work (or All)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetMaintenancesResponse "List of maintenance records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenances(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenances")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = model.FieldTanggalServis, gDto.SortDirDesc
	}

	state := listquery.FromRequest(r, model.FieldIDBus, model.FieldJenisPerawatan)

	filter := state.BuildFilter(listquery.Spec{
		Table:        model.TableName,
		SearchFields: []string{model.FieldJenisPerawatan, model.FieldVendor, model.FieldCatatan},
		Facets: map[string]string{
			model.FieldIDBus:          model.FieldIDBus,
			model.FieldJenisPerawatan: model.FieldJenisPerawatan,
		},
	})

	records, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}

// GetMaintenanceByID retrieves a maintenance record by ID.
// @Summary Get a maintenance record by ID
// @Description Retrieve a maintenance record by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Success 200 {object} dto.MaintenanceResponse "Maintenance record details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMaintenanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance record by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance record retrieved successfully")

	response.WithJSON(w, http.StatusOK, record)
}

// UpdateMaintenance updates an existing maintenance record by ID.
// @Summary Update a maintenance record by ID
// @Description Update the details of an existing maintenance record.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Param request body dto.UpdateMaintenanceRequest true "Update Maintenance Request"
// @Success 200 {object} response.Message "Maintenance record updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMaintenanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Maintenance record updated successfully")
}

// DeleteMaintenance deletes a maintenance record by ID.
// @Summary Delete a maintenance record by ID
// @Description Delete a maintenance record using its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Success 200 {object} response.Message "Maintenance record deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenances/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMaintenance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Maintenance record deleted successfully")
}
