package team

import (
	"net/http"

	"armada/infras/otel"
	"armada/internal/domains/team/model"
	"armada/internal/domains/team/model/dto"
	"armada/internal/domains/team/service"
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
	service    service.Team
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Team, mw middleware.Auth, otl otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: mw,
		otel:       otl,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/team", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.APIKey, handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateMember)
		routerGroup.Get("/", handler.GetMembers)
		routerGroup.Get("/{id}", handler.GetMemberByID)
		routerGroup.Patch("/{id}", handler.UpdateMember)
		routerGroup.Delete("/{id}", handler.DeleteMember)
		routerGroup.Post("/upload", handler.UploadPhoto)
	})
}

// CreateMember registers a new team member.
// @Summary Create a new team member
// @Description Register a team member; a generated avatar is used when no photo URL is given.
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Create Member Request"
// @Success 201 {object} dto.MemberResponse "Member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team [post]
// @Security BearerAuth
func (handler *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMember")
	defer scope.End()

	req := dto.CreateMemberRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create team member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Team member created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMembers lists team members with search and pagination.
// @Summary Get all team members
// @Description Retrieve team members filtered by a search term over name and role.
// @Tags Team
// @Accept json
// @Produce json
// @Param search query string false "Match against name and role"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetMembersResponse "List of team members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	sortBy, sortDir := queryParams.SortBy, queryParams.SortDir
	if sortBy == "" {
		sortBy, sortDir = model.FieldNama, gDto.SortDirAsc
	}

	state := listquery.FromRequest(r)

	filter := state.BuildFilter(listquery.Spec{
		SearchFields: []string{model.FieldNama, model.FieldJabatan},
	})

	members, err := handler.service.GetAll(ctx, state.QueryParams(queryParams.Limit, sortBy, sortDir), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get team members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team members retrieved successfully")

	response.WithJSON(w, http.StatusOK, members)
}

// GetMemberByID retrieves a team member by ID.
// @Summary Get a team member by ID
// @Description Retrieve a team member by their unique identifier.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse "Member details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMemberByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemberByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	member, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get team member by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team member retrieved successfully")

	response.WithJSON(w, http.StatusOK, member)
}

// UpdateMember updates an existing team member by ID.
// @Summary Update a team member by ID
// @Description Update the details of an existing team member. A blank photo keeps the stored one.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Update Member Request"
// @Success 200 {object} response.Message "Member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMemberRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update team member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Team member updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Team member updated successfully")
}

// DeleteMember deletes a team member by ID.
// @Summary Delete a team member by ID
// @Description Delete a team member using their unique identifier.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Message "Member deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMember")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete team member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Team member deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Team member deleted successfully")
}

// UploadPhoto handles member photo upload to S3.
// @Summary Upload a member photo to S3
// @Description Upload a photo file to S3 and return the URL.
// @Tags Team
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo file to upload"
// @Success 200 {object} dto.UploadPhotoResponse "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/team/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadPhotoRequest{
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadPhoto(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
