package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/infras/s3"
	"armada/internal/domains/team/model"
	"armada/internal/domains/team/model/dto"
	"armada/internal/domains/team/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type Team interface {
	Create(ctx context.Context, req dto.CreateMemberRequest) (dto.MemberResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMembersResponse, error)
	Get(ctx context.Context, id string) (dto.MemberResponse, error)
	Update(ctx context.Context, req dto.UpdateMemberRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo repository.Team
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Team, cfg *config.Config, otl otel.Otel, s3Client s3.S3) Team {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
		s3:   s3Client,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMemberRequest) (res dto.MemberResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	member := req.ToModel(user)

	if err = s.repo.Insert(ctx, member); err != nil {
		log.Error().Err(err).Msg("failed to create team member")

		return res, fmt.Errorf("failed to create team member: %w", err)
	}

	res.FromModel(member)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMembersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count team members")

		return res, fmt.Errorf("failed to count team members: %w", err)
	}

	members, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get team members")

		return res, fmt.Errorf("failed to get team members: %w", err)
	}

	res.FromModels(members, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MemberResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	member, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team member")

		return res, fmt.Errorf("failed to get team member: %w", err)
	}

	if member.ID == constant.Empty {
		return res, failure.NotFound("team member not found") // nolint:wrapcheck
	}

	res.FromModel(member)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMemberRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMemberRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, constant.Empty)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if team member exists")

		return fmt.Errorf("failed to check if team member exists: %w", err)
	}

	if !exist {
		log.Error().Msg("team member not found")

		return failure.NotFound("team member not found") // nolint:wrapcheck
	}

	// A blank foto keeps the stored photo; TransformFields drops zero values.
	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update team member")

		return fmt.Errorf("failed to update team member: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, constant.Empty)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if team member exists")

		return fmt.Errorf("failed to check if team member exists: %w", err)
	}

	if !exist {
		log.Error().Msg("team member not found")

		return failure.NotFound("team member not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete team member")

		return fmt.Errorf("failed to delete team member: %w", err)
	}

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, req dto.UploadPhotoRequest) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	res.FromModel(url, req.Photo.Filename)

	return res, nil
}
