package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/layanan/model"
	"armada/internal/domains/layanan/model/dto"
	"armada/internal/domains/layanan/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type Layanan interface {
	Create(ctx context.Context, req dto.CreateLayananRequest) (dto.LayananResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLayananResponse, error)
	Get(ctx context.Context, id string) (dto.LayananResponse, error)
	Update(ctx context.Context, req dto.UpdateLayananRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Layanan
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Layanan, cfg *config.Config, otl otel.Otel) Layanan {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLayananRequest) (res dto.LayananResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	layanan := req.ToModel(user)

	if err = s.repo.Insert(ctx, layanan); err != nil {
		log.Error().Err(err).Msg("failed to create layanan")

		return res, fmt.Errorf("failed to create layanan: %w", err)
	}

	res.FromModel(layanan)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLayananResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count layanan")

		return res, fmt.Errorf("failed to count layanan: %w", err)
	}

	layanan, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get layanan")

		return res, fmt.Errorf("failed to get layanan: %w", err)
	}

	res.FromModels(layanan, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.LayananResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	layanan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get layanan")

		return res, fmt.Errorf("failed to get layanan: %w", err)
	}

	if layanan.ID == "" {
		return res, failure.NotFound("layanan not found") // nolint:wrapcheck
	}

	res.FromModel(layanan)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateLayananRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateLayananRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if layanan exists")

		return fmt.Errorf("failed to check if layanan exists: %w", err)
	}

	if !exist {
		log.Error().Msg("layanan not found")

		return failure.NotFound("layanan not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update layanan")

		return fmt.Errorf("failed to update layanan: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if layanan exists")

		return fmt.Errorf("failed to check if layanan exists: %w", err)
	}

	if !exist {
		log.Error().Msg("layanan not found")

		return failure.NotFound("layanan not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete layanan")

		return fmt.Errorf("failed to delete layanan: %w", err)
	}

	return nil
}
