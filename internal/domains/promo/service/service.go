package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/promo/model"
	"armada/internal/domains/promo/model/dto"
	"armada/internal/domains/promo/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type Promo interface {
	Create(ctx context.Context, req dto.CreatePromoRequest) (dto.PromoResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPromosResponse, error)
	Get(ctx context.Context, id string) (dto.PromoResponse, error)
	Update(ctx context.Context, req dto.UpdatePromoRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Promo
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Promo, cfg *config.Config, otl otel.Otel) Promo {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePromoRequest) (res dto.PromoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	promo := req.ToModel(user)

	duplicate, err := s.repo.Exist(ctx, shared.FilterByID(promo.KodePromo, model.FieldKodePromo, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check promo code uniqueness")

		return res, fmt.Errorf("failed to check promo code uniqueness: %w", err)
	}

	if duplicate {
		return res, failure.BadRequestFromString("promo code already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, promo); err != nil {
		log.Error().Err(err).Msg("failed to create promo")

		return res, fmt.Errorf("failed to create promo: %w", err)
	}

	res.FromModel(promo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPromosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count promos")

		return res, fmt.Errorf("failed to count promos: %w", err)
	}

	promos, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get promos")

		return res, fmt.Errorf("failed to get promos: %w", err)
	}

	res.FromModels(promos, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PromoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	promo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get promo")

		return res, fmt.Errorf("failed to get promo: %w", err)
	}

	if promo.ID == "" {
		return res, failure.NotFound("promo not found") // nolint:wrapcheck
	}

	res.FromModel(promo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePromoRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePromoRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	req.Normalize()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if promo exists")

		return fmt.Errorf("failed to check if promo exists: %w", err)
	}

	if !exist {
		log.Error().Msg("promo not found")

		return failure.NotFound("promo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update promo")

		return fmt.Errorf("failed to update promo: %w", err)
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
		log.Error().Err(err).Msg("failed to check if promo exists")

		return fmt.Errorf("failed to check if promo exists: %w", err)
	}

	if !exist {
		log.Error().Msg("promo not found")

		return failure.NotFound("promo not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete promo")

		return fmt.Errorf("failed to delete promo: %w", err)
	}

	return nil
}
