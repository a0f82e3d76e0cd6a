package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/faq/model"
	"armada/internal/domains/faq/model/dto"
	"armada/internal/domains/faq/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type FAQ interface {
	Create(ctx context.Context, req dto.CreateFAQRequest) (dto.FAQResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFAQsResponse, error)
	Get(ctx context.Context, id string) (dto.FAQResponse, error)
	Update(ctx context.Context, req dto.UpdateFAQRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.FAQ
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.FAQ, cfg *config.Config, otl otel.Otel) FAQ {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFAQRequest) (res dto.FAQResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	faq := req.ToModel(user)

	if err = s.repo.Insert(ctx, faq); err != nil {
		log.Error().Err(err).Msg("failed to create faq")

		return res, fmt.Errorf("failed to create faq: %w", err)
	}

	res.FromModel(faq)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFAQsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count faqs")

		return res, fmt.Errorf("failed to count faqs: %w", err)
	}

	faqs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get faqs")

		return res, fmt.Errorf("failed to get faqs: %w", err)
	}

	res.FromModels(faqs, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FAQResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	faq, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get faq")

		return res, fmt.Errorf("failed to get faq: %w", err)
	}

	if faq.ID == "" {
		return res, failure.NotFound("faq not found") // nolint:wrapcheck
	}

	res.FromModel(faq)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFAQRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateFAQRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if faq exists")

		return fmt.Errorf("failed to check if faq exists: %w", err)
	}

	if !exist {
		log.Error().Msg("faq not found")

		return failure.NotFound("faq not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update faq")

		return fmt.Errorf("failed to update faq: %w", err)
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
		log.Error().Err(err).Msg("failed to check if faq exists")

		return fmt.Errorf("failed to check if faq exists: %w", err)
	}

	if !exist {
		log.Error().Msg("faq not found")

		return failure.NotFound("faq not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete faq")

		return fmt.Errorf("failed to delete faq: %w", err)
	}

	return nil
}
