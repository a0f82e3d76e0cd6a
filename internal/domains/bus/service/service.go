package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/bus/model"
	"armada/internal/domains/bus/model/dto"
	"armada/internal/domains/bus/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type Bus interface {
	Create(ctx context.Context, req dto.CreateBusRequest) (dto.BusResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBusesResponse, error)
	Get(ctx context.Context, id string) (dto.BusResponse, error)
	Update(ctx context.Context, req dto.UpdateBusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Bus
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Bus, cfg *config.Config, otl otel.Otel) Bus {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBusRequest) (res dto.BusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bus := req.ToModel(user)

	if err = s.repo.Insert(ctx, bus); err != nil {
		log.Error().Err(err).Msg("failed to create bus")

		return res, fmt.Errorf("failed to create bus: %w", err)
	}

	res.FromModel(bus)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buses")

		return res, fmt.Errorf("failed to count buses: %w", err)
	}

	buses, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buses")

		return res, fmt.Errorf("failed to get buses: %w", err)
	}

	res.FromModels(buses, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bus, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return res, fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == constant.Empty {
		return res, failure.NotFound("bus not found") // nolint:wrapcheck
	}

	res.FromModel(bus)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBusRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, constant.Empty)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bus exists")

		return fmt.Errorf("failed to check if bus exists: %w", err)
	}

	if !exist {
		log.Error().Msg("bus not found")

		return failure.NotFound("bus not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update bus")

		return fmt.Errorf("failed to update bus: %w", err)
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
		log.Error().Err(err).Msg("failed to check if bus exists")

		return fmt.Errorf("failed to check if bus exists: %w", err)
	}

	if !exist {
		log.Error().Msg("bus not found")

		return failure.NotFound("bus not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete bus")

		return fmt.Errorf("failed to delete bus: %w", err)
	}

	return nil
}
