package service

import (
	"context"
	"fmt"

	"armada/config"
	"armada/infras/otel"
	"armada/internal/domains/job/model"
	"armada/internal/domains/job/model/dto"
	"armada/internal/domains/job/repository"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/failure"

	"github.com/rs/zerolog/log"
)

type Job interface {
	Create(ctx context.Context, req dto.CreateJobRequest) (dto.JobResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetJobsResponse, error)
	Get(ctx context.Context, id string) (dto.JobResponse, error)
	Update(ctx context.Context, req dto.UpdateJobRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Job
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Job, cfg *config.Config, otl otel.Otel) Job {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateJobRequest) (res dto.JobResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	job := req.ToModel(user)

	if err = s.repo.Insert(ctx, job); err != nil {
		log.Error().Err(err).Msg("failed to create job")

		return res, fmt.Errorf("failed to create job: %w", err)
	}

	res.FromModel(job)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetJobsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count jobs")

		return res, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get jobs")

		return res, fmt.Errorf("failed to get jobs: %w", err)
	}

	res.FromModels(jobs, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.JobResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	job, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get job")

		return res, fmt.Errorf("failed to get job: %w", err)
	}

	if job.ID == "" {
		return res, failure.NotFound("job not found") // nolint:wrapcheck
	}

	res.FromModel(job)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateJobRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateJobRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if job exists")

		return fmt.Errorf("failed to check if job exists: %w", err)
	}

	if !exist {
		log.Error().Msg("job not found")

		return failure.NotFound("job not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update job")

		return fmt.Errorf("failed to update job: %w", err)
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
		log.Error().Err(err).Msg("failed to check if job exists")

		return fmt.Errorf("failed to check if job exists: %w", err)
	}

	if !exist {
		log.Error().Msg("job not found")

		return failure.NotFound("job not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete job")

		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}
