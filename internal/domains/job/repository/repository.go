package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"armada/infras/otel"
	"armada/infras/postgres"
	"armada/internal/domains/job/model"
	gDto "armada/shared/dto"
	gRepo "armada/shared/repository"
)

type Job interface {
	Insert(ctx context.Context, model model.Job) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Job, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Job, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Job]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Job {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Job](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}
