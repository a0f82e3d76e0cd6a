package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"armada/infras/otel"
	"armada/internal/domains/booking/model"
	gDto "armada/shared/dto"
	"armada/shared/localstore"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	localstore.Repository[model.Booking]
}

func New(provider *localstore.Provider, otl otel.Otel) Booking {
	return &repositoryImpl{
		Repository: localstore.NewRepository[model.Booking](model.EntityName, model.SlotName, model.FieldID, provider, otl, nil),
	}
}
