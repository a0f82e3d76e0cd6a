package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"

	"armada/infras/otel"
	"armada/internal/domains/bus/model"
	gDto "armada/shared/dto"
	"armada/shared/localstore"
)

// seed holds the fleet the slot starts with before any write.
//
//go:embed seed.json
var seed []byte

type Bus interface {
	Insert(ctx context.Context, model model.Bus) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Bus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Bus, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	localstore.Repository[model.Bus]
}

func New(provider *localstore.Provider, otl otel.Otel) Bus {
	return &repositoryImpl{
		Repository: localstore.NewRepository[model.Bus](model.EntityName, model.SlotName, model.FieldID, provider, otl, seed),
	}
}
