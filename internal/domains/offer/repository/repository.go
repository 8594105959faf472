package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelsite/infras/otel"
	"hotelsite/infras/postgres"
	"hotelsite/internal/domains/offer/model"
	gDto "hotelsite/shared/dto"
	gRepo "hotelsite/shared/repository"
)

type Offer interface {
	Insert(ctx context.Context, model model.Offer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Offer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Offer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Offer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Offer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Offer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
