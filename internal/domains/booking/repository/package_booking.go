package repository

//go:generate go run go.uber.org/mock/mockgen -source=./package_booking.go -destination=../mocks/package_booking_mock.go -package=mocks

import (
	"context"

	"hotelsite/infras/otel"
	"hotelsite/infras/postgres"
	"hotelsite/internal/domains/booking/model"
	gDto "hotelsite/shared/dto"
	gRepo "hotelsite/shared/repository"
)

type PackageBooking interface {
	Insert(ctx context.Context, model model.PackageBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PackageBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PackageBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type packageBookingImpl struct {
	gRepo.Repository[model.PackageBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPackageBooking(db *postgres.Connection, otel otel.Otel) PackageBooking {
	return &packageBookingImpl{
		Repository: gRepo.NewRepository[model.PackageBooking](model.PackageBookingEntityName, model.PackageBookingTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
