package service

import (
	"context"
	"fmt"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/offer/model"
	"hotelsite/internal/domains/offer/model/dto"
	"hotelsite/internal/domains/offer/repository"
	"hotelsite/shared"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"

	"github.com/rs/zerolog/log"
)

type Offer interface {
	Create(ctx context.Context, req dto.CreateOfferRequest) (dto.OfferResponse, error)
	GetAll(ctx context.Context) (dto.GetOffersResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Offer
	otel otel.Otel
}

func New(repo repository.Offer, otel otel.Otel) Offer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOfferRequest) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	offer := req.ToModel(user)

	if err = s.repo.Insert(ctx, offer); err != nil {
		return res, err
	}

	res.FromModel(offer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get offers")

		return res, fmt.Errorf("failed to get offers: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if offer exists")

		return fmt.Errorf("failed to check if offer exists: %w", err)
	}

	if !exist {
		log.Error().Msg("offer not found")

		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete offer")

		return fmt.Errorf("failed to delete offer: %w", err)
	}

	return nil
}
