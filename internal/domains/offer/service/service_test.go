package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelsite/infras/otel/mocks"
	offerMocks "hotelsite/internal/domains/offer/mocks"
	"hotelsite/internal/domains/offer/model"
	"hotelsite/internal/domains/offer/model/dto"
	"hotelsite/internal/domains/offer/service"
	"hotelsite/shared/failure"
)

func newOfferService(t *testing.T) (service.Offer, *offerMocks.MockOffer) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := offerMocks.NewMockOffer(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	return svc, mockRepo
}

func TestOfferService_Create(t *testing.T) {
	validReq := dto.CreateOfferRequest{
		Title:       "Summer Escape",
		Description: "Three nights with breakfast included",
		Price:       "From $199 / night",
		Validity:    "Until Sep 30",
		ImageURL:    "https://example.com/summer.jpg",
		Discount:    "20% OFF",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		var inserted model.Offer

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, offer model.Offer) error {
				inserted = offer
				return nil
			})

		res, err := svc.Create(context.Background(), validReq)

		assert.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, "From $199 / night", inserted.Price)
		assert.Equal(t, "Summer Escape", res.Title)
		assert.Equal(t, "20% OFF", res.Discount)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validReq)

		assert.Error(t, err)
	})
}

func TestOfferService_GetAll(t *testing.T) {
	t.Run("successful get all", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		offers := []model.Offer{
			{ID: "offer-1", Title: "Summer Escape"},
			{ID: "offer-2", Title: "Weekend Deal"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(offers, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Offers, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestOfferService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "offer-1")

		assert.NoError(t, err)
	})

	t.Run("offer not found", func(t *testing.T) {
		svc, mockRepo := newOfferService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
