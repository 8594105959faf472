package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelsite/infras/otel/mocks"
	packagesMocks "hotelsite/internal/domains/packages/mocks"
	"hotelsite/internal/domains/packages/model"
	"hotelsite/internal/domains/packages/model/dto"
	"hotelsite/internal/domains/packages/service"
	"hotelsite/shared/failure"
)

func newPackageService(t *testing.T) (service.Package, *packagesMocks.MockPackage) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := packagesMocks.NewMockPackage(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	return svc, mockRepo
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestPackageService_Create(t *testing.T) {
	validReq := dto.CreatePackageRequest{
		Title:       "Honeymoon Package",
		Price:       floatPtr(899),
		Duration:    "3 Days / 2 Nights",
		Image:       "https://example.com/honeymoon.jpg",
		Description: "Romantic escape for two",
		Features:    []string{"Candlelight dinner", "Couples spa"},
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		var inserted model.Package

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pkg model.Package) error {
				inserted = pkg
				return nil
			})

		res, err := svc.Create(context.Background(), validReq)

		assert.NoError(t, err)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, float64(899), inserted.Price)
		assert.Equal(t, pq.StringArray{"Candlelight dinner", "Couples spa"}, inserted.Features)
		assert.Equal(t, "Honeymoon Package", res.Title)
		assert.Len(t, res.Features, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validReq)

		assert.Error(t, err)
	})
}

func TestPackageService_GetAll(t *testing.T) {
	t.Run("successful get all", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		packages := []model.Package{
			{ID: "package-1", Title: "Honeymoon Package"},
			{ID: "package-2", Title: "Family Getaway"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(packages, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Packages, 2)
	})
}

func TestPackageService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Package{ID: "package-1", Title: "Honeymoon Package"}, nil)

		res, err := svc.Get(context.Background(), "package-1")

		assert.NoError(t, err)
		assert.Equal(t, "package-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Package{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestPackageService_Update(t *testing.T) {
	t.Run("features replaced when provided", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, pq.StringArray{"Airport pickup"}, fields[model.FieldFeatures])
				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Package{ID: "package-1", Features: pq.StringArray{"Airport pickup"}}, nil)

		res, err := svc.Update(context.Background(), dto.UpdatePackageRequest{
			Features: []string{"Airport pickup"},
		}, "package-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"Airport pickup"}, res.Features)
	})

	t.Run("package not found", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePackageRequest{Title: "Updated"}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestPackageService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "package-1")

		assert.NoError(t, err)
	})

	t.Run("package not found", func(t *testing.T) {
		svc, mockRepo := newPackageService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
