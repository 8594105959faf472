package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelsite/config"
	"hotelsite/infras/otel/mocks"
	s3Mocks "hotelsite/infras/s3/mocks"
	roomMocks "hotelsite/internal/domains/room/mocks"
	"hotelsite/internal/domains/room/model"
	"hotelsite/internal/domains/room/model/dto"
	"hotelsite/internal/domains/room/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/failure"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotel-assets"

	svc := service.New(mockRepo, cfg, mockOtel, mockS3)

	return svc, mockRepo, mockS3
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestRoomService_Create(t *testing.T) {
	validReq := dto.CreateRoomRequest{
		Title:       "Deluxe Room",
		Price:       floatPtr(199),
		Description: "A spacious room with ocean view",
	}

	t.Run("successful creation applies defaults", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		var inserted model.Room

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room
				return nil
			})

		res, err := svc.Create(context.Background(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, "deluxe-room", inserted.Slug)
		assert.Equal(t, constant.RoomDefaultCategory, inserted.Category)
		assert.Equal(t, constant.RoomDefaultSize, inserted.Size)
		assert.Equal(t, constant.RoomDefaultBedType, inserted.BedType)
		assert.Equal(t, constant.RoomDefaultAdults, inserted.MaxAdults)
		assert.NotEmpty(t, inserted.Amenities)
		assert.Equal(t, "deluxe-room", res.Slug)
	})

	t.Run("data uri image offloaded to object storage", func(t *testing.T) {
		svc, mockRepo, mockS3 := newRoomService(t)

		req := validReq
		req.Image = pngDataURI

		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), "hotel-assets", model.EntityName, gomock.Any(), "image/png", gomock.Any()).
			Return("https://cdn.example.com/hotel-assets/room/abc.png", nil)

		var inserted model.Room

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room
				return nil
			})

		_, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/hotel-assets/room/abc.png", inserted.Image)
	})

	t.Run("plain image url stored as-is", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		req := validReq
		req.Image = "https://example.com/room.png"

		var inserted model.Room

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				inserted = room
				return nil
			})

		_, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/room.png", inserted.Image)
	})

	t.Run("corrupt data uri", func(t *testing.T) {
		svc, _, _ := newRoomService(t)

		req := validReq
		req.Image = "data:image/png;base64,!!!not-base64!!!"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), validReq)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validReq)

		assert.Error(t, err)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("successful get all", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		rooms := []model.Room{
			{ID: "room-1", Title: "Deluxe Room", Slug: "deluxe-room"},
			{ID: "room-2", Title: "Family Room", Slug: "family-room"},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rooms, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Rooms, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Title: "Deluxe Room"}, nil)

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "room-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("successful partial update", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Title: "Deluxe Room"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "Updated Room", fields[model.FieldTitle])
				assert.NotContains(t, fields, model.FieldDescription)
				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Title: "Updated Room"}, nil)

		res, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Title: "Updated Room"}, "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "Updated Room", res.Title)
	})

	t.Run("amenities replaced when provided", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, pq.StringArray{"Breakfast"}, fields[model.FieldAmenities])
				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Amenities: pq.StringArray{"Breakfast"}}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Amenities: []string{"Breakfast"}}, "room-1")

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Title: "Updated"}, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Slug: "family-room"}, "room-1")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "room-1")

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
