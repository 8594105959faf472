package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelsite/config"
	kafkaMocks "hotelsite/infras/kafka/mocks"
	"hotelsite/infras/otel/mocks"
	bookingMocks "hotelsite/internal/domains/booking/mocks"
	"hotelsite/internal/domains/booking/model"
	"hotelsite/internal/domains/booking/model/dto"
	"hotelsite/internal/domains/booking/service"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"
)

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *bookingMocks.MockPackageBooking, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPkgRepo := bookingMocks.NewMockPackageBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "booking.created"

	svc := service.New(mockRepo, mockPkgRepo, cfg, mockOtel, mockKafka)

	return svc, mockRepo, mockPkgRepo, mockKafka
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomTitle: "Deluxe Room",
		GuestName: "Jane Smith",
		Email:     "jane@example.com",
		Phone:     "+6281234567890",
		Address:   "Jl. Sudirman 1",
		Members:   "2",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-03",
	}

	t.Run("successful creation applies defaults", func(t *testing.T) {
		svc, mockRepo, _, mockKafka := newBookingService(t)

		var inserted model.Booking

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				return nil
			})

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(nil)

		res, err := svc.Create(context.Background(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingRoomIDInquiry, inserted.RoomID)
		assert.Equal(t, constant.BookingStatusPending, inserted.Status)
		assert.Equal(t, float64(0), inserted.TotalPrice)
		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, constant.BookingStatusPending, res.Status)
		assert.Equal(t, "2026-09-01", res.CheckIn)
	})

	t.Run("explicit room and status kept", func(t *testing.T) {
		svc, mockRepo, _, mockKafka := newBookingService(t)

		req := validReq
		req.RoomID = "room-42"
		req.Status = "Confirmed"

		var inserted model.Booking

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				return nil
			})

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(nil)

		_, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "room-42", inserted.RoomID)
		assert.Equal(t, "Confirmed", inserted.Status)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		svc, mockRepo, _, mockKafka := newBookingService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(errors.New("broker unreachable"))

		res, err := svc.Create(context.Background(), validReq)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("invalid check in date", func(t *testing.T) {
		svc, _, _, _ := newBookingService(t)

		req := validReq
		req.CheckIn = "next tuesday"

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), validReq)

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("successful get all", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		bookings := []model.Booking{
			{
				ID:        "booking-1",
				RoomTitle: "Deluxe Room",
				GuestName: "Jane Smith",
				CheckIn:   timezone.Now(),
				CheckOut:  timezone.Now(),
				Status:    constant.BookingStatusPending,
				Metadata:  gModel.Metadata{},
			},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Eq(gDto.NewestFirst()), gomock.Any()).
			Return(bookings, nil)

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "booking-1", res.Bookings[0].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Eq(gDto.NewestFirst()), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", Status: constant.BookingStatusPending}, nil)

		res, err := svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, errors.New("database error"))

		_, err := svc.Get(context.Background(), "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	req := dto.UpdateBookingStatusRequest{Status: "Confirmed"}

	t.Run("successful update touches status and metadata only", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "Confirmed", fields[model.FieldStatus])
				assert.Contains(t, fields, constant.FieldModifiedAt)
				assert.Contains(t, fields, constant.FieldModifiedBy)
				assert.Len(t, fields, 3)
				return nil
			})

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "booking-1", Status: "Confirmed"}, nil)

		res, err := svc.UpdateStatus(context.Background(), req, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "Confirmed", res.Status)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.UpdateStatus(context.Background(), req, "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("update error", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.UpdateStatus(context.Background(), req, "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newBookingService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_CreatePackageBooking(t *testing.T) {
	validReq := dto.CreatePackageBookingRequest{
		PackageID:    "package-1",
		PackageTitle: "Honeymoon Package",
		GuestName:    "Jane Smith",
		Email:        "jane@example.com",
		Phone:        "+6281234567890",
		Members:      "2",
		CheckIn:      "2026-10-15",
		TotalPrice:   899,
	}

	t.Run("successful creation publishes event", func(t *testing.T) {
		svc, _, mockPkgRepo, mockKafka := newBookingService(t)

		var inserted model.PackageBooking

		mockPkgRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.PackageBooking) error {
				inserted = booking
				return nil
			})

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.created", gomock.Any()).
			Return(nil)

		res, err := svc.CreatePackageBooking(context.Background(), validReq)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusPending, inserted.Status)
		assert.Equal(t, float64(899), inserted.TotalPrice)
		assert.Equal(t, "Honeymoon Package", res.PackageTitle)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, _, mockPkgRepo, _ := newBookingService(t)

		mockPkgRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.CreatePackageBooking(context.Background(), validReq)

		assert.Error(t, err)
	})
}

func TestBookingService_GetAllPackageBookings(t *testing.T) {
	t.Run("successful get all", func(t *testing.T) {
		svc, _, mockPkgRepo, _ := newBookingService(t)

		bookings := []model.PackageBooking{
			{ID: "pb-1", PackageTitle: "Honeymoon Package"},
			{ID: "pb-2", PackageTitle: "Family Getaway"},
		}

		mockPkgRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Eq(gDto.NewestFirst()), gomock.Any()).
			Return(bookings, nil)

		res, err := svc.GetAllPackageBookings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.PackageBookings, 2)
	})
}
