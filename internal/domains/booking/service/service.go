package service

import (
	"context"
	"fmt"

	"hotelsite/config"
	"hotelsite/infras/kafka"
	"hotelsite/infras/otel"
	"hotelsite/internal/domains/booking/model"
	"hotelsite/internal/domains/booking/model/dto"
	"hotelsite/internal/domains/booking/repository"
	"hotelsite/internal/events"
	"hotelsite/shared"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error

	CreatePackageBooking(ctx context.Context, req dto.CreatePackageBookingRequest) (dto.PackageBookingResponse, error)
	GetAllPackageBookings(ctx context.Context) (dto.GetPackageBookingsResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	pkgRepo repository.PackageBooking
	cfg     *config.Config
	otel    otel.Otel
	kafka   kafka.Client
}

func New(repo repository.Booking, pkgRepo repository.PackageBooking, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:    repo,
		pkgRepo: pkgRepo,
		cfg:     cfg,
		otel:    otel,
		kafka:   kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build booking from request")

		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, err
	}

	s.publishBookingCreated(ctx, events.BookingCreated{
		BookingID:     booking.ID,
		Kind:          events.BookingKindRoom,
		ResourceTitle: booking.RoomTitle,
		GuestName:     booking.GuestName,
		Phone:         booking.Phone,
		CheckIn:       req.CheckIn,
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// UpdateStatus patches the status column only; every other booking field is
// immutable after creation.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return res, fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldStatus] = req.Status

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreatePackageBooking(ctx context.Context, req dto.CreatePackageBookingRequest) (res dto.PackageBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePackageBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build package booking from request")

		return res, err
	}

	if err = s.pkgRepo.Insert(ctx, booking); err != nil {
		return res, err
	}

	s.publishBookingCreated(ctx, events.BookingCreated{
		BookingID:     booking.ID,
		Kind:          events.BookingKindPackage,
		ResourceTitle: booking.PackageTitle,
		GuestName:     booking.GuestName,
		Phone:         booking.Phone,
		CheckIn:       req.CheckIn,
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAllPackageBookings(ctx context.Context) (res dto.GetPackageBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPackageBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.pkgRepo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get package bookings")

		return res, fmt.Errorf("failed to get package bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// publishBookingCreated hands the event to the notification worker. The insert
// already committed, so a broker failure must never surface to the guest.
func (s *serviceImpl) publishBookingCreated(ctx context.Context, event events.BookingCreated) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   event.BookingID,
		Value: event,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to publish booking created event")
	}
}
