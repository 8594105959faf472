package service

import (
	"context"
	"fmt"
	"strings"

	"hotelsite/config"
	"hotelsite/infras/otel"
	"hotelsite/infras/s3"
	"hotelsite/internal/domains/room/model"
	"hotelsite/internal/domains/room/model/dto"
	"hotelsite/internal/domains/room/repository"
	"hotelsite/shared"
	"hotelsite/shared/base64"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"
	gRepo "hotelsite/shared/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := req.Image
	if base64.IsDataURI(req.Image) {
		imageURL, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room image")

			return res, err
		}
	}

	room := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, room); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(fmt.Sprintf("room with slug %q already exists", room.Slug)) // nolint:wrapcheck
		}

		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("room not found")

		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	imageURL := constant.Empty
	if base64.IsDataURI(req.Image) {
		imageURL, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload room image")

			return res, err
		}
	} else if req.Image != constant.Empty {
		imageURL = req.Image
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if req.Amenities != nil {
		updatedFields[model.FieldAmenities] = pq.StringArray(req.Amenities)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(fmt.Sprintf("room with slug %q already exists", req.Slug)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload room")

		return res, fmt.Errorf("failed to reload room: %w", err)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, dataURI string) (string, error) {
	payload, err := base64.DecodePayload(dataURI)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	contentType := base64.GetContentType(dataURI)

	filename := uuid.NewString()
	if ext, ok := strings.CutPrefix(contentType, "image/"); ok && ext != constant.Empty {
		filename = fmt.Sprintf("%s.%s", filename, ext)
	}

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, filename, contentType, payload)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}
