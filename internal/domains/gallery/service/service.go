package service

import (
	"context"
	"fmt"
	"strings"

	"hotelsite/config"
	"hotelsite/infras/otel"
	"hotelsite/infras/s3"
	"hotelsite/internal/domains/gallery/model/dto"
	"hotelsite/internal/domains/gallery/repository"
	"hotelsite/shared/base64"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryRequest) (dto.GalleryResponse, error)
	GetAll(ctx context.Context) (dto.GetGalleriesResponse, error)
}

type serviceImpl struct {
	repo repository.Gallery
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryRequest) (res dto.GalleryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := req.Image
	if base64.IsDataURI(req.Image) {
		imageURL, err = s.uploadImage(ctx, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload gallery image")

			return res, err
		}
	}

	photo := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, photo); err != nil {
		return res, err
	}

	res.FromModel(photo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetGalleriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery photos")

		return res, fmt.Errorf("failed to get gallery photos: %w", err)
	}

	res.FromModels(models)

	return res, nil
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

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, "gallery", filename, contentType, payload)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}
