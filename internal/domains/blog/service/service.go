package service

import (
	"context"
	"fmt"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/blog/model"
	"hotelsite/internal/domains/blog/model/dto"
	"hotelsite/internal/domains/blog/repository"
	"hotelsite/shared"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"

	"github.com/rs/zerolog/log"
)

type Blog interface {
	Create(ctx context.Context, req dto.CreateBlogRequest) (dto.BlogResponse, error)
	GetAll(ctx context.Context) (dto.GetBlogsResponse, error)
	Get(ctx context.Context, id string) (dto.BlogResponse, error)
	Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (dto.BlogResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Blog
	otel otel.Otel
}

func New(repo repository.Blog, otel otel.Otel) Blog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogRequest) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	post := req.ToModel(user)

	if err = s.repo.Insert(ctx, post); err != nil {
		return res, err
	}

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBlogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog posts")

		return res, fmt.Errorf("failed to get blog posts: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	post, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog post")

		return res, fmt.Errorf("failed to get blog post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blog post existence")

		return res, fmt.Errorf("failed to check blog post existence: %w", err)
	}

	if !exist {
		log.Error().Msg("blog post not found")

		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Date != constant.Empty {
		date, err := dto.ParseBlogDate(req.Date)
		if err != nil {
			return res, err
		}

		updatedFields[model.FieldDate] = date
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update blog post")

		return res, fmt.Errorf("failed to update blog post: %w", err)
	}

	post, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload blog post")

		return res, fmt.Errorf("failed to reload blog post: %w", err)
	}

	res.FromModel(post)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blog post exists")

		return fmt.Errorf("failed to check if blog post exists: %w", err)
	}

	if !exist {
		log.Error().Msg("blog post not found")

		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog post")

		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	return nil
}
