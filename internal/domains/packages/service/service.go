package service

import (
	"context"
	"fmt"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/packages/model"
	"hotelsite/internal/domains/packages/model/dto"
	"hotelsite/internal/domains/packages/repository"
	"hotelsite/shared"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Package interface {
	Create(ctx context.Context, req dto.CreatePackageRequest) (dto.PackageResponse, error)
	GetAll(ctx context.Context) (dto.GetPackagesResponse, error)
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (dto.PackageResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Package
	otel otel.Otel
}

func New(repo repository.Package, otel otel.Otel) Package {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePackageRequest) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkg := req.ToModel(user)

	if err = s.repo.Insert(ctx, pkg); err != nil {
		return res, err
	}

	res.FromModel(pkg)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.NewestFirst(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get package")

		return res, fmt.Errorf("failed to get package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	res.FromModel(pkg)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check package existence")

		return res, fmt.Errorf("failed to check package existence: %w", err)
	}

	if !exist {
		log.Error().Msg("package not found")

		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Features != nil {
		updatedFields[model.FieldFeatures] = pq.StringArray(req.Features)
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update package")

		return res, fmt.Errorf("failed to update package: %w", err)
	}

	pkg, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload package")

		return res, fmt.Errorf("failed to reload package: %w", err)
	}

	res.FromModel(pkg)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if package exists")

		return fmt.Errorf("failed to check if package exists: %w", err)
	}

	if !exist {
		log.Error().Msg("package not found")

		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete package")

		return fmt.Errorf("failed to delete package: %w", err)
	}

	return nil
}
