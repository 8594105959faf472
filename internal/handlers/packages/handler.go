package packages

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/packages/model/dto"
	"hotelsite/internal/domains/packages/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/validator"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Package
	otel    otel.Otel
}

func New(service service.Package, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Put("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
	})
}

// CreatePackage handles the creation of a new package.
// @Summary Create a new package
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Package payload"
// @Success 201 {object} response.Data[dto.PackageResponse] "Created package"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages [post]
func (handler *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	var req dto.CreatePackageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pkg, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package created successfully")

	response.WithJSON(w, http.StatusCreated, pkg)
}

// GetPackages retrieves all packages, newest first.
// @Summary Get all packages
// @Tags Package
// @Produce json
// @Success 200 {object} response.Data[dto.GetPackagesResponse] "List of packages"
// @Failure 500 {object} response.Error
// @Router /api/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	packages, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPackageByID retrieves a package by its ID.
// @Summary Get a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageResponse] "Package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// UpdatePackage updates an existing package by its ID.
// @Summary Update a package by ID
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.PackageResponse] "Updated package"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [put]
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdatePackageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pkg, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package updated successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// DeletePackage deletes a package by its ID.
// @Summary Delete a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/packages/{id} [delete]
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package deleted successfully")

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}
