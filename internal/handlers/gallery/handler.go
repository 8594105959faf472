package gallery

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/gallery/model/dto"
	"hotelsite/internal/domains/gallery/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/validator"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGallery)
		routerGroup.Post("/", handler.CreateGalleryPhoto)
	})
}

// CreateGalleryPhoto adds a photo to the gallery.
// @Summary Add a gallery photo
// @Description A data-URI image is offloaded to object storage; plain URLs are stored as-is.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Photo payload"
// @Success 201 {object} response.Data[dto.GalleryResponse] "Created photo"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery [post]
func (handler *Handler) CreateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGalleryPhoto")
	defer scope.End()

	var req dto.CreateGalleryRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	photo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery photo created successfully")

	response.WithJSON(w, http.StatusCreated, photo)
}

// GetGallery retrieves all gallery photos, newest first.
// @Summary Get all gallery photos
// @Tags Gallery
// @Produce json
// @Success 200 {object} response.Data[dto.GetGalleriesResponse] "List of photos"
// @Failure 500 {object} response.Error
// @Router /api/gallery [get]
func (handler *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	photos, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery photos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery photos retrieved successfully")

	response.WithJSON(w, http.StatusOK, photos)
}
