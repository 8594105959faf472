package offer

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/offer/model/dto"
	"hotelsite/internal/domains/offer/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/validator"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOffers)
		routerGroup.Post("/", handler.CreateOffer)
		routerGroup.Delete("/{id}", handler.DeleteOffer)
	})
}

// CreateOffer handles the creation of a new offer.
// @Summary Create a new offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferRequest true "Offer payload"
// @Success 201 {object} response.Data[dto.OfferResponse] "Created offer"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/offers [post]
func (handler *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffer")
	defer scope.End()

	var req dto.CreateOfferRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	offer, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create offer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offer created successfully")

	response.WithJSON(w, http.StatusCreated, offer)
}

// GetOffers retrieves all offers, newest first.
// @Summary Get all offers
// @Tags Offer
// @Produce json
// @Success 200 {object} response.Data[dto.GetOffersResponse] "List of offers"
// @Failure 500 {object} response.Error
// @Router /api/offers [get]
func (handler *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	offers, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offers retrieved successfully")

	response.WithJSON(w, http.StatusOK, offers)
}

// DeleteOffer deletes an offer by its ID.
// @Summary Delete an offer by ID
// @Tags Offer
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Message "Offer deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/offers/{id} [delete]
func (handler *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete offer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offer deleted successfully")

	response.WithMessage(w, http.StatusOK, "Offer deleted successfully")
}
