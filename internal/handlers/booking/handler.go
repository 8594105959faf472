package booking

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/booking/model/dto"
	"hotelsite/internal/domains/booking/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/validator"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBookingStatus)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})

	router.Route("/package-bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackageBookings)
		routerGroup.Post("/", handler.CreatePackageBooking)
	})
}

// CreateBooking handles a new room booking request.
// @Summary Create a new booking
// @Description Create a booking and queue an operator notification.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings, newest first.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBookingStatus patches the status of a booking.
// @Summary Update booking status
// @Description Only the status field is mutable after creation.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [patch]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBookingStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// CreatePackageBooking handles a new package booking request.
// @Summary Create a new package booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageBookingRequest true "Package booking payload"
// @Success 201 {object} response.Data[dto.PackageBookingResponse] "Created package booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/package-bookings [post]
func (handler *Handler) CreatePackageBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackageBooking")
	defer scope.End()

	var req dto.CreatePackageBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.CreatePackageBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create package booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetPackageBookings retrieves all package bookings, newest first.
// @Summary Get all package bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetPackageBookingsResponse] "List of package bookings"
// @Failure 500 {object} response.Error
// @Router /api/package-bookings [get]
func (handler *Handler) GetPackageBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageBookings")
	defer scope.End()

	bookings, err := handler.service.GetAllPackageBookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get package bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Package bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}
