package admin

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/admin/service"
	"hotelsite/shared/constant"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// GetStats returns the admin dashboard aggregate.
// @Summary Get admin dashboard stats
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Dashboard aggregate"
// @Failure 500 {object} response.Error
// @Router /api/admin/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute admin stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin stats computed successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
