// Package handler is the serverless entrypoint: each invocation builds the
// full dependency graph and dispatches a single request.
package handler

import (
	"net/http"

	"hotelsite/config"
	"hotelsite/di"
	"hotelsite/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server, cleanup := di.InitializeService()
	defer cleanup()

	server.Handler().ServeHTTP(w, r)
}
