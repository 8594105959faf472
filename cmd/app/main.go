package main

import (
	"hotelsite/config"
	"hotelsite/di"
	"hotelsite/shared/logger"
)

// @title Hotel Site API
// @version 1.0
// @description CRUD backend for the hotel site: rooms, bookings, gallery, offers, blogs and packages.
// @BasePath /api
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server, cleanup := di.InitializeService()
	defer cleanup()

	server.Serve()
}
