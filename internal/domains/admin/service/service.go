package service

import (
	"context"
	"fmt"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/admin/model/dto"
	bookingRepo "hotelsite/internal/domains/booking/repository"
	packagesRepo "hotelsite/internal/domains/packages/repository"
	roomRepo "hotelsite/internal/domains/room/repository"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"

	"github.com/rs/zerolog/log"
)

type Admin interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	rooms    roomRepo.Room
	bookings bookingRepo.Booking
	packages packagesRepo.Package
	otel     otel.Otel
}

func New(rooms roomRepo.Room, bookings bookingRepo.Booking, packages packagesRepo.Package, otel otel.Otel) Admin {
	return &serviceImpl{
		rooms:    rooms,
		bookings: bookings,
		packages: packages,
		otel:     otel,
	}
}

// Stats recomputes the dashboard aggregate on every call. Room and package
// totals come from store counts; bookings are materialized once and reduced
// in a single pass for the revenue sum and the pending tally.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	totalRooms, err := s.rooms.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	totalPackages, err := s.packages.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count packages")

		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.TotalRooms = totalRooms
	res.TotalPackages = totalPackages
	res.TotalBookings = len(bookings)

	for _, booking := range bookings {
		res.TotalRevenue += booking.TotalPrice

		if booking.Status == constant.BookingStatusPending {
			res.PendingBookings++
		}
	}

	return res, nil
}
