package model

import (
	"time"

	"hotelsite/shared/model"
)

const (
	PackageBookingTableName  = "package_bookings"
	PackageBookingEntityName = "package booking"

	FieldPackageID    = "package_id"
	FieldPackageTitle = "package_title"
)

type PackageBooking struct {
	ID           string    `db:"id"`
	PackageID    string    `db:"package_id"`
	PackageTitle string    `db:"package_title"`
	GuestName    string    `db:"guest_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Members      string    `db:"members"`
	CheckIn      time.Time `db:"check_in"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	model.Metadata
}
