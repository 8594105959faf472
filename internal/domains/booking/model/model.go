package model

import (
	"time"

	"hotelsite/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldRoomTitle  = "room_title"
	FieldGuestName  = "guest_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
	FieldMembers    = "members"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

type Booking struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	RoomTitle  string    `db:"room_title"`
	GuestName  string    `db:"guest_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Address    string    `db:"address"`
	Members    string    `db:"members"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	TotalPrice float64   `db:"total_price"`
	Status     string    `db:"status"`
	model.Metadata
}
