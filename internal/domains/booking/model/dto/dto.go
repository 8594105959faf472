package dto

import (
	"fmt"
	"time"

	"hotelsite/internal/domains/booking/model"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string      `json:"room_id"     validate:"omitempty"`
	RoomTitle  string      `json:"room_title"  validate:"required"`
	GuestName  string      `json:"guest_name"  validate:"required"`
	Email      string      `json:"email"       validate:"required"`
	Phone      string      `json:"phone"       validate:"required"`
	Address    string      `json:"address"     validate:"required"`
	Members    string      `json:"members"     validate:"required"`
	CheckIn    string      `json:"check_in"    validate:"required"`
	CheckOut   string      `json:"check_out"   validate:"required"`
	TotalPrice gDto.Amount `json:"total_price" validate:"omitempty"`
	Status     string      `json:"status"      validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := ParseBookingDate(model.FieldCheckIn, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := ParseBookingDate(model.FieldCheckOut, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	roomID := c.RoomID
	if roomID == constant.Empty {
		roomID = constant.BookingRoomIDInquiry
	}

	status := c.Status
	if status == constant.Empty {
		status = constant.BookingStatusPending
	}

	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		RoomTitle:  c.RoomTitle,
		GuestName:  c.GuestName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Members:    c.Members,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: c.TotalPrice.Float64(),
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// ParseBookingDate accepts the plain booking date format first and falls back
// to RFC3339 so datetime pickers that send full timestamps keep working.
func ParseBookingDate(field, value string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.BookingDateFormat, value)
	if err == nil {
		return parsed, nil
	}

	parsed, err = timezone.Parse(constant.DateFormat, value)
	if err == nil {
		return parsed, nil
	}

	return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD", field)) // nolint:wrapcheck
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	RoomTitle  string  `json:"room_title"`
	GuestName  string  `json:"guest_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Members    string  `json:"members"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomTitle = model.RoomTitle
	r.GuestName = model.GuestName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Members = model.Members
	r.CheckIn = timezone.Format(model.CheckIn, constant.BookingDateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.BookingDateFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
