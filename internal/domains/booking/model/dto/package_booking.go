package dto

import (
	"hotelsite/internal/domains/booking/model"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
)

type CreatePackageBookingRequest struct {
	PackageID    string      `json:"package_id"    validate:"required"`
	PackageTitle string      `json:"package_title" validate:"required"`
	GuestName    string      `json:"guest_name"    validate:"required"`
	Email        string      `json:"email"         validate:"required"`
	Phone        string      `json:"phone"         validate:"required"`
	Members      string      `json:"members"       validate:"required"`
	CheckIn      string      `json:"check_in"      validate:"required"`
	TotalPrice   gDto.Amount `json:"total_price"   validate:"required"`
	Status       string      `json:"status"        validate:"omitempty"`
}

func (c *CreatePackageBookingRequest) ToModel(user string) (model.PackageBooking, error) {
	checkIn, err := ParseBookingDate(model.FieldCheckIn, c.CheckIn)
	if err != nil {
		return model.PackageBooking{}, err
	}

	status := c.Status
	if status == constant.Empty {
		status = constant.BookingStatusPending
	}

	return model.PackageBooking{
		ID:           uuid.NewString(),
		PackageID:    c.PackageID,
		PackageTitle: c.PackageTitle,
		GuestName:    c.GuestName,
		Email:        c.Email,
		Phone:        c.Phone,
		Members:      c.Members,
		CheckIn:      checkIn,
		TotalPrice:   c.TotalPrice.Float64(),
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type PackageBookingResponse struct {
	ID           string  `json:"id"`
	PackageID    string  `json:"package_id"`
	PackageTitle string  `json:"package_title"`
	GuestName    string  `json:"guest_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Members      string  `json:"members"`
	CheckIn      string  `json:"check_in"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *PackageBookingResponse) FromModel(model model.PackageBooking) {
	r.ID = model.ID
	r.PackageID = model.PackageID
	r.PackageTitle = model.PackageTitle
	r.GuestName = model.GuestName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Members = model.Members
	r.CheckIn = timezone.Format(model.CheckIn, constant.BookingDateFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPackageBookingsResponse struct {
	PackageBookings []PackageBookingResponse `json:"package_bookings"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetPackageBookingsResponse) FromModels(models []model.PackageBooking) {
	r.TotalData = len(models)

	r.PackageBookings = make([]PackageBookingResponse, len(models))
	for i, mod := range models {
		r.PackageBookings[i].FromModel(mod)
	}
}
