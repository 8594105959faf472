package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelsite/internal/domains/booking/model"
	"hotelsite/internal/domains/booking/model/dto"
	"hotelsite/shared/constant"
	"hotelsite/shared/failure"
)

func TestParseBookingDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "plain date format",
			value:   "2026-09-01",
			wantErr: false,
		},
		{
			name:    "rfc3339 fallback",
			value:   "2026-09-01T14:00:00Z",
			wantErr: false,
		},
		{
			name:    "invalid value",
			value:   "tomorrow",
			wantErr: true,
		},
		{
			name:    "empty value",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := dto.ParseBookingDate(model.FieldCheckIn, tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.Is(err, http.StatusBadRequest))
			} else {
				assert.NoError(t, err)
				assert.False(t, parsed.IsZero())
			}
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomTitle: "Deluxe Room",
		GuestName: "Jane Smith",
		Email:     "jane@example.com",
		Phone:     "+6281234567890",
		Address:   "Jl. Sudirman 1",
		Members:   "2",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-03",
	}

	booking, err := req.ToModel("admin")

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, constant.BookingRoomIDInquiry, booking.RoomID)
	assert.Equal(t, constant.BookingStatusPending, booking.Status)
	assert.Equal(t, "admin", booking.CreatedBy)
	assert.True(t, booking.CheckOut.After(booking.CheckIn))
}

func TestBookingResponse_FromModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomTitle:  "Deluxe Room",
		GuestName:  "Jane Smith",
		Email:      "jane@example.com",
		Phone:      "+6281234567890",
		Address:    "Jl. Sudirman 1",
		Members:    "2",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-03",
		TotalPrice: 450,
	}

	booking, err := req.ToModel("admin")
	assert.NoError(t, err)

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "2026-09-01", res.CheckIn)
	assert.Equal(t, "2026-09-03", res.CheckOut)
	assert.Equal(t, float64(450), res.TotalPrice)
}
