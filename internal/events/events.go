// Package events defines the messages exchanged between the HTTP service and
// the notification worker over Kafka.
package events

import "fmt"

const (
	BookingKindRoom    = "room"
	BookingKindPackage = "package"
)

// BookingCreated is published after a booking or package booking row has been
// durably inserted. The worker turns it into an operator notification.
type BookingCreated struct {
	BookingID     string `json:"booking_id"`
	Kind          string `json:"kind"`
	ResourceTitle string `json:"resource_title"`
	GuestName     string `json:"guest_name"`
	Phone         string `json:"phone"`
	CheckIn       string `json:"check_in"`
}

// TelegramText renders the Markdown message delivered to the operator chat.
func (e BookingCreated) TelegramText() string {
	label := "Room"
	if e.Kind == BookingKindPackage {
		label = "Package"
	}

	return fmt.Sprintf(
		"🔔 *New Booking Request!*\n\n*%s:* %s\n*Guest:* %s\n*Phone:* %s\n*Check-in:* %s",
		label, e.ResourceTitle, e.GuestName, e.Phone, e.CheckIn,
	)
}
