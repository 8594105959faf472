package notifier_test

import (
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelsite/config"
	kafkaMocks "hotelsite/infras/kafka/mocks"
	telegramMocks "hotelsite/infras/telegram/mocks"
	"hotelsite/internal/events"
	"hotelsite/internal/notifier"
)

func newNotifier(t *testing.T) (*notifier.Notifier, *telegramMocks.MockBot) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockBot := telegramMocks.NewMockBot(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "booking.created"
	cfg.Kafka.ConsumerGroup = "notifier"

	return notifier.New(cfg, mockKafka, mockBot), mockBot
}

func bookingMessage(t *testing.T, event events.BookingCreated) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(event)
	assert.NoError(t, err)

	return kafkaGo.Message{Key: []byte(event.BookingID), Value: value}
}

func TestNotifier_HandleMessage(t *testing.T) {
	event := events.BookingCreated{
		BookingID:     "booking-1",
		Kind:          events.BookingKindRoom,
		ResourceTitle: "Deluxe Room",
		GuestName:     "Jane Smith",
		Phone:         "+6281234567890",
		CheckIn:       "2026-09-01",
	}

	t.Run("delivers telegram message", func(t *testing.T) {
		n, mockBot := newNotifier(t)

		mockBot.EXPECT().
			SendMessage(gomock.Any(), event.TelegramText()).
			Return(nil)

		n.HandleMessage(bookingMessage(t, event))
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		n, mockBot := newNotifier(t)

		mockBot.EXPECT().
			SendMessage(gomock.Any(), gomock.Any()).
			Return(errors.New("telegram unreachable"))

		n.HandleMessage(bookingMessage(t, event))
	})

	t.Run("undecodable payload skipped", func(t *testing.T) {
		n, _ := newNotifier(t)

		n.HandleMessage(kafkaGo.Message{Value: []byte("not json")})
	})
}
