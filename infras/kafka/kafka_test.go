package kafka_test

import (
	"context"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"hotelsite/config"
	"hotelsite/infras/kafka"
)

type payload struct {
	BookingID string `json:"booking_id"`
}

func newClient(t *testing.T) kafka.Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	client, cleanup := kafka.New(cfg)
	t.Cleanup(cleanup)

	return client
}

func TestMessageToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:   "booking-1",
		Value: payload{BookingID: "booking-1"},
	}

	msg, err := message.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, "booking-1", string(msg.Key))
	assert.JSONEq(t, `{"booking_id":"booking-1"}`, string(msg.Value))
}

func TestDecodeKafkaMessage(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		decoded, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{
			Value: []byte(`{"booking_id":"booking-1"}`),
		})

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", decoded.BookingID)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{
			Value: []byte("not json"),
		})

		assert.Error(t, err)
	})
}

func TestSendMessagesMarshalFailure(t *testing.T) {
	client := newClient(t)

	err := client.SendMessages(context.Background(), "booking.created", kafka.Message{
		Key:   "booking-1",
		Value: make(chan int),
	})

	assert.Error(t, err)
}
