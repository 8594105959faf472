// Package notifier is the consuming side of the booking notification
// pipeline: it reads booking-created events from Kafka and delivers a
// Telegram message per event. Delivery is best effort, failures are logged
// and the offset advances regardless.
package notifier

import (
	"context"
	"time"

	"hotelsite/config"
	"hotelsite/infras/kafka"
	"hotelsite/infras/telegram"
	"hotelsite/internal/events"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const deliveryTimeout = 30 * time.Second

type Notifier struct {
	cfg   *config.Config
	kafka kafka.Client
	bot   telegram.Bot
}

func New(cfg *config.Config, kafkaClient kafka.Client, bot telegram.Bot) *Notifier {
	return &Notifier{
		cfg:   cfg,
		kafka: kafkaClient,
		bot:   bot,
	}
}

// Run blocks consuming the booking topic until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	log.Info().Str("topic", n.cfg.Kafka.BookingTopic).Msg("Notification worker started.")

	n.kafka.Consume(ctx, n.cfg.Kafka.ConsumerGroup, n.cfg.Kafka.BookingTopic, n.HandleMessage)
}

func (n *Notifier) HandleMessage(msg kafkaGo.Message) {
	event, err := kafka.DecodeKafkaMessage[events.BookingCreated](msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking created event")

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := n.bot.SendMessage(ctx, event.TelegramText()); err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to deliver booking notification")

		return
	}

	log.Info().Str("booking_id", event.BookingID).Str("kind", event.Kind).Msg("Booking notification delivered.")
}
