package telegram

//go:generate go run go.uber.org/mock/mockgen -source=./telegram.go -destination=./mocks/telegram_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hotelsite/config"
	"hotelsite/infras/otel"
	"hotelsite/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	apiBase        = "https://api.telegram.org"
	requestTimeout = 10 * time.Second
)

// Bot posts templated messages to a fixed Telegram chat. It is a best-effort
// side channel: when no bot token is configured every send is a silent no-op.
type Bot interface {
	SendMessage(ctx context.Context, text string) error
}

type botImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Bot {
	return &botImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
		otel:   otl,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

func (b *botImpl) SendMessage(ctx context.Context, text string) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".telegram.SendMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if b.cfg.Telegram.BotToken == "" {
		log.Debug().Msg("No Telegram bot token configured, skipping notification")

		return nil
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    b.cfg.Telegram.ChatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", apiBase, b.cfg.Telegram.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram responded with status %d", resp.StatusCode)
	}

	return nil
}
