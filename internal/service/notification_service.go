package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/logger"
)

const defaultTelegramTimeout = 10 * time.Second

// NotificationService delivers owner-facing messages through the Telegram
// bot API. Missing credentials degrade to a logged no-op so checkout keeps
// working on installs that never configured a bot.
type NotificationService struct {
	cfg     config.TelegramConfig
	client  *http.Client
	baseURL string
}

func NewNotificationService(cfg config.TelegramConfig) *NotificationService {
	timeout := defaultTelegramTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &NotificationService{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		baseURL: "https://api.telegram.org",
	}
}

// Configured reports whether both bot token and chat id are present.
func (s *NotificationService) Configured() bool {
	return strings.TrimSpace(s.cfg.BotToken) != "" && strings.TrimSpace(s.cfg.ChatID) != ""
}

type telegramSendRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramSendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts a Markdown message to the configured chat. Unconfigured
// credentials return nil after a warning.
func (s *NotificationService) Send(ctx context.Context, message string) error {
	if !s.Configured() {
		logger.Warnw("telegram_credentials_missing")
		return nil
	}
	body, err := json.Marshal(telegramSendRequest{
		ChatID:    s.cfg.ChatID,
		Text:      message,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
	}
	defer resp.Body.Close()

	var decoded telegramSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrNotificationSendFailed, err)
	}
	if !decoded.OK {
		return fmt.Errorf("%w: telegram: %s", ErrNotificationSendFailed, decoded.Description)
	}
	return nil
}
