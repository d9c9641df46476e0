package channel

import (
	"context"
	"errors"
	"net/http"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/slack-go/slack"
)

// WebhookConfig is the per-user configuration of a chat incoming webhook.
type WebhookConfig struct {
	WebhookURL string `json:"webhook_url" validate:"required,http_url"`
	Channel    string `json:"channel,omitempty"`
	Username   string `json:"username,omitempty"`
	IconURL    string `json:"icon_url,omitempty" validate:"omitempty,http_url"`
}

// Webhook posts to a Slack-compatible incoming webhook. Mattermost accepts the
// same payload, so both channels share this implementation.
type Webhook struct {
	name   string
	client *http.Client
}

func NewWebhook(name string, client *http.Client) *Webhook {
	return &Webhook{name: name, client: client}
}

func (w *Webhook) Name() string {
	return w.name
}

func (w *Webhook) Validate(config map[string]any) error {
	return decodeConfig(config, &WebhookConfig{})
}

func (w *Webhook) Send(ctx context.Context, config map[string]any, msg contract.Message) error {
	var cfg WebhookConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return err
	}

	payload := &slack.WebhookMessage{
		Text:     w.bold(msg.Title) + "\n" + msg.Body,
		Channel:  cfg.Channel,
		Username: cfg.Username,
		IconURL:  cfg.IconURL,
	}

	err := slack.PostWebhookCustomHTTPContext(ctx, cfg.WebhookURL, w.client, payload)
	if err == nil {
		return nil
	}

	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return classifyStatus(w.name, statusErr.Code, err)
	}

	// rate limits, transport failures and timeouts
	return domain.Transient(w.name, err)
}

// bold wraps s in the emphasis markup of the target: Slack mrkdwn uses a single
// asterisk while Mattermost renders standard markdown.
func (w *Webhook) bold(s string) string {
	if w.name == domain.ChannelSlack {
		return "*" + s + "*"
	}
	return "**" + s + "**"
}
