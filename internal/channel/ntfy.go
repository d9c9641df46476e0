package channel

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
)

// NtfyConfig is the per-user ntfy configuration.
type NtfyConfig struct {
	Topic    string `json:"topic" validate:"required,ntfytopic"`
	Server   string `json:"server,omitempty" validate:"omitempty,http_url"`
	Priority *int   `json:"priority,omitempty" validate:"omitempty,min=1,max=5"`
}

// Ntfy publishes to an ntfy topic over HTTP.
type Ntfy struct {
	client        *http.Client
	defaultServer string
	token         string
}

func NewNtfy(client *http.Client, defaultServer, token string) *Ntfy {
	return &Ntfy{
		client:        client,
		defaultServer: strings.TrimRight(defaultServer, "/"),
		token:         token,
	}
}

func (n *Ntfy) Name() string {
	return domain.ChannelNtfy
}

func (n *Ntfy) Validate(config map[string]any) error {
	return decodeConfig(config, &NtfyConfig{})
}

func (n *Ntfy) Send(ctx context.Context, config map[string]any, msg contract.Message) error {
	var cfg NtfyConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return err
	}

	server := n.defaultServer
	if cfg.Server != "" {
		server = strings.TrimRight(cfg.Server, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server+"/"+cfg.Topic, strings.NewReader(msg.Body))
	if err != nil {
		return domain.Terminal(n.Name(), fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Title", msg.Title)
	req.Header.Set("Tags", "shirt")
	if cfg.Priority != nil {
		req.Header.Set("Priority", strconv.Itoa(*cfg.Priority))
	}
	// the process token only ever goes to the process server
	if n.token != "" && server == n.defaultServer {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return domain.Transient(n.Name(), err)
	}
	defer resp.Body.Close()

	return classifyResponse(n.Name(), resp)
}
