// Package channel implements the delivery channels a user can configure and
// the registry that resolves them by name.
package channel

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/diegoclair/wardrobe-notifier/internal/config"
	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
)

// Registry implements contract.ChannelRegistry.
type Registry struct {
	channels map[string]contract.Channel
}

// NewRegistry builds a registry holding exactly the given channels.
func NewRegistry(channels ...contract.Channel) *Registry {
	r := &Registry{channels: make(map[string]contract.Channel, len(channels))}
	for _, ch := range channels {
		r.channels[ch.Name()] = ch
	}
	return r
}

// New builds the registry with every supported channel configured from cfg.
func New(cfg config.Config, client *http.Client) *Registry {
	if client == nil {
		client = &http.Client{Timeout: cfg.SendTimeout}
	}

	return NewRegistry(
		NewNtfy(client, cfg.NtfyServer, cfg.NtfyToken),
		NewWebhook(domain.ChannelMattermost, client),
		NewWebhook(domain.ChannelSlack, client),
		NewEmail(SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		NewExpo(client, cfg.ExpoPushURL, cfg.ExpoAccessToken),
	)
}

func (r *Registry) Get(name string) (contract.Channel, error) {
	ch, ok := r.channels[name]
	if !ok {
		return nil, domain.NewValidationError("channel", fmt.Sprintf("unsupported channel %q", name))
	}
	return ch, nil
}

// Names returns the registered channel names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
