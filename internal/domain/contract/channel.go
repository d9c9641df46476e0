package contract

import "context"

// Message is the channel-independent content of one reminder.
type Message struct {
	Title      string
	Body       string
	Occasion   string
	TargetDate string
}

// Channel is one delivery mechanism. Validate runs when a setting is written
// and again before every send.
type Channel interface {
	Name() string
	Validate(config map[string]any) error
	Send(ctx context.Context, config map[string]any, msg Message) error
}

// ChannelRegistry resolves channel variants by name.
type ChannelRegistry interface {
	Get(name string) (Channel, error)
	Names() []string
}
