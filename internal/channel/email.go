package channel

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/wneessen/go-mail"
)

// EmailConfig is the per-user email configuration.
type EmailConfig struct {
	Address string `json:"address" validate:"required,email"`
}

// SMTPOptions configures the outgoing mail server.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Email delivers reminders through an SMTP server.
type Email struct {
	from   string
	sender func() (mailSender, error)
}

func NewEmail(opts SMTPOptions) *Email {
	return &Email{
		from: opts.From,
		sender: func() (mailSender, error) {
			if opts.Host == "" {
				return nil, errors.New("smtp host is not configured")
			}
			clientOpts := []mail.Option{
				mail.WithPort(opts.Port),
				mail.WithTLSPolicy(mail.TLSOpportunistic),
			}
			if opts.Username != "" {
				clientOpts = append(clientOpts,
					mail.WithSMTPAuth(mail.SMTPAuthPlain),
					mail.WithUsername(opts.Username),
					mail.WithPassword(opts.Password),
				)
			}
			return mail.NewClient(opts.Host, clientOpts...)
		},
	}
}

func (e *Email) Name() string {
	return domain.ChannelEmail
}

func (e *Email) Validate(config map[string]any) error {
	return decodeConfig(config, &EmailConfig{})
}

func (e *Email) Send(ctx context.Context, config map[string]any, msg contract.Message) error {
	var cfg EmailConfig
	if err := decodeConfig(config, &cfg); err != nil {
		return err
	}

	m := mail.NewMsg()
	if err := m.From(e.from); err != nil {
		return domain.Terminal(e.Name(), fmt.Errorf("invalid sender address: %w", err))
	}
	if err := m.To(cfg.Address); err != nil {
		return domain.Terminal(e.Name(), fmt.Errorf("invalid recipient address: %w", err))
	}
	m.Subject(msg.Title)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	sender, err := e.sender()
	if err != nil {
		return domain.Terminal(e.Name(), err)
	}

	err = sender.DialAndSendWithContext(ctx, m)
	if err == nil {
		return nil
	}

	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && !sendErr.IsTemp() {
		return domain.Terminal(e.Name(), err)
	}
	return domain.Transient(e.Name(), err)
}
