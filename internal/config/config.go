package config

import (
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
// It is built once at startup and passed by value to constructors.
type Config struct {
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./notifier.db"`
	Port         string `envconfig:"PORT" default:"3000"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	PollSpec    string `envconfig:"POLL_SPEC" default:"* * * * *"`
	RetrySpec   string `envconfig:"RETRY_SPEC" default:"*/5 * * * *"`
	HealthSpec  string `envconfig:"HEALTH_SPEC" default:"*/30 * * * *"`
	ProfileSpec string `envconfig:"PROFILE_SPEC" default:"30 * * * *"`

	MaxJobs     int           `envconfig:"MAX_JOBS" default:"5"`
	QueueSize   int           `envconfig:"QUEUE_SIZE" default:"100"`
	JobTimeout  time.Duration `envconfig:"JOB_TIMEOUT" default:"600s"`
	SendTimeout time.Duration `envconfig:"SEND_TIMEOUT" default:"30s"`

	MaxTries     int                 `envconfig:"MAX_TRIES" default:"3"`
	RetryBatch   int                 `envconfig:"RETRY_BATCH" default:"100"`
	DispatchMode domain.DispatchMode `envconfig:"DISPATCH_MODE" default:"fanout"`

	NtfyServer string `envconfig:"NTFY_SERVER" default:"https://ntfy.sh"`
	NtfyToken  string `envconfig:"NTFY_TOKEN"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"reminders@localhost"`

	ExpoPushURL     string `envconfig:"EXPO_PUSH_URL" default:"https://exp.host/--/api/v2/push/send"`
	ExpoAccessToken string `envconfig:"EXPO_ACCESS_TOKEN"`

	// RedisURL enables the cross-process tick lease when set.
	RedisURL string `envconfig:"REDIS_URL"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxJobs < 1 {
		return fmt.Errorf("MAX_JOBS must be at least 1, got %d", c.MaxJobs)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be at least 1, got %d", c.QueueSize)
	}
	if c.MaxTries < 1 {
		return fmt.Errorf("MAX_TRIES must be at least 1, got %d", c.MaxTries)
	}
	if c.RetryBatch < 1 {
		return fmt.Errorf("RETRY_BATCH must be at least 1, got %d", c.RetryBatch)
	}
	if c.JobTimeout <= 0 || c.SendTimeout <= 0 {
		return fmt.Errorf("JOB_TIMEOUT and SEND_TIMEOUT must be positive")
	}
	switch c.DispatchMode {
	case domain.DispatchFanout, domain.DispatchFirstSuccess:
	default:
		return fmt.Errorf("unknown DISPATCH_MODE %q", c.DispatchMode)
	}
	return nil
}
