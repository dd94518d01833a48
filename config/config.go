package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Page Configuration
	Page PageConfig

	// Channel Configuration
	Channel   ChannelConfig
	WebSocket WebSocketConfig

	// Notification Configuration
	Notification NotificationConfig

	// Auto-save Configuration
	AutoSave AutoSaveConfig

	// Control Server Configuration
	Server ServerConfig

	// External Services
	Redis   RedisConfig
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PageConfig describes the page the client renders into.
// URL decides the transport scheme and host of every channel.
type PageConfig struct {
	URL        string   `env:"PAGE_URL" envDefault:"http://localhost:8000/dashboard/"`
	Title      string   `env:"PAGE_TITLE" envDefault:"Inspora"`
	Regions    []string `env:"PAGE_REGIONS" envSeparator:"," envDefault:"main,messages"`
	ProjectIDs []string `env:"PAGE_PROJECT_IDS" envSeparator:","`
}

// ChannelConfig is the configuration for push channels
type ChannelConfig struct {
	Enabled        bool          `env:"CHANNEL_ENABLED" envDefault:"true"`
	ReconnectDelay time.Duration `env:"CHANNEL_RECONNECT_DELAY" envDefault:"5s"`
	DialTimeout    time.Duration `env:"CHANNEL_DIAL_TIMEOUT" envDefault:"10s"`
	JoinProjects   bool          `env:"CHANNEL_JOIN_PROJECTS" envDefault:"false"`
	LoopBuffer     int           `env:"CHANNEL_LOOP_BUFFER" envDefault:"1024"`
}

// WebSocketConfig is the configuration for WebSocket transport sessions
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"65536"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
}

// NotificationConfig is the configuration for the notification presenter
type NotificationConfig struct {
	DisplayWindow time.Duration `env:"NOTIFY_DISPLAY_WINDOW" envDefault:"5s"`
	Permission    string        `env:"NOTIFY_PERMISSION" envDefault:"default"`
	AutoGrant     bool          `env:"NOTIFY_AUTO_GRANT" envDefault:"true"`
}

// AutoSaveConfig is the configuration for form auto-save
type AutoSaveConfig struct {
	Enabled    bool          `env:"AUTOSAVE_ENABLED" envDefault:"false"`
	FormsDir   string        `env:"AUTOSAVE_FORMS_DIR" envDefault:"./forms"`
	Debounce   time.Duration `env:"AUTOSAVE_DEBOUNCE" envDefault:"250ms"`
	RatePerSec int           `env:"AUTOSAVE_RATE_PER_SEC" envDefault:"2"`
	Timeout    time.Duration `env:"AUTOSAVE_TIMEOUT" envDefault:"10s"`
}

// ServerConfig is the configuration for the local control server
type ServerConfig struct {
	Enabled bool   `env:"CONTROL_ENABLED" envDefault:"true"`
	Host    string `env:"CONTROL_HOST" envDefault:"127.0.0.1"`
	Port    int    `env:"CONTROL_PORT" envDefault:"8090"`
	Mode    string `env:"CONTROL_MODE" envDefault:"release"`
}

// RedisConfig is the configuration for the progress mirror
// Note: Only standalone mode is supported
type RedisConfig struct {
	Enabled     bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Host        string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port        int           `env:"REDIS_PORT" envDefault:"6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"4"`
	KeyPrefix   string        `env:"REDIS_KEY_PREFIX" envDefault:"inspora:page:"`
	ProgressTTL time.Duration `env:"REDIS_PROGRESS_TTL" envDefault:"1h"`
}

// DiscordConfig is the configuration for the Discord alert sink
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Page.URL == "" {
		return fmt.Errorf("PAGE_URL is required")
	}
	if cfg.Channel.ReconnectDelay <= 0 {
		return fmt.Errorf("CHANNEL_RECONNECT_DELAY must be positive")
	}
	if cfg.Notification.DisplayWindow <= 0 {
		return fmt.Errorf("NOTIFY_DISPLAY_WINDOW must be positive")
	}
	switch cfg.Notification.Permission {
	case "default", "granted", "denied":
	default:
		return fmt.Errorf("NOTIFY_PERMISSION must be one of default, granted, denied")
	}
	if cfg.Server.Enabled && (cfg.Server.Port <= 0 || cfg.Server.Port > 65535) {
		return fmt.Errorf("CONTROL_PORT is invalid")
	}
	return nil
}
