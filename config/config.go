package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig

	Tracker TrackerConfig
	Webhook WebhookConfig
	Push    PushConfig
	Board   BoardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

// TrackerConfig points at the external issue tracker.
type TrackerConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration // bound on outbound label mutation calls
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// PushConfig controls the notification push stream.
type PushConfig struct {
	HeartbeatInterval time.Duration
}

// BoardConfig controls board listing cache behavior.
type BoardConfig struct {
	CacheTTL  time.Duration
	CacheSize int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")

	// Tracker
	cfg.Tracker.BaseURL = viper.GetString("tracker.base_url")
	cfg.Tracker.AccessToken = viper.GetString("tracker.access_token")
	cfg.Tracker.Timeout = viper.GetDuration("tracker.timeout")
	if trackerURL := viper.GetString("tracker_base_url"); trackerURL != "" {
		cfg.Tracker.BaseURL = trackerURL
	}
	if trackerToken := viper.GetString("tracker_access_token"); trackerToken != "" {
		cfg.Tracker.AccessToken = trackerToken
	}
	if cfg.Tracker.BaseURL == "" {
		return nil, fmt.Errorf("tracker.base_url is required")
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// Push stream
	cfg.Push.HeartbeatInterval = viper.GetDuration("push.heartbeat_interval")

	// Board cache
	cfg.Board.CacheTTL = viper.GetDuration("board.cache_ttl")
	cfg.Board.CacheSize = viper.GetInt("board.cache_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "data/qa-board.db")
	viper.SetDefault("tracker.timeout", "10s")
	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("push.heartbeat_interval", "30s")
	viper.SetDefault("board.cache_ttl", "1m")
	viper.SetDefault("board.cache_size", 128)
}
