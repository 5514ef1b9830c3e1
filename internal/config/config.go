package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	Auth    AuthConfig    `koanf:"auth"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string     `koanf:"host"`
	Port int        `koanf:"port"`
	Mode string     `koanf:"mode"`
	CORS CORSConfig `koanf:"cors"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
	AllowMethods []string `koanf:"allow_methods"`
	AllowHeaders []string `koanf:"allow_headers"`
	MaxAge       string   `koanf:"max_age"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

// AuthConfig holds the stub login settings. The mock backend accepts a
// single credential pair and hands back a fixed token; nothing is signed
// or validated afterwards.
type AuthConfig struct {
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
	Token    string `koanf:"token"`
	UserID   string `koanf:"user_id"`
	Role     string `koanf:"role"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// Default returns the compiled-in configuration. The server binds to
// loopback only and serves the stock Black-Cross mock credential.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Mode: gin.ReleaseMode,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
				AllowMethods: []string{"GET", "POST", "OPTIONS"},
				AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
				MaxAge:       "24h",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Auth: AuthConfig{
			Email:    "admin@blackcross.com",
			Password: "admin",
			Token:    "mock-jwt-token",
			UserID:   "1",
			Role:     "admin",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads configuration from a YAML file and overlays environment
// variables. A missing config file is not an error; the compiled-in
// defaults apply so the binary runs with zero setup.
//
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key
// name. For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__LOG__LEVEL=debug overrides log.level.
//
// The bare PORT variable is honored last for compatibility with existing
// deployments of the mock server.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Load YAML config file when present.
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Overlay environment variables with prefix APP__.
	// APP__SERVER__PORT -> server.port
	if err := k.Load(env.Provider("APP__", ".", func(s string) string {
		key := strings.TrimPrefix(s, "APP__")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints and supported values.
func (c *Config) Validate() error {
	// Validate server.mode.
	mode := strings.TrimSpace(c.Server.Mode)
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		c.Server.Mode = mode
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	// Validate server.port range.
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	// Validate server.host.
	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		return fmt.Errorf("server.host is required")
	}
	c.Server.Host = host

	// Validate server.cors.max_age (optional; must be a valid duration if set).
	c.Server.CORS.MaxAge = strings.TrimSpace(c.Server.CORS.MaxAge)
	if ma := c.Server.CORS.MaxAge; ma != "" {
		d, err := time.ParseDuration(ma)
		if err != nil {
			return fmt.Errorf("invalid server.cors.max_age %q: must be a valid duration (e.g. \"24h\", \"3600s\"): %w", c.Server.CORS.MaxAge, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid server.cors.max_age %q: must be greater than 0", c.Server.CORS.MaxAge)
		}
	}

	// Validate auth settings for the stub login.
	email := strings.TrimSpace(c.Auth.Email)
	if email == "" {
		return fmt.Errorf("auth.email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("invalid auth.email %q: must be a plain email address", c.Auth.Email)
	}
	c.Auth.Email = email

	if c.Auth.Password == "" {
		return fmt.Errorf("auth.password is required")
	}
	if strings.TrimSpace(c.Auth.Token) == "" {
		return fmt.Errorf("auth.token is required")
	}

	// Validate metrics.path.
	if c.Metrics.Enabled {
		path := strings.TrimSpace(c.Metrics.Path)
		if path == "" || !strings.HasPrefix(path, "/") {
			return fmt.Errorf("invalid metrics.path %q: must start with '/'", c.Metrics.Path)
		}
		c.Metrics.Path = path
	}

	// Validate log.level.
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch level {
	case "debug", "info", "warn", "error":
		c.Log.Level = level
	default:
		return fmt.Errorf("invalid log.level %q: must be one of %q, %q, %q, %q", c.Log.Level, "debug", "info", "warn", "error")
	}

	// Validate log.format.
	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch format {
	case "text", "json":
		c.Log.Format = format
	default:
		return fmt.Errorf("invalid log.format %q: must be one of %q, %q", c.Log.Format, "text", "json")
	}

	return nil
}
