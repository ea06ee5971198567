package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	API           APIConfig
	Log           LogConfig
	State         StateConfig
	Notifications NotificationsConfig
}

// APIConfig holds EventosIA REST API connection settings.
type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration // multipart event create/update may carry an image
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level    string // debug, info, warn, error
	Encoding string // console or json
}

// StateConfig holds device-local persisted state settings.
type StateConfig struct {
	Dir string // directory for session.json and cached profile data
}

// NotificationsConfig holds live-notification stream settings.
type NotificationsConfig struct {
	StreamEnabled bool          // when false, the client falls back to polling
	StreamURL     string        // ws:// or wss:// endpoint; derived from BaseURL when empty
	PollInterval  time.Duration
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL:        strings.TrimRight(getEnv("EVENTOSIA_API_URL", "http://localhost:3000"), "/"),
			RequestTimeout: getEnvDuration("EVENTOSIA_REQUEST_TIMEOUT", 15*time.Second),
			UploadTimeout:  getEnvDuration("EVENTOSIA_UPLOAD_TIMEOUT", 60*time.Second),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		State: StateConfig{
			Dir: getEnv("EVENTOSIA_STATE_DIR", defaultStateDir()),
		},
		Notifications: NotificationsConfig{
			StreamEnabled: getEnvBool("EVENTOSIA_NOTIFICATIONS_STREAM", true),
			StreamURL:     getEnv("EVENTOSIA_NOTIFICATIONS_WS_URL", ""),
			PollInterval:  getEnvDuration("EVENTOSIA_NOTIFICATIONS_POLL_INTERVAL", 30*time.Second),
		},
	}
	return cfg, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventosia"
	}
	return filepath.Join(home, ".eventosia")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
