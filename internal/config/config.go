package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/organilive/storefront/domain"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Store       StoreConfig
	Feed        FeedConfig
	Cache       CacheConfig
	Contact     ContactConfig
	Context     ContextConfig
	Logger      LoggerConfig
	Monitor     MonitorConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig locates the local BoltDB file holding the account records.
type StoreConfig struct {
	Path string
}

// FeedConfig describes the spreadsheet CSV export serving the catalog.
type FeedConfig struct {
	URL             string
	Timeout         time.Duration
	RefreshEnabled  bool
	RefreshInterval time.Duration
}

// CacheConfig describes the optional Redis catalog snapshot cache.
type CacheConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
	TTL      time.Duration
}

// ContactConfig holds the outbound contact endpoint plus the
// display-only contact constants (phone, email, address, whatsapp).
type ContactConfig struct {
	EndpointURL string
	Timeout     time.Duration
	Info        domain.ContactInfo
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type MonitorConfig struct {
	Interval time.Duration
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "storefront"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Store: StoreConfig{
			Path: getString("STORE_PATH", "./data/storefront.db"),
		},
		Feed: FeedConfig{
			URL:             os.Getenv("FEED_URL"),
			Timeout:         getDuration("FEED_TIMEOUT", 10*time.Second),
			RefreshEnabled:  getBool("FEED_REFRESH_ENABLED", true),
			RefreshInterval: getDuration("FEED_REFRESH_INTERVAL", 5*time.Minute),
		},
		Cache: CacheConfig{
			Enabled:  getBool("CACHE_ENABLED", false),
			URL:      getString("REDIS_URL", "redis://localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
			TTL:      getDuration("CACHE_TTL", time.Hour),
		},
		Contact: ContactConfig{
			EndpointURL: os.Getenv("CONTACT_ENDPOINT_URL"),
			Timeout:     getDuration("CONTACT_TIMEOUT", 10*time.Second),
			Info: domain.ContactInfo{
				Phone:    os.Getenv("CONTACT_PHONE"),
				Email:    os.Getenv("CONTACT_EMAIL"),
				Address:  os.Getenv("CONTACT_ADDRESS"),
				WhatsApp: os.Getenv("CONTACT_WHATSAPP"),
			},
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Monitor: MonitorConfig{
			Interval: getDuration("MONITOR_INTERVAL", 10*time.Second),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
