package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Content
	FAQFile        string        // JSON list of FAQ records
	ConfigFile     string        // optional YAML presentation config
	ReloadInterval time.Duration // 0 disables polling FAQFile for changes

	// Landing view sizes
	PreviewLimit int // items per bucket preview
	RecentLimit  int // items in "recently added"

	// Copied acknowledgement lifetime
	CopiedTTL time.Duration

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// Storage for sessions and rate limiting; empty means in-memory
	RedisURL string

	// Rate limiting, requests per minute per IP
	RateLimit int

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Logging
	LogLevel  string // debug, info, warn, error
	LogPretty bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "令和6年基準対応 FAQ"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		FAQFile:        getEnv("FAQ_FILE", "data/faq.json"),
		ConfigFile:     getEnv("CONFIG_FILE", "config.yaml"),
		ReloadInterval: getDuration("RELOAD_INTERVAL", 0),
		PreviewLimit:   getInt("PREVIEW_LIMIT", 3),
		RecentLimit:    getInt("RECENT_LIMIT", 5),
		CopiedTTL:      getDuration("COPIED_TTL", 2*time.Second),
		SessionSecret:  getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:       getEnv("REDIS_URL", ""),
		RateLimit:      getInt("RATE_LIMIT", 100),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnv("LOG_PRETTY", "") != "",

		SiteTitle:   getEnv("SITE_TITLE", "令和6年基準対応 FAQ"),
		SiteTagline: getEnv("SITE_TAGLINE", "社内・顧客サービス部向け。カテゴリから選ぶか、キーワードで素早く検索。"),
		SiteFooter:  getEnv("SITE_FOOTER", "FAQ"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// UsesRedis reports whether sessions and rate limits are stored in Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
