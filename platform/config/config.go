// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// FirestoreConfig provides the Firebase/Firestore connection settings.
// The project ID is the only parameter the Go server actually dials with;
// the remaining keys identify the same Firebase app and are validated so a
// broken deployment is diagnosed at startup instead of on first write.
type FirestoreConfig interface {
	GetFirebaseProjectID() string
	GetFirebaseCredentialsFile() string
	MissingFirebaseParams() []string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTSecret() string
}

// AuthServiceConfig provides settings needed by the auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetEnv() string
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// CacheConfig provides settings for the redis-backed report cache.
type CacheConfig interface {
	GetRedisURL() string
	GetLeadsCacheTTL() time.Duration
}

// EmailConfig provides settings for email notifications.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetAdminNotifyEmail() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	JWTSecret      string
	AccessTokenTTL time.Duration

	FirebaseAPIKey            string
	FirebaseAuthDomain        string
	FirebaseProjectID         string
	FirebaseStorageBucket     string
	FirebaseMessagingSenderID string
	FirebaseAppID             string
	FirebaseCredentialsFile   string

	RedisURL      string
	LeadsCacheTTL time.Duration

	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	AdminNotifyEmail string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// FirestoreConfig implementation
func (c *Config) GetFirebaseProjectID() string       { return c.FirebaseProjectID }
func (c *Config) GetFirebaseCredentialsFile() string { return c.FirebaseCredentialsFile }

// MissingFirebaseParams returns the names of required Firebase connection
// parameters that are absent from the environment.
func (c *Config) MissingFirebaseParams() []string {
	var missing []string
	params := []struct {
		name  string
		value string
	}{
		{"FIREBASE_API_KEY", c.FirebaseAPIKey},
		{"FIREBASE_AUTH_DOMAIN", c.FirebaseAuthDomain},
		{"FIREBASE_PROJECT_ID", c.FirebaseProjectID},
		{"FIREBASE_STORAGE_BUCKET", c.FirebaseStorageBucket},
		{"FIREBASE_MESSAGING_SENDER_ID", c.FirebaseMessagingSenderID},
		{"FIREBASE_APP_ID", c.FirebaseAppID},
	}
	for _, p := range params {
		if p.value == "" {
			missing = append(missing, p.name)
		}
	}
	return missing
}

// JWTConfig implementation
func (c *Config) GetJWTSecret() string { return c.JWTSecret }

// AuthServiceConfig implementation
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }

// HTTPConfig implementation
func (c *Config) GetEnv() string           { return c.Env }
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// CacheConfig implementation
func (c *Config) GetRedisURL() string             { return c.RedisURL }
func (c *Config) GetLeadsCacheTTL() time.Duration { return c.LeadsCacheTTL }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetAdminNotifyEmail() string { return c.AdminNotifyEmail }

// Load reads configuration from environment variables.
//
// A missing FIREBASE_PROJECT_ID is deliberately not fatal here: the server
// still starts and the persistence gateway reports a configuration error on
// every operation, which is far easier to diagnose than a crash loop.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AccessTokenTTL: mustDuration(getEnv("JWT_ACCESS_TTL", "12h")),

		FirebaseAPIKey:            getEnv("FIREBASE_API_KEY", ""),
		FirebaseAuthDomain:        getEnv("FIREBASE_AUTH_DOMAIN", ""),
		FirebaseProjectID:         getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseStorageBucket:     getEnv("FIREBASE_STORAGE_BUCKET", ""),
		FirebaseMessagingSenderID: getEnv("FIREBASE_MESSAGING_SENDER_ID", ""),
		FirebaseAppID:             getEnv("FIREBASE_APP_ID", ""),
		FirebaseCredentialsFile:   getEnv("FIREBASE_CREDENTIALS_FILE", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		LeadsCacheTTL: mustDuration(getEnv("LEADS_CACHE_TTL", "5m")),

		EmailEnabled:     emailEnabled && smtpHost != "",
		SMTPHost:         smtpHost,
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Consultas Salones"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", ""),
		AdminNotifyEmail: getEnv("ADMIN_NOTIFY_EMAIL", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func mustDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid duration %q: %v", raw, err))
	}
	return d
}

func mustInt(raw string) int {
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
		panic(fmt.Sprintf("invalid integer %q: %v", raw, err))
	}
	return n
}
