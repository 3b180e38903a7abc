package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL), security settings
// - default: Values common across all environments (timeouts, limits), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	CORS    CORSConfig
	Log     LogConfig
	Cookie  CookieConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the travel-planning backend this service fronts.
type BackendConfig struct {
	BaseURL   string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"BACKEND_USER_AGENT" default:"tripflow/1.0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"10m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL:   "http://localhost:18080",
			Timeout:   5 * time.Second,
			UserAgent: "tripflow-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Session: SessionConfig{
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
	}
}
