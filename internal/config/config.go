package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "CRMPortal"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultCRMBaseURL    = "http://localhost/CRMbackend"
	defaultAcceptedToken = "123"
	defaultCRMTimeout    = 10 * time.Second
	defaultShutdownDelay = 10 * time.Second
	defaultLoginPerMin   = 5

	crmTimeoutSecondsEnvVar = "CRM_TIMEOUT_SECONDS"
	crmTimeoutDurEnvVar     = "CRM_TIMEOUT"
	shutdownSecondsEnvVar   = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar  = "SHUTDOWN_TIMEOUT"
	loginRateEnvVar         = "LOGIN_RATE_LIMIT_PER_MIN"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName         string
	AppEnv          string
	Port            string
	LogLevel        string
	CRMBaseURL      string
	CRMTimeout      time.Duration
	AcceptedToken   string
	RedisURL        string
	LoginRatePerMin int
	ShutdownPeriod  time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
// CRM_BASE_URL falls back to a local development literal; production deployments are
// expected to set it explicitly.
func Load() (Config, error) {
	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          getEnv("APP_ENV", defaultAppEnv),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		CRMBaseURL:      strings.TrimRight(getEnv("CRM_BASE_URL", defaultCRMBaseURL), "/"),
		CRMTimeout:      defaultCRMTimeout,
		AcceptedToken:   getEnv("AUTH_ACCEPTED_TOKEN", defaultAcceptedToken),
		RedisURL:        os.Getenv("REDIS_URL"),
		LoginRatePerMin: defaultLoginPerMin,
		ShutdownPeriod:  defaultShutdownDelay,
	}

	if v := os.Getenv(crmTimeoutSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", crmTimeoutSecondsEnvVar, err)
		}
		cfg.CRMTimeout = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(crmTimeoutDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", crmTimeoutDurEnvVar, err)
		}
		cfg.CRMTimeout = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(loginRateEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", loginRateEnvVar, err)
		}
		cfg.LoginRatePerMin = n
	}

	if cfg.CRMBaseURL == "" {
		return Config{}, fmt.Errorf("CRM_BASE_URL must not be blank")
	}

	if cfg.CRMTimeout <= 0 {
		return Config{}, fmt.Errorf("CRM timeout must be positive")
	}

	if cfg.AcceptedToken == "" {
		return Config{}, fmt.Errorf("AUTH_ACCEPTED_TOKEN must not be blank")
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
