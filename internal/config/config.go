package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
)

// DefaultTimeout is used when NOCOBASE_TIMEOUT is not set.
const DefaultTimeout = 30 * time.Second

// DefaultEnvFile is the env file consulted by Load when no path is given.
const DefaultEnvFile = ".env"

// Config holds the NocoBase server connection settings.
type Config struct {
	// BaseURL is the API root, usually ending in /api,
	// e.g. http://localhost:13000/api.
	BaseURL string

	// Token is the API key sent as a Bearer token on every request.
	Token string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns a configuration with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}

// Load reads configuration from an env file and the process environment.
//
// The file uses dotenv syntax:
//
//	NOCOBASE_BASE_URL=http://example.com/api
//	NOCOBASE_TOKEN=xxxx
//	NOCOBASE_TIMEOUT=30
//
// Variables already present in the environment win over the file, and a
// missing file is not an error. NOCOBASE_TIMEOUT accepts either a bare
// number of seconds ("30") or a duration string ("45s", "2m").
func Load(envPath string) (*Config, error) {
	if envPath == "" {
		envPath = DefaultEnvFile
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	cfg := DefaultConfig()
	cfg.BaseURL = strings.TrimSpace(os.Getenv("NOCOBASE_BASE_URL"))
	cfg.Token = strings.TrimSpace(os.Getenv("NOCOBASE_TOKEN"))

	if raw := strings.TrimSpace(os.Getenv("NOCOBASE_TIMEOUT")); raw != "" {
		d, err := parseTimeout(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NOCOBASE_TIMEOUT %q: %w", raw, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// parseTimeout parses a timeout value as seconds or as a duration string.
func parseTimeout(raw string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("timeout must be positive")
		}
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := str2duration.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive")
	}
	return d, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL not configured (set NOCOBASE_BASE_URL, e.g. http://localhost:13000/api)")
	}
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("API token not configured (set NOCOBASE_TOKEN)")
	}
	return nil
}
