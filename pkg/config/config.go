package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix for every setting, e.g. SHOPCTL_BASE_URL.
const Prefix = "SHOPCTL"

// Config holds everything shopctl reads from the environment.
type Config struct {
	BaseURL        string        `split_words:"true" default:"https://peterka.netlify.app/api"`
	Workers        int           `default:"4"`
	ConnectTimeout time.Duration `split_words:"true" default:"10s"`
	ReadTimeout    time.Duration `split_words:"true" default:"10s"`
	LogLevel       string        `split_words:"true" default:"info"`
	Environment    string        `default:"development"`
}

// Load reads an optional .env file from the working directory and then
// processes the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be caught by envconfig alone.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url %q must use http or https", c.BaseURL)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.ConnectTimeout <= 0 || c.ReadTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}
