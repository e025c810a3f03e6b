package config

import (
	"fmt"
	"log"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	AppURL      string `env:"APP_URL" envDefault:"http://localhost:8080"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"static"`
	// Optional JSON file merged over the built-in design tokens
	ThemeFile      string   `env:"THEME_FILE"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// Requests per second allowed per client IP; 0 disables limiting
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20"`
}

// Load reads .env (if present) and the process environment
func Load() (*Config, error) {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Configuration loaded (environment: %s, port: %s)", cfg.Environment, cfg.ServerPort)
	return cfg, nil
}

// Parse builds a Config from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values other packages rely on
func (c *Config) Validate() error {
	u, err := url.Parse(c.AppURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("APP_URL must be an absolute URL, got %q", c.AppURL)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative, got %v", c.RateLimit)
	}
	if c.Environment == "production" && u.Scheme != "https" {
		log.Printf("[WARNING] APP_URL %s is not served over https in production", c.AppURL)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// PageURL joins a path onto AppURL
func (c *Config) PageURL(path string) string {
	base, err := url.Parse(c.AppURL)
	if err != nil {
		return c.AppURL + path
	}
	return base.JoinPath(path).String()
}
