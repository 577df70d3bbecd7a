// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DevEnv = "dev"
	ProEnv = "pro"
)

type Config struct {
	Env            string   `env:"ENV" envDefault:"pro"`
	Address        string   `env:"ADDRESS_LISTEN"`
	JWTSecret      string   `env:"JWT_SECRET"`
	DBDriver       string   `env:"DB_DRIVER" envDefault:"sqlite"`
	DBURL          string   `env:"DB_URL"`
	EnableSignup   bool     `env:"ENABLE_SIGNUP"`
	WhitelistHost  string   `env:"WHITELIST_HOST"`
	CertCacheDir   string   `env:"CERT_CACHE_DIR" envDefault:"/var/www/.cache"`
	Language       string   `env:"LANGUAGE" envDefault:"en"`
	AdminUsernames []string `env:"ADMIN_USERNAMES" envSeparator:","`
	SessionHours   int      `env:"SESSION_HOURS" envDefault:"168"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Env == "" {
		cfg.Env = ProEnv
	}
	if cfg.Env == DevEnv {
		if cfg.Address == "" {
			cfg.Address = ":8080"
		}
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "unsecure"
		}
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("no secret defined")
	}
	if cfg.SessionHours <= 0 {
		return Config{}, fmt.Errorf("session hours must be positive, got %d", cfg.SessionHours)
	}
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.Env == DevEnv
}

// SignupAllowed reports whether new accounts may register.
func (c Config) SignupAllowed() bool {
	return c.IsDev() || c.EnableSignup
}

func (c Config) IsAdmin(username string) bool {
	return username != "" && slices.Contains(c.AdminUsernames, username)
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionHours) * time.Hour
}
