package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashingPlain  = "plain"
	HashingBcrypt = "bcrypt"

	DefaultBcryptCost = 12
)

var (
	ErrMalformedInt      = errors.New("value is not an integer")
	ErrUnknownHashing    = errors.New("BANK_PASSWORD_HASHING must be plain or bcrypt")
	ErrInvalidBcryptCost = errors.New("BANK_BCRYPT_COST out of range")
)

// Config holds every BANK_* setting after defaults are applied.
type Config struct {
	LogDir          string
	LogLevel        string
	MetricsFile     string
	PasswordHashing string
	BcryptCost      int
}

// Load reads the environment and rejects malformed or unsupported values.
func Load() (Config, error) {
	cost, err := getIntEnv("BANK_BCRYPT_COST", DefaultBcryptCost)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LogDir:          getEnv("BANK_LOG_DIR", ""),
		LogLevel:        getEnv("BANK_LOG_LEVEL", "INFO"),
		MetricsFile:     getEnv("BANK_METRICS_FILE", ""),
		PasswordHashing: strings.ToLower(strings.TrimSpace(getEnv("BANK_PASSWORD_HASHING", HashingPlain))),
		BcryptCost:      cost,
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.PasswordHashing {
	case HashingPlain:
	case HashingBcrypt:
		if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
			return fmt.Errorf("%w: got %d", ErrInvalidBcryptCost, c.BcryptCost)
		}
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownHashing, c.PasswordHashing)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// getIntEnv returns fallback when key is unset or empty and
// ErrMalformedInt when it is set to anything else that is not an integer.
func getIntEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrMalformedInt)
	}
	return i, nil
}
