package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/adisyon/internal/auth"
)

type Config struct {
	DatabaseURL    string
	DatabaseDriver string

	// FixturePath is empty for the fixture embedded in the binary.
	FixturePath string

	DefaultPassword   string
	BcryptCost        int
	Demo              bool
	GeneratePasswords bool

	LogLevel  string
	LogFormat string
}

// FromEnv reads the process environment, after loading .env unless ENV=prod.
// Variables already set in the environment win over .env entries.
func FromEnv() (Config, error) {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf(".env: %w", err)
		}
	}

	cfg := Config{
		DatabaseURL:     getenv("DATABASE_URL", "file:adisyon.db"),
		DatabaseDriver:  strings.TrimSpace(os.Getenv("DATABASE_DRIVER")),
		FixturePath:     strings.TrimSpace(os.Getenv("ADISYON_FIXTURE")),
		DefaultPassword: getenv("ADISYON_DEFAULT_PASSWORD", "123456"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "console"),
	}

	cost, err := strconv.Atoi(getenv("ADISYON_BCRYPT_COST", strconv.Itoa(auth.DefaultCost)))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("invalid ADISYON_BCRYPT_COST (want %d..%d)", bcrypt.MinCost, bcrypt.MaxCost)
	}
	cfg.BcryptCost = cost

	if cfg.Demo, err = getbool("ADISYON_DEMO", true); err != nil {
		return Config{}, err
	}
	if cfg.GeneratePasswords, err = getbool("ADISYON_GENERATE_PASSWORDS", false); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func getbool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", k, v)
	}
	return b, nil
}
