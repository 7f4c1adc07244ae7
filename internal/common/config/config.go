package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"userapi/internal/common/constants"
	commonerrors "userapi/internal/common/errors"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type UsersConfig struct {
	HTTPPort       string        `validate:"required,numeric"`
	Store          string        `validate:"required,oneof=postgres memory"`
	DatabaseURL    string
	RequestTimeout time.Duration `validate:"required,gt=0"`
	CacheTTL       time.Duration `validate:"gte=0"`
	LogDir         string
	LogLevel       string `validate:"required,oneof=DEBUG INFO WARNING WARN ERROR CRITICAL"`
}

var validate = validator.New()

func LoadUsersConfig() (UsersConfig, error) {
	cfg := UsersConfig{
		HTTPPort:       getEnv("USERS_HTTP_PORT", constants.DefaultUsersHTTPPort),
		Store:          strings.ToLower(getEnv("USERS_STORE", StorePostgres)),
		RequestTimeout: getDurationEnv("USERS_REQUEST_TIMEOUT", constants.DefaultUsersRequestTimeout),
		CacheTTL:       getDurationEnv("USERS_CACHE_TTL", constants.UserCacheTTL),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
	}

	if cfg.Store == StorePostgres {
		databaseURL, err := mustEnv("DATABASE_URL")
		if err != nil {
			return UsersConfig{}, err
		}
		cfg.DatabaseURL = databaseURL
	}

	if err := validate.Struct(cfg); err != nil {
		return UsersConfig{}, fmt.Errorf("%w: %v", commonerrors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
