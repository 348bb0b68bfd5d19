package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	PostgresStore = "postgres"
	MemoryStore   = "memory"
)

type Catalog struct {
	BaseURL   string        `default:"http://localhost:3000/api"`
	Timeout   time.Duration `default:"10s"`
	UserAgent string        `default:"Umami/1.0"`
}

type Preferences struct {
	Store string `default:"postgres"`
}

// DB is only checked when the postgres preference store is selected.
type DB struct {
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"*"`
}

type Integrations struct {
	Catalog string `default:"umami_api"`
}

type Config struct {
	Catalog      Catalog
	Preferences  Preferences
	DB           DB
	Server       Server
	Integrations Integrations
}

const envPrefix = "UMAMI" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	var errs error

	switch c.Preferences.Store {
	case PostgresStore:
		if len(c.DB.Host) == 0 {
			multierr.AppendInto(&errs, fmt.Errorf("%w: DB.Host is required for the postgres store", ErrConfiguration))
		}

		if len(c.DB.Password) == 0 {
			multierr.AppendInto(&errs, fmt.Errorf("%w: DB.Password is required for the postgres store", ErrConfiguration))
		}
	case MemoryStore:
	default:
		multierr.AppendInto(&errs, fmt.Errorf("%w: unknown preference store %q", ErrConfiguration, c.Preferences.Store))
	}

	if c.Catalog.Timeout <= 0 {
		multierr.AppendInto(&errs, fmt.Errorf("%w: Catalog.Timeout must be positive", ErrConfiguration))
	}

	return errs
}
