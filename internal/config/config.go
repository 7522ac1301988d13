package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	FixturesPath string `yaml:"fixtures_path" env:"FIXTURES_PATH"`
	HTTPServer   `yaml:"http_server"`
	GraphQL      GraphQL `yaml:"graphql"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"0.0.0.0:5000" validate:"required,hostname_port"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

type GraphQL struct {
	Path string `yaml:"path" env:"GRAPHQL_PATH" env-default:"/graphql" validate:"required,startswith=/"`
}

// GraphiQLEnabled reports whether the interactive explorer is served.
func (c *Config) GraphiQLEnabled() bool {
	return c.Env != EnvProd
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load reads .env when present, then the YAML file named by CONFIG_PATH, or
// the environment alone when CONFIG_PATH is unset.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: read .env: %w", op, err)
	}

	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("%s: config file %q: %w", op, configPath, err)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}

	return &cfg, nil
}
