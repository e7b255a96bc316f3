package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080" validate:"min=1,max=65535"`
	AppEnv           string `env:"APP_ENV" envDefault:"dev" validate:"oneof=dev prod"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"ratecalc" validate:"required"`
}

// LoadConfig reads the given env files, ".env" when none is given, and then
// parses the process environment. Missing files are skipped and variables
// already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	configs, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(configs); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return configs, nil
}
