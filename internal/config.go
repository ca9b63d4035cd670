package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	BackendURL     string        `env:"BACKEND_URL,default=http://localhost:8080" validate:"required,url"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,default=.complexapp"`
	InMemory       bool          `env:"IN_MEMORY,default=false"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s" validate:"gt=0"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Colours        bool          `env:"COLOURS,default=true"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if !config.InMemory && config.BadgerFilepath == "" {
		return Config{}, fmt.Errorf("config error: BADGER_FILEPATH is required unless IN_MEMORY is set")
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}
