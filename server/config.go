package server

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr   string `envconfig:"TOKENSERVER_ADDR" default:"localhost:8080"`
	Secret string `envconfig:"TOKENSERVER_SECRET" required:"true"`
	// TOKEN_TTL is the lifetime of tokens issued with -issue
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
