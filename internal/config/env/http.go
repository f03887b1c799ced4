package env

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"

	"slot_machine/internal/config"
)

type httpConfig struct {
	Host     string        `env:"HTTP_HOST" envDefault:"localhost"`
	Port     string        `env:"HTTP_PORT" envDefault:"8080"`
	Shutdown time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse http config: %w", err)
	}
	if len(cfg.Port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.Shutdown
}
