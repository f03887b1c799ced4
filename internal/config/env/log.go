package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"slot_machine/internal/config"
)

const (
	logModeDev  = "dev"
	logModeProd = "prod"
)

type logConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"LOG_MODE" envDefault:"dev"`
	LogDir   string `env:"LOG_DIR" envDefault:"."`
	ToFile   bool   `env:"LOG_FILE" envDefault:"false"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}
	if cfg.Mode != logModeDev && cfg.Mode != logModeProd {
		return nil, fmt.Errorf("invalid log mode %q", cfg.Mode)
	}

	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Production() bool {
	return cfg.Mode == logModeProd
}

func (cfg *logConfig) Dir() string {
	return cfg.LogDir
}

func (cfg *logConfig) File() bool {
	return cfg.ToFile
}
