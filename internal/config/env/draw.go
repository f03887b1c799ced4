package env

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slot_machine/internal/config"
	"slot_machine/internal/model"
)

// Тексты экрана по умолчанию
const (
	defaultIdleMessage = "Presiona 'Girar' para jugar"
	defaultWinMessage  = "¡Ganaste!"
	defaultLoseMessage = "Intenta de nuevo"

	defaultStatsWindow = 500
)

var ErrEmptySymbols = errors.New("draw symbols must not be empty")

type drawYAML struct {
	Draw struct {
		Symbols     *[]string `yaml:"symbols"`
		Seed        uint64    `yaml:"seed"`
		StatsWindow int       `yaml:"stats_window"`
		MaxWaiting  int       `yaml:"max_waiting"`
		Messages    struct {
			Idle string `yaml:"idle"`
			Win  string `yaml:"win"`
			Lose string `yaml:"lose"`
		} `yaml:"messages"`
	} `yaml:"draw"`
}

type drawConfig struct {
	symbols     model.Alphabet
	seed        uint64
	statsWindow int
	maxWaiting  int
	messages    config.Messages
}

// NewDrawConfigFromYAML читает секцию draw из yaml-файла.
// Если файла нет, используется эталонный алфавит
func NewDrawConfigFromYAML(path string) (config.DrawConfig, error) {
	var raw drawYAML

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read draw config: %w", err)
	default:
		if err = yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse draw config: %w", err)
		}
	}

	return newDrawConfig(raw)
}

func newDrawConfig(raw drawYAML) (*drawConfig, error) {
	cfg := &drawConfig{
		symbols:     model.DefaultAlphabet(),
		seed:        raw.Draw.Seed,
		statsWindow: raw.Draw.StatsWindow,
		maxWaiting:  raw.Draw.MaxWaiting,
		messages: config.Messages{
			Idle: orDefault(raw.Draw.Messages.Idle, defaultIdleMessage),
			Win:  orDefault(raw.Draw.Messages.Win, defaultWinMessage),
			Lose: orDefault(raw.Draw.Messages.Lose, defaultLoseMessage),
		},
	}
	if cfg.statsWindow <= 0 {
		cfg.statsWindow = defaultStatsWindow
	}
	if cfg.maxWaiting < 0 {
		return nil, fmt.Errorf("max_waiting must not be negative: %d", cfg.maxWaiting)
	}

	if raw.Draw.Symbols != nil {
		symbols := *raw.Draw.Symbols
		if len(symbols) == 0 {
			return nil, ErrEmptySymbols
		}

		alphabet := make(model.Alphabet, 0, len(symbols))
		for _, s := range symbols {
			sym := model.Symbol(s)
			if sym == "" {
				return nil, errors.New("draw symbol must not be blank")
			}
			if alphabet.Contains(sym) {
				return nil, fmt.Errorf("duplicate draw symbol %q", s)
			}
			alphabet = append(alphabet, sym)
		}
		cfg.symbols = alphabet
	}

	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (cfg *drawConfig) Symbols() model.Alphabet {
	return cfg.symbols
}

func (cfg *drawConfig) Seed() uint64 {
	return cfg.seed
}

func (cfg *drawConfig) StatsWindow() int {
	return cfg.statsWindow
}

func (cfg *drawConfig) MaxWaiting() int {
	return cfg.maxWaiting
}

func (cfg *drawConfig) Messages() config.Messages {
	return cfg.messages
}
