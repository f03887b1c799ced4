package config

import (
	"time"

	"github.com/joho/godotenv"

	"slot_machine/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type DrawConfig interface {
	Symbols() model.Alphabet
	Seed() uint64
	StatsWindow() int
	MaxWaiting() int
	Messages() Messages
}

// Messages Тексты экрана
type Messages struct {
	Idle string
	Win  string
	Lose string
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type LogConfig interface {
	Level() string
	Production() bool
	Dir() string
	File() bool
}
