package service

import (
	"context"

	"slot_machine/internal/model"
)

type DrawService interface {
	Spin(ctx context.Context) (*model.SpinResult, error)
	Symbols() model.Alphabet
	Stats() model.DrawStats
}
