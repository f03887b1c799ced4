package repository

import (
	"slot_machine/internal/model"
)

type DrawStatsRepository interface {
	Record(res model.SpinResult)
	Snapshot() model.DrawStats
}
