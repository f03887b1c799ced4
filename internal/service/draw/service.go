package draw

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"slot_machine/internal/metrics"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/internal/worker"
)

type serv struct {
	evaluator *Evaluator
	queue     *worker.Queue
	statsRepo repository.DrawStatsRepository
	metrics   *metrics.Metrics
	log       *zap.Logger
}

// NewDrawService Создать автомат 3 символа.
// metrics может быть nil
func NewDrawService(
	evaluator *Evaluator,
	queue *worker.Queue,
	statsRepo repository.DrawStatsRepository,
	m *metrics.Metrics,
	log *zap.Logger,
) service.DrawService {
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		evaluator: evaluator,
		queue:     queue,
		statsRepo: statsRepo,
		metrics:   m,
		log:       log,
	}
}

// Spin выполняет спин на воркере и возвращает исход с вердиктом
func (s *serv) Spin(ctx context.Context) (*model.SpinResult, error) {
	start := time.Now()

	var res model.SpinResult
	err := s.queue.Do(ctx, func() {
		o := s.evaluator.Spin()
		res = model.SpinResult{
			Outcome: o,
			Win:     IsWinningCombination(o),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("spin: %w", err)
	}

	took := time.Since(start)

	// Обновляем статистику
	s.statsRepo.Record(res)
	if s.metrics != nil {
		s.metrics.ObserveSpin(res, took)
	}

	s.log.Debug("spin",
		zap.String("outcome", res.Outcome.Display()),
		zap.Bool("win", res.Win),
		zap.Duration("took", took),
	)

	return &res, nil
}

// Symbols возвращает алфавит автомата
func (s *serv) Symbols() model.Alphabet {
	return s.evaluator.Alphabet()
}

// Stats возвращает снимок статистики
func (s *serv) Stats() model.DrawStats {
	return s.statsRepo.Snapshot()
}
