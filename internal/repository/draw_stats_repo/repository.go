package draw_stats_repo

import (
	"sync"

	servModel "slot_machine/internal/model"
	repoModel "slot_machine/internal/repository/draw_stats_repo/model"
)

// defaultWindowSize размер окна, если передан неположительный
const defaultWindowSize = 500

// Репозиторий статистики спинов в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.DrawState
}

// NewDrawStatsRepository Конструктор репозитория с пустым состоянием
func NewDrawStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}

	var counts [servModel.OutcomeSize]map[servModel.Symbol]int
	for i := range counts {
		counts[i] = make(map[servModel.Symbol]int)
	}

	return &StatsRepo{
		state: repoModel.DrawState{
			SymbolCounts: counts,
			SpinWindow:   make([]bool, 0, windowSize),
			WindowSize:   windowSize,
		},
	}
}

// Record Обновление статистики после спина
func (r *StatsRepo) Record(res servModel.SpinResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	if res.Win {
		r.state.Wins++
	}
	for pos, sym := range res.Outcome {
		r.state.SymbolCounts[pos][sym]++
	}

	// Добавляем вердикт в окно и поддерживаем его размер
	r.state.SpinWindow = append(r.state.SpinWindow, res.Win)
	if res.Win {
		r.state.WindowWins++
	}
	if len(r.state.SpinWindow) > r.state.WindowSize {
		if r.state.SpinWindow[0] {
			r.state.WindowWins--
		}
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}
}

// Snapshot Копия текущей статистики
func (r *StatsRepo) Snapshot() servModel.DrawStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := servModel.DrawStats{
		TotalSpins:  r.state.TotalSpins,
		Wins:        r.state.Wins,
		WindowSize:  r.state.WindowSize,
		WindowSpins: len(r.state.SpinWindow),
	}
	if r.state.TotalSpins > 0 {
		stats.WinRate = float64(r.state.Wins) / float64(r.state.TotalSpins)
	}
	if n := len(r.state.SpinWindow); n > 0 {
		stats.WindowWinRate = float64(r.state.WindowWins) / float64(n)
	}
	for pos, counts := range r.state.SymbolCounts {
		stats.SymbolCounts[pos] = make(map[servModel.Symbol]int, len(counts))
		for sym, c := range counts {
			stats.SymbolCounts[pos][sym] = c
		}
	}

	return stats
}
