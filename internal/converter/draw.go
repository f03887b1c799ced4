package converter

import (
	"slot_machine/internal/api/dto/draw"
	"slot_machine/internal/config"
	"slot_machine/internal/model"
)

// Цвета экрана
const (
	ColorIdle = "dodgerblue"
	ColorWin  = "green"
	ColorLose = "red"
)

func ToIdleScreen(msgs config.Messages) model.Screen {
	return model.Screen{
		Text:  msgs.Idle,
		Color: ColorIdle,
	}
}

func ToSpinScreen(res model.SpinResult, msgs config.Messages) model.Screen {
	screen := model.Screen{
		Text:    res.Outcome.Display(),
		Message: msgs.Lose,
		Color:   ColorLose,
	}
	if res.Win {
		screen.Message = msgs.Win
		screen.Color = ColorWin
	}
	return screen
}

func ToScreenResponse(screen model.Screen) draw.ScreenResponse {
	return draw.ScreenResponse{
		Text:  screen.Text,
		Color: screen.Color,
	}
}

func ToSpinResponse(res model.SpinResult, msgs config.Messages) draw.SpinResponse {
	screen := ToSpinScreen(res, msgs)
	return draw.SpinResponse{
		Symbols: toStrings(res.Outcome[:]),
		Display: screen.Text,
		Win:     res.Win,
		Message: screen.Message,
		Color:   screen.Color,
	}
}

func ToSymbolsResponse(alphabet model.Alphabet) draw.SymbolsResponse {
	return draw.SymbolsResponse{
		Symbols: toStrings(alphabet),
	}
}

func ToStatsResponse(stats model.DrawStats) draw.StatsResponse {
	positions := make([]map[string]int, len(stats.SymbolCounts))
	for i, counts := range stats.SymbolCounts {
		positions[i] = make(map[string]int, len(counts))
		for sym, c := range counts {
			positions[i][string(sym)] = c
		}
	}

	return draw.StatsResponse{
		TotalSpins:    stats.TotalSpins,
		Wins:          stats.Wins,
		WinRate:       stats.WinRate,
		WindowSize:    stats.WindowSize,
		WindowSpins:   stats.WindowSpins,
		WindowWinRate: stats.WindowWinRate,
		Positions:     positions,
	}
}

func toStrings(symbols []model.Symbol) []string {
	result := make([]string, len(symbols))
	for i, s := range symbols {
		result[i] = string(s)
	}
	return result
}
