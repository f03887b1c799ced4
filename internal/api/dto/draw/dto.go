package draw

type ScreenResponse struct {
	Text  string `json:"text"`  // Текст на экране
	Color string `json:"color"` // Цвет текста
}

type SpinResponse struct {
	Symbols []string `json:"symbols"` // Три символа
	Display string   `json:"display"` // Символы через " | "
	Win     bool     `json:"win"`     // Все три совпали
	Message string   `json:"message"` // Выигрыш или "попробуй еще"
	Color   string   `json:"color"`   // green / red
}

type SymbolsResponse struct {
	Symbols []string `json:"symbols"` // Алфавит по порядку
}

type StatsResponse struct {
	TotalSpins    int              `json:"total_spins"`
	Wins          int              `json:"wins"`
	WinRate       float64          `json:"win_rate"`
	WindowSize    int              `json:"window_size"`
	WindowSpins   int              `json:"window_spins"`
	WindowWinRate float64          `json:"window_win_rate"`
	Positions     []map[string]int `json:"positions"` // Выпадения символов по позициям
}
