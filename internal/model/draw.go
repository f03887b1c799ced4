package model

import "strings"

// Symbol Символ на позиции барабана
type Symbol string

// Символы эталонного алфавита
const (
	Cherry Symbol = "🍒"
	Bell   Symbol = "🔔"
	Lemon  Symbol = "🍋"
	Star   Symbol = "⭐"
	Gem    Symbol = "💎"
)

// OutcomeSize Количество позиций в одном исходе
const OutcomeSize = 3

// displaySeparator разделитель символов при выводе на экран
const displaySeparator = " | "

// Alphabet Упорядоченный набор символов, из которого тянется каждая позиция
type Alphabet []Symbol

// DefaultAlphabet возвращает эталонный алфавит из пяти символов
func DefaultAlphabet() Alphabet {
	return Alphabet{Cherry, Bell, Lemon, Star, Gem}
}

// Contains проверяет, входит ли символ в алфавит
func (a Alphabet) Contains(s Symbol) bool {
	for _, sym := range a {
		if sym == s {
			return true
		}
	}
	return false
}

// Outcome Результат одного спина: ровно три символа
type Outcome [OutcomeSize]Symbol

// Display склеивает символы для вывода на экран
func (o Outcome) Display() string {
	parts := make([]string, len(o))
	for i, s := range o {
		parts[i] = string(s)
	}
	return strings.Join(parts, displaySeparator)
}

// SpinResult Исход спина вместе с вердиктом
type SpinResult struct {
	Outcome Outcome
	Win     bool
}

// Screen То, что отображает экран: текст, сообщение и цвет
type Screen struct {
	Text    string
	Message string
	Color   string
}

// DrawStats Снимок наблюдаемой статистики спинов
type DrawStats struct {
	TotalSpins    int
	Wins          int
	WinRate       float64
	WindowSize    int
	WindowSpins   int
	WindowWinRate float64

	// SymbolCounts[позиция][символ] - сколько раз символ выпал на позиции
	SymbolCounts [OutcomeSize]map[Symbol]int
}
