package model

import servModel "slot_machine/internal/model"

// Наблюдаемое состояние автомата
type DrawState struct {
	TotalSpins int // Сколько всего спинов сделано
	Wins       int // Сколько из них выигрышных

	// Счетчики символов по позициям
	SymbolCounts [servModel.OutcomeSize]map[servModel.Symbol]int

	SpinWindow []bool // Окно вердиктов последних спинов
	WindowWins int    // Выигрышей в окне
	WindowSize int    // Размер окна
}
