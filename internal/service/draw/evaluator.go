package draw

import (
	"errors"
	"math/rand/v2"
	"time"

	"slot_machine/internal/model"
)

// ErrEmptyAlphabet алфавит без символов; из него нельзя тянуть
var ErrEmptyAlphabet = errors.New("alphabet must not be empty")

// Source Источник случайных чисел. IntN возвращает число из [0, n)
type Source interface {
	IntN(n int) int
}

// NewSource создает PCG-источник с заданным сидом.
// Сид 0 означает "взять сид из текущего времени"
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Evaluator тянет исходы из фиксированного алфавита.
// Не безопасен для конкурентного использования: вызывается только из одного воркера
type Evaluator struct {
	alphabet model.Alphabet
	src      Source
}

// NewEvaluator Создать вычислитель исходов.
// Алфавит копируется, дальнейшие изменения среза снаружи на него не влияют
func NewEvaluator(alphabet model.Alphabet, src Source) (*Evaluator, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if src == nil {
		return nil, errors.New("random source is required")
	}

	a := make(model.Alphabet, len(alphabet))
	copy(a, alphabet)

	return &Evaluator{
		alphabet: a,
		src:      src,
	}, nil
}

// Alphabet возвращает копию алфавита
func (e *Evaluator) Alphabet() model.Alphabet {
	a := make(model.Alphabet, len(e.alphabet))
	copy(a, e.alphabet)
	return a
}

// Spin тянет три символа независимо и равновероятно, с возвращением
func (e *Evaluator) Spin() model.Outcome {
	var o model.Outcome
	for i := range o {
		o[i] = e.alphabet[e.src.IntN(len(e.alphabet))]
	}
	return o
}

// IsWinningCombination true, если все три символа совпадают
func IsWinningCombination(o model.Outcome) bool {
	return o[0] == o[1] && o[1] == o[2]
}
