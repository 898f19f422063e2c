package main

import (
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
)

var (
	ErrEmptySymbol      = errors.New("formula symbol cannot be empty")
	ErrEmptyExplanation = errors.New("formula explanation cannot be empty")
)

// defaultFormulas are seeded into every formula store that lacks them.
var defaultFormulas = []struct {
	Symbol  string
	Formula string
}{
	{"F", "F = m * a (Сила)"},
	{"p", "p = m * v (Импульс)"},
	{"v", "v = s / t (Скорость)"},
	{"I", "I = U / R (Сила тока)"},
	{"A", "A = F * s (Работа)"},
}

// FormulaTrainer keeps symbol -> explanation pairs and quizzes on them.
type FormulaTrainer struct {
	store   *Store[string]
	console *Console
	rng     *rand.Rand
	log     *slog.Logger
}

// NewFormulaTrainer loads the formulas at path and seeds the defaults.
func NewFormulaTrainer(path string, c *Console, rng *rand.Rand, log *slog.Logger) *FormulaTrainer {
	t := &FormulaTrainer{
		store:   NewStore[string](path),
		console: c,
		rng:     rng,
		log:     log,
	}
	if err := t.store.Load(); err != nil {
		t.console.Failure("Ошибка загрузки: %v", err)
		t.log.Warn("failed to load formulas", "path", path, "error", err)
	}
	t.seedDefaults()
	return t
}

func (t *FormulaTrainer) seedDefaults() {
	added := 0
	for _, f := range defaultFormulas {
		if !t.store.Has(f.Symbol) {
			t.store.Put(f.Symbol, f.Formula)
			added++
		}
	}
	t.log.Debug("seeded default formulas", "path", t.store.Path(), "added", added)
	t.save()
}

func (t *FormulaTrainer) save() bool {
	if err := t.store.Save(); err != nil {
		t.console.Failure("Ошибка сохранения: %v", err)
		t.log.Error("failed to save formulas", "path", t.store.Path(), "error", err)
		return false
	}
	return true
}

func (t *FormulaTrainer) Len() int { return t.store.Len() }

func (t *FormulaTrainer) Get(symbol string) (string, bool) { return t.store.Get(symbol) }

// Put stores a formula without asking anything. Callers persist it.
func (t *FormulaTrainer) Put(symbol, formula string) error {
	if symbol == "" {
		return ErrEmptySymbol
	}
	if formula == "" {
		return ErrEmptyExplanation
	}
	t.store.Put(symbol, formula)
	return nil
}

// CheckAnswer reports whether answer is part of the explanation of symbol.
func (t *FormulaTrainer) CheckAnswer(symbol, answer string) bool {
	formula, ok := t.store.Get(symbol)
	if !ok {
		return false
	}
	return containsFold(formula, answer)
}

// Add asks for a new formula. An existing symbol is only replaced after an
// explicit confirmation.
func (t *FormulaTrainer) Add() {
	c := t.console
	c.Section("ДОБАВЛЕНИЕ ФОРМУЛЫ")

	symbol, err := c.Prompt("Введите символ формулы (например F): ")
	if err != nil {
		return
	}
	if symbol == "" {
		c.Failure("Символ не может быть пустым!")
		return
	}

	if current, ok := t.store.Get(symbol); ok {
		c.Printf("Формула %s уже есть: %s\n", symbol, current)
		reply, err := c.Prompt("Заменить? (да/нет): ")
		if err != nil || !isConfirmed(reply) {
			return
		}
	}

	formula, err := c.Prompt("Введите формулу с пояснением: ")
	if err != nil {
		return
	}
	if err := t.Put(symbol, formula); err != nil {
		c.Failure("Формула не может быть пустой!")
		return
	}

	if t.save() {
		c.Success("Формула %s добавлена!", symbol)
		t.log.Info("formula added", "symbol", symbol)
	}
}

// List prints all formulas in the order they were added.
func (t *FormulaTrainer) List() {
	c := t.console
	c.Section("ВСЕ ФОРМУЛЫ")

	if t.store.Len() == 0 {
		c.Println("Формул нет!")
		return
	}

	c.Printf("Всего формул: %d\n", t.store.Len())
	rows := make([][]string, 0, t.store.Len())
	for i, symbol := range t.store.Keys() {
		formula, _ := t.store.Get(symbol)
		rows = append(rows, []string{strconv.Itoa(i + 1), symbol, c.Wrap(formula, 0.6)})
	}
	c.Table([]string{"#", "Символ", "Формула"}, rows)
}

// Quiz shows random symbols until the user types the exit keyword. Symbols
// are drawn with replacement.
func (t *FormulaTrainer) Quiz() Score {
	c := t.console
	var score Score

	if t.store.Len() == 0 {
		c.Failure("Нет формул для тренировки!")
		return score
	}

	c.Section("ТРЕНИРОВКА ФОРМУЛ")
	c.Muted("Угадайте формулу по символу. Для выхода введите '%s'", exitKeyword)

	symbols := t.store.Keys()
	for {
		symbol := symbols[t.rng.Intn(len(symbols))]

		c.Printf("\nСимвол: %s\n", symbol)
		answer, err := c.Prompt("Ваш ответ: ")
		if err != nil || isExit(answer) {
			break
		}

		correct := t.CheckAnswer(symbol, answer)
		score.record(correct)
		if correct {
			c.Success("Правильно! ✓")
		} else {
			formula, _ := t.store.Get(symbol)
			c.Failure("Неправильно! Правильный ответ: %s", formula)
		}
	}

	c.Printf("\nТренировка окончена! Правильно: %d из %d\n", score.Correct, score.Attempted)
	c.ScoreBar(score)
	t.log.Debug("formula quiz finished", "correct", score.Correct, "attempted", score.Attempted)
	return score
}
