package main

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsole(strings.NewReader(input), out), out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		FormulasFile: filepath.Join(dir, "formulas.json"),
		TasksFile:    filepath.Join(dir, "tasks.json"),
		ExportDir:    filepath.Join(dir, "export"),
		LogLevel:     "warn",
	}
}

// newBareFormulaTrainer skips loading and seeding so tests control the contents.
func newBareFormulaTrainer(t *testing.T, input string) (*FormulaTrainer, *bytes.Buffer) {
	t.Helper()
	c, out := newTestConsole(input)
	return &FormulaTrainer{
		store:   NewStore[string](filepath.Join(t.TempDir(), "formulas.json")),
		console: c,
		rng:     rand.New(rand.NewSource(1)),
		log:     discardLogger(),
	}, out
}

func newTestTaskTrainer(t *testing.T, input string) (*TaskTrainer, *bytes.Buffer) {
	t.Helper()
	c, out := newTestConsole(input)
	return NewTaskTrainer(filepath.Join(t.TempDir(), "tasks.json"), c, discardLogger()), out
}
