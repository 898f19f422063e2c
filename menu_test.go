package main

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, cfg *Config, input string) string {
	t.Helper()
	c, out := newTestConsole(input)
	app := NewApp(cfg, c, rand.New(rand.NewSource(1)), discardLogger())
	app.Run()
	return out.String()
}

func TestAppExit(t *testing.T) {
	out := runApp(t, testConfig(t), "4\n")

	assert.Contains(t, out, "ТРЕНАЖЕР ФИЗИКИ")
	assert.Contains(t, out, "Формулы: 5")
	assert.Contains(t, out, "Задачи: 0")
	assert.Contains(t, out, "До свидания!")
}

func TestAppInvalidChoices(t *testing.T) {
	out := runApp(t, testConfig(t), "9\n\n1\nx\n4\n2\n0\n4\n4\n")

	assert.Equal(t, 4, strings.Count(out, "Неверный выбор!"))
	assert.Contains(t, out, "--- ФОРМУЛЫ ---")
	assert.Contains(t, out, "--- ЗАДАЧИ ---")
	assert.Contains(t, out, "До свидания!")
}

func TestAppClosedInputEndsProgram(t *testing.T) {
	out := runApp(t, testConfig(t), "1\n3\n")

	assert.Contains(t, out, "ТРЕНИРОВКА ФОРМУЛ")
	assert.NotContains(t, out, "До свидания!")
}

func TestAppFormulaFlow(t *testing.T) {
	cfg := testConfig(t)
	out := runApp(t, cfg, "1\n1\nE\nE = m * c^2 (Энергия)\n2\n4\n4\n")

	assert.Contains(t, out, "Формула E добавлена!")
	assert.Contains(t, out, "Всего формул: 6")
	assert.Contains(t, out, "E = m * c^2 (Энергия)")

	saved := NewStore[string](cfg.FormulasFile)
	require.NoError(t, saved.Load())
	assert.Equal(t, []string{"F", "p", "v", "I", "A", "E"}, saved.Keys())
}

func TestAppTaskFlow(t *testing.T) {
	cfg := testConfig(t)
	input := strings.Join([]string{
		"2",
		"1", "Тело массой 2 кг движется с ускорением 5 м/с². Найдите силу.", "10",
		"3", "10",
		"3",
		"2",
		"4", "4",
	}, "\n") + "\n"

	out := runApp(t, cfg, input)

	assert.Contains(t, out, "Задача task1 добавлена!")
	assert.Contains(t, out, "Решено правильно: 1 из 1")
	assert.Contains(t, out, "Решено правильно: 0 из 0")
	assert.Contains(t, out, "Всего задач: 1")

	saved := NewStore[Task](cfg.TasksFile)
	require.NoError(t, saved.Load())
	task, ok := saved.Get("task1")
	require.True(t, ok)
	assert.True(t, task.Solved)
}

func TestAppExport(t *testing.T) {
	cfg := testConfig(t)
	out := runApp(t, cfg, "3\n4\n")

	assert.Contains(t, out, "Конспект сохранён")
	assert.FileExists(t, filepath.Join(cfg.ExportDir, "study_sheet.md"))
	assert.FileExists(t, filepath.Join(cfg.ExportDir, "study_sheet.html"))
}
