package main

import (
	"log/slog"
	"math/rand"
)

// App is the top-level menu over the formula and task trainers.
type App struct {
	console   *Console
	formulas  *FormulaTrainer
	tasks     *TaskTrainer
	exportDir string
	log       *slog.Logger
}

func NewApp(cfg *Config, c *Console, rng *rand.Rand, log *slog.Logger) *App {
	return &App{
		console:   c,
		formulas:  NewFormulaTrainer(cfg.FormulasFile, c, rng, log),
		tasks:     NewTaskTrainer(cfg.TasksFile, c, log),
		exportDir: cfg.ExportDir,
		log:       log,
	}
}

// Run shows the main menu until the user picks exit or the input ends.
func (a *App) Run() {
	c := a.console
	for {
		c.Println()
		c.Rule()
		c.Title("ТРЕНАЖЕР ФИЗИКИ")
		c.Rule()
		c.Printf("Формулы: %d\n", a.formulas.Len())
		c.Printf("Задачи: %d\n", a.tasks.Len())
		c.Println()
		c.Println("1. Формулы")
		c.Println("2. Задачи")
		c.Println("3. Экспорт конспекта")
		c.Println("4. Выход")
		c.Rule()

		choice, err := c.Prompt("Выберите (1-4): ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			if !a.formulaMenu() {
				return
			}
		case "2":
			if !a.taskMenu() {
				return
			}
		case "3":
			a.export()
		case "4":
			c.Println("До свидания!")
			return
		default:
			c.Failure("Неверный выбор!")
		}
	}
}

// formulaMenu returns false once the input is exhausted.
func (a *App) formulaMenu() bool {
	c := a.console
	for {
		c.Println()
		c.Println(c.styles.section.Render("--- ФОРМУЛЫ ---"))
		c.Println("1. Добавить формулу")
		c.Println("2. Показать все формулы")
		c.Println("3. Тренироваться")
		c.Println("4. Назад")

		choice, err := c.Prompt("Выберите (1-4): ")
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			a.formulas.Add()
		case "2":
			a.formulas.List()
		case "3":
			a.formulas.Quiz()
		case "4":
			return true
		default:
			c.Failure("Неверный выбор!")
		}
	}
}

// taskMenu returns false once the input is exhausted.
func (a *App) taskMenu() bool {
	c := a.console
	for {
		c.Println()
		c.Println(c.styles.section.Render("--- ЗАДАЧИ ---"))
		c.Println("1. Добавить задачу")
		c.Println("2. Показать все задачи")
		c.Println("3. Решать задачи")
		c.Println("4. Назад")

		choice, err := c.Prompt("Выберите (1-4): ")
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			a.tasks.Add()
		case "2":
			a.tasks.List()
		case "3":
			a.tasks.Solve()
		case "4":
			return true
		default:
			c.Failure("Неверный выбор!")
		}
	}
}

func (a *App) export() {
	c := a.console
	mdPath, htmlPath, err := WriteStudySheet(a.exportDir, a.formulas, a.tasks)
	if err != nil {
		c.Failure("Ошибка экспорта: %v", err)
		a.log.Error("failed to export study sheet", "dir", a.exportDir, "error", err)
		return
	}
	c.Success("Конспект сохранён: %s, %s", mdPath, htmlPath)
	a.log.Info("study sheet exported", "markdown", mdPath, "html", htmlPath)
}
