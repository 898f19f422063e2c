package main

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrEmptyTask   = errors.New("task text cannot be empty")
	ErrEmptyAnswer = errors.New("task answer cannot be empty")
	ErrUnknownTask = errors.New("unknown task")
)

// Task is a practice problem with its expected answer.
type Task struct {
	Task   string `json:"task"`
	Answer string `json:"answer"`
	Solved bool   `json:"solved"`
}

func (t Task) Status() string {
	if t.Solved {
		return "решена"
	}
	return "не решена"
}

// TaskTrainer keeps tasks under sequential ids and runs solve sessions.
type TaskTrainer struct {
	store   *Store[Task]
	console *Console
	log     *slog.Logger
}

func NewTaskTrainer(path string, c *Console, log *slog.Logger) *TaskTrainer {
	t := &TaskTrainer{
		store:   NewStore[Task](path),
		console: c,
		log:     log,
	}
	if err := t.store.Load(); err != nil {
		t.console.Failure("Ошибка загрузки: %v", err)
		t.log.Warn("failed to load tasks", "path", path, "error", err)
	}
	return t
}

func (t *TaskTrainer) save() bool {
	if err := t.store.Save(); err != nil {
		t.console.Failure("Ошибка сохранения: %v", err)
		t.log.Error("failed to save tasks", "path", t.store.Path(), "error", err)
		return false
	}
	return true
}

func (t *TaskTrainer) Len() int { return t.store.Len() }

func (t *TaskTrainer) Get(id string) (Task, bool) { return t.store.Get(id) }

// NextID is the id the next added task receives.
func (t *TaskTrainer) NextID() string {
	return fmt.Sprintf("task%d", t.store.Len()+1)
}

// Put stores a new unsolved task and returns its id. Callers persist it.
func (t *TaskTrainer) Put(text, answer string) (string, error) {
	if text == "" {
		return "", ErrEmptyTask
	}
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	id := t.NextID()
	t.store.Put(id, Task{Task: text, Answer: answer})
	return id, nil
}

// CheckAnswer compares answer with the expected one and marks the task solved
// on a match.
func (t *TaskTrainer) CheckAnswer(id, answer string) (bool, error) {
	task, ok := t.store.Get(id)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownTask, id)
	}
	if !equalFold(task.Answer, answer) {
		return false, nil
	}
	task.Solved = true
	t.store.Put(id, task)
	return true, nil
}

// Add asks for a problem and its answer.
func (t *TaskTrainer) Add() {
	c := t.console
	c.Section("ДОБАВЛЕНИЕ ЗАДАЧИ")

	text, err := c.Prompt("Введите условие задачи: ")
	if err != nil {
		return
	}
	if text == "" {
		c.Failure("Условие не может быть пустым!")
		return
	}

	answer, err := c.Prompt("Введите ответ: ")
	if err != nil {
		return
	}

	id, err := t.Put(text, answer)
	if err != nil {
		c.Failure("Ответ не может быть пустым!")
		return
	}

	if t.save() {
		c.Success("Задача %s добавлена!", id)
		t.log.Info("task added", "id", id)
	}
}

// List prints every task with its status.
func (t *TaskTrainer) List() {
	c := t.console
	c.Section("ВСЕ ЗАДАЧИ")

	if t.store.Len() == 0 {
		c.Println("Задач нет!")
		return
	}

	c.Printf("Всего задач: %d\n", t.store.Len())
	rows := make([][]string, 0, t.store.Len())
	for _, id := range t.store.Keys() {
		task, _ := t.store.Get(id)
		status := task.Status()
		if task.Solved {
			status = c.styles.success.Render(status)
		}
		rows = append(rows, []string{id, c.Wrap(task.Task, 0.6), status})
	}
	c.Table([]string{"ID", "Условие", "Статус"}, rows)
}

// Solve walks the unsolved tasks in order. The exit keyword stops the whole
// session; the store is saved once at the end either way.
func (t *TaskTrainer) Solve() Score {
	c := t.console
	var score Score

	if t.store.Len() == 0 {
		c.Failure("Нет задач для решения!")
		return score
	}

	c.Section("РЕШЕНИЕ ЗАДАЧ")
	c.Muted("Решайте задачи. Для выхода введите '%s'", exitKeyword)

	for _, id := range t.store.Keys() {
		task, _ := t.store.Get(id)
		if task.Solved {
			continue
		}

		c.Printf("\nЗадача: %s\n", task.Task)
		answer, err := c.Prompt("Ваш ответ: ")
		if err != nil || isExit(answer) {
			break
		}

		correct, err := t.CheckAnswer(id, answer)
		if err != nil {
			t.log.Error("failed to check answer", "id", id, "error", err)
			continue
		}
		score.record(correct)
		if correct {
			c.Success("Правильно! ✓")
		} else {
			c.Failure("Неправильно! Правильный ответ: %s", task.Answer)
		}
	}

	t.save()
	c.Printf("\nРешено правильно: %d из %d\n", score.Correct, score.Attempted)
	c.ScoreBar(score)
	t.log.Debug("solve session finished", "correct", score.Correct, "attempted", score.Attempted)
	return score
}
