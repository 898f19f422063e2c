package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/russross/blackfriday/v2"
)

const studySheetName = "study_sheet"

// ToMarkdown lists the formulas as a Markdown section.
func (t *FormulaTrainer) ToMarkdown() string {
	var sb strings.Builder
	sb.WriteString("## Формулы\n\n")
	for _, symbol := range t.store.Keys() {
		formula, _ := t.store.Get(symbol)
		sb.WriteString(fmt.Sprintf("- **%s**: `%s`\n", symbol, formula))
	}
	return sb.String()
}

// ToMarkdown lists the tasks as a Markdown section, one heading per task.
func (t *TaskTrainer) ToMarkdown() string {
	var sb strings.Builder
	sb.WriteString("## Задачи\n\n")
	for _, id := range t.store.Keys() {
		task, _ := t.store.Get(id)
		sb.WriteString(fmt.Sprintf("### %s\n- **Условие:** %s\n- **Ответ:** %s\n- **Статус:** %s\n\n",
			id, task.Task, task.Answer, task.Status()))
	}
	return sb.String()
}

// StudySheet joins both collections into one Markdown document.
func StudySheet(f *FormulaTrainer, t *TaskTrainer) string {
	var sb strings.Builder
	sb.WriteString("# Конспект по физике\n\n")
	sb.WriteString(f.ToMarkdown())
	sb.WriteString("\n")
	sb.WriteString(t.ToMarkdown())
	return sb.String()
}

// RenderMarkdownToHTML converts Markdown content to HTML using Blackfriday
func RenderMarkdownToHTML(markdownContent string) string {
	htmlContent := blackfriday.Run([]byte(markdownContent))
	return string(htmlContent)
}

// WriteStudySheet writes the sheet as Markdown and HTML into dir and returns
// both paths.
func WriteStudySheet(dir string, f *FormulaTrainer, t *TaskTrainer) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("create %s: %w", dir, err)
	}

	markdownData := StudySheet(f, t)
	mdPath := filepath.Join(dir, studySheetName+".md")
	if err := os.WriteFile(mdPath, []byte(markdownData), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", mdPath, err)
	}

	page := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Конспект по физике</title></head>\n<body>\n%s</body>\n</html>\n",
		RenderMarkdownToHTML(markdownData))
	htmlPath := filepath.Join(dir, studySheetName+".html")
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", htmlPath, err)
	}

	return mdPath, htmlPath, nil
}
