package main

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var wordPattern = regexp.MustCompile(`(\S+ +)|\S+`)

// screenWidth returns the terminal width behind w, or 0 when w is not a terminal.
func screenWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		slog.Debug("error getting screen dimensions", "error", err)
		return 0
	}
	return width
}

// WrapString breaks input into lines no wider than maxWidth cells.
func WrapString(input string, maxWidth int) string {
	if maxWidth < 1 {
		return input
	}

	var result strings.Builder
	lines := strings.Split(input, "\n")

	for _, line := range lines {
		if len(line) == 0 {
			result.WriteString("\n")
			continue
		}

		words := wordPattern.FindAllString(line, -1)
		currentLineLength := 0

		for _, word := range words {
			word = strings.TrimRight(word, " ")
			wordLength := lipgloss.Width(word)
			spaceNeeded := wordLength
			if currentLineLength > 0 {
				spaceNeeded++ // account for a space before the word
			}

			if currentLineLength > 0 && currentLineLength+spaceNeeded > maxWidth {
				result.WriteString("\n")
				currentLineLength = 0
			} else if currentLineLength > 0 {
				result.WriteString(" ")
				currentLineLength++
			}

			result.WriteString(word)
			currentLineLength += wordLength
		}
		result.WriteString("\n")
	}

	return result.String()
}

// WrapStringDynamic wraps to a share of the screen width.
func WrapStringDynamic(input string, width int, scaleFactor float64) string {
	dynamicWidth := int(scaleFactor * float64(width))
	return WrapString(input, dynamicWidth)
}
