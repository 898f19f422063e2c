package main

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	exitKeyword = "выход"
	confirmWord = "да"
)

// Score counts graded answers of one quiz or solve session.
type Score struct {
	Correct   int
	Attempted int
}

func (s Score) Ratio() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

func (s *Score) record(correct bool) {
	s.Attempted++
	if correct {
		s.Correct++
	}
}

// fold returns the caseless form of s used for every answer comparison.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func isExit(answer string) bool {
	return fold(answer) == exitKeyword
}

func isConfirmed(reply string) bool {
	return fold(reply) == confirmWord
}

// containsFold reports whether answer occurs anywhere in text, ignoring case.
func containsFold(text, answer string) bool {
	return strings.Contains(cases.Fold().String(text), fold(answer))
}

// equalFold reports whether answer and expected match exactly, ignoring case
// and surrounding whitespace.
func equalFold(expected, answer string) bool {
	return fold(expected) == fold(answer)
}
