package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const menuWidth = 50

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	rule    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Width(menuWidth).
			Align(lipgloss.Center),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("57")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("240")),
		success: r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		border:  r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Console is the line-oriented terminal the menus and trainers talk through.
// Styles come from a renderer bound to out, so pipes and tests get plain text.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	width  int
	styles styles
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		width:  screenWidth(out),
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Prompt prints label and reads one trimmed line. io.EOF is returned once the
// input is exhausted.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		// last line without a trailing newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Section prints a "=== NAME ===" heading preceded by a blank line.
func (c *Console) Section(name string) {
	c.Println()
	c.Println(c.styles.section.Render("=== " + name + " ==="))
}

func (c *Console) Rule() {
	c.Println(c.styles.rule.Render(strings.Repeat("=", menuWidth)))
}

func (c *Console) Title(s string) {
	c.Println(c.styles.title.Render(s))
}

func (c *Console) Success(format string, a ...any) {
	c.Println(c.styles.success.Render(fmt.Sprintf(format, a...)))
}

func (c *Console) Failure(format string, a ...any) {
	c.Println(c.styles.failure.Render(fmt.Sprintf(format, a...)))
}

func (c *Console) Muted(format string, a ...any) {
	c.Println(c.styles.muted.Render(fmt.Sprintf(format, a...)))
}

// Table prints rows under headers with a rounded border.
func (c *Console) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(c.styles.border).
		Headers(headers...).
		Rows(rows...)
	c.Println(t.String())
}

// Wrap breaks s to fit a share of the terminal. Unknown widths leave s alone.
func (c *Console) Wrap(s string, share float64) string {
	return strings.TrimRight(WrapStringDynamic(s, c.width, share), "\n")
}

// ScoreBar draws the correct/attempted ratio of a finished session.
func (c *Console) ScoreBar(s Score) {
	if s.Attempted == 0 {
		return
	}
	bar := progress.New(
		progress.WithSolidFill("#04B575"),
		progress.WithWidth(menuWidth/2),
		progress.WithoutPercentage(),
	)
	c.Println(bar.ViewAs(s.Ratio()))
}
