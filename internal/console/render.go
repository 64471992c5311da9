package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/garyellow/sgpa-go/internal/catalog"
	domerrors "github.com/garyellow/sgpa-go/internal/errors"
	"github.com/garyellow/sgpa-go/internal/grade"
	"github.com/garyellow/sgpa-go/internal/sgpa"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

var ansiByColor = map[string]string{
	sgpa.ColorGreen:  ansiGreen,
	sgpa.ColorBlue:   ansiBlue,
	sgpa.ColorYellow: ansiYellow,
	sgpa.ColorRed:    ansiRed,
}

// renderer formats console output. Color enables ANSI escapes.
type renderer struct {
	color bool
}

func (r renderer) paint(code, s string) string {
	if !r.color || code == "" {
		return s
	}
	return code + s + ansiReset
}

func creditLabel(credits int) string {
	if credits == 0 {
		return "P/F"
	}
	return fmt.Sprintf("%dcr", credits)
}

func (r renderer) departments(depts []catalog.Department, selected string) []string {
	lines := []string{"Departments:"}
	for _, d := range depts {
		marker := " "
		if d.ID == selected {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf(" %s %-6s %s", marker, d.ID, d.Name))
	}
	return append(lines, "Select one with: dept <id>")
}

func (r renderer) semesters(dept catalog.Department, infos []catalog.SemesterInfo, selected int) []string {
	lines := []string{fmt.Sprintf("Semesters of %s:", dept.Name)}
	for _, s := range infos {
		marker := " "
		if s.Number == selected {
			marker = "*"
		}
		detail := "coming soon"
		if s.Status == catalog.Available {
			detail = fmt.Sprintf("%d courses, %d credits", s.Courses, s.Credits)
		}
		lines = append(lines, fmt.Sprintf(" %s Semester %d  %s", marker, s.Number, detail))
	}
	return append(lines, "Select one with: sem <n>")
}

func (r renderer) courses(dept catalog.Department, semester int, courses []catalog.Course, grades map[string]grade.Symbol) []string {
	width := 0
	for _, c := range courses {
		width = max(width, len(c.Name))
	}

	lines := []string{fmt.Sprintf("%s, semester %d (%d credits):", dept.Name, semester, catalog.TotalCredits(courses))}
	for i, c := range courses {
		symbol := "-"
		if s, ok := grades[c.Name]; ok {
			symbol = s.String()
		}
		lines = append(lines, fmt.Sprintf(" %2d. %-*s  %4s  %s", i+1, width, c.Name, creditLabel(c.Credits), symbol))
	}
	return lines
}

func (r renderer) gradeTable() []string {
	lines := []string{"Grade points:"}
	for _, e := range grade.Table() {
		lines = append(lines, fmt.Sprintf("  %-3s %4.1f", e.Symbol, e.Points))
	}
	return lines
}

func (r renderer) result(res sgpa.Result) []string {
	ansi := ansiByColor[res.Band.Color]
	lines := []string{
		"Your SGPA Result",
		"  SGPA: " + r.paint(ansiBold+ansi, fmt.Sprintf("%.2f", res.Value)),
		fmt.Sprintf("  Grade: %s (%s)", r.paint(ansi, res.Band.Label), res.Band.ColorName),
		fmt.Sprintf("  Total Credits: %d", res.TotalCredits),
		"Grade Summary:",
	}

	width := 0
	for _, l := range res.Lines {
		width = max(width, len(l.Course))
	}
	for _, l := range res.Lines {
		symbol := "-"
		if l.Symbol != "" {
			symbol = l.Symbol.String()
		}
		lines = append(lines, fmt.Sprintf("  %-*s  %-2s  %s", width, l.Course, symbol, creditLabel(l.Credits)))
	}
	return lines
}

// errorLines renders an error for the user. Wrapped errors carry their own
// message; incomplete grades list the courses still missing.
func (r renderer) errorLines(err error) []string {
	var lines []string
	switch {
	case errors.Is(err, ErrUnknownCommand):
		lines = []string{capitalize(err.Error()) + ". Type help for a list of commands."}
	case errors.Is(err, errPanic):
		lines = []string{"Something went wrong. The error has been logged."}
	default:
		lines = []string{userMessage(err)}
	}

	var incomplete *domerrors.IncompleteError
	if errors.As(err, &incomplete) {
		for _, name := range incomplete.Missing {
			lines = append(lines, "  - "+name)
		}
	}

	for i := range lines {
		lines[i] = r.paint(ansiRed, lines[i])
	}
	return lines
}

func userMessage(err error) string {
	var wrapped *domerrors.WrappedError
	if errors.As(err, &wrapped) {
		return capitalize(wrapped.UserMessage)
	}
	var ve *domerrors.ValidationError
	if errors.As(err, &ve) {
		return capitalize(ve.Message)
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
