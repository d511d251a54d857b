package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lexcodex/spirvconf/configure"
	"github.com/lexcodex/spirvconf/framework"
)

var (
	colorSuccess = lipgloss.Color("42")
	colorError   = lipgloss.Color("196")
	colorDim     = lipgloss.Color("241")
)

// consoleStyles binds styles to one writer so plain writers get plain text.
type consoleStyles struct {
	errorLabel lipgloss.Style
	success    lipgloss.Style
	dim        lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		errorLabel: r.NewStyle().Bold(true).Foreground(colorError),
		success:    r.NewStyle().Bold(true).Foreground(colorSuccess),
		dim:        r.NewStyle().Foreground(colorDim),
	}
}

func printError(w io.Writer, err error) {
	s := newConsoleStyles(w)
	fmt.Fprintf(w, "%s %v\n", s.errorLabel.Render("error:"), err)
}

func printSummary(w io.Writer, req configure.InvocationRequest, result framework.ProcessResult) {
	s := newConsoleStyles(w)
	fmt.Fprintf(w, "%s %s %s\n",
		s.success.Render("configured"),
		req.BuildDir,
		s.dim.Render(fmt.Sprintf("(%s, %d lines, %s)", req.Profile, result.Lines, result.Duration.Round(time.Millisecond))),
	)
}
