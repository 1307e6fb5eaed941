// Package console renders user-facing command output: leveled status lines,
// colored application states, and confirmation prompts. It also builds the
// process logger. Styling is applied only when writing to a terminal.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// levelWidth is the column width of the level tag on printed lines.
const levelWidth = 7

// Styles use lipgloss ANSI 256-color codes for broad terminal compatibility.
var (
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))  // blue
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")) // green
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")) // yellow
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")) // red

	runningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	stoppedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	installedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	notInstalledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Printer writes leveled lines for humans: a padded, colored level tag
// followed by the message.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter returns a Printer writing to w. Styling is enabled when w is a
// terminal; buffers and pipes get plain text.
func NewPrinter(w io.Writer) *Printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{out: w, styled: styled}
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.print(infoStyle, "info", format, args...)
}

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.print(successStyle, "success", format, args...)
}

// Warnf prints a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.print(warningStyle, "warning", format, args...)
}

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.print(errorStyle, "error", format, args...)
}

func (p *Printer) print(style lipgloss.Style, level, format string, args ...any) {
	tag := fmt.Sprintf("%-*s", levelWidth, level)
	if p.styled {
		tag = style.Render(tag)
	}
	fmt.Fprintf(p.out, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

// RenderStatus colors one of the four application states. Unknown values and
// unstyled printers pass the string through unchanged.
func (p *Printer) RenderStatus(status string) string {
	if !p.styled {
		return status
	}
	switch status {
	case "Running":
		return runningStyle.Render(status)
	case "Stopped":
		return stoppedStyle.Render(status)
	case "Installed":
		return installedStyle.Render(status)
	case "Not Installed":
		return notInstalledStyle.Render(status)
	default:
		return status
	}
}

// NewLogger builds the process logger at the given level. When stderr is a
// terminal the handler is human-readable text; when piped or redirected it
// is JSON for machine consumption.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	options := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
