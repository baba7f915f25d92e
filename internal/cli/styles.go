package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles contains the lipgloss styles for terminal diagnostics
type Styles struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Path    lipgloss.Style
	Prompt  lipgloss.Style
}

// DefaultStyles returns the default diagnostic styles. Color is dropped when
// stdout is not a terminal.
func DefaultStyles() Styles {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		return Styles{Info: plain, Success: plain, Warn: plain, Error: plain, Path: plain, Prompt: plain}
	}

	return Styles{
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Path:    lipgloss.NewStyle().Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

func (a *App) infof(format string, args ...any) {
	fmt.Println(a.styles.Info.Render(fmt.Sprintf(format, args...)))
}

func (a *App) successf(format string, args ...any) {
	fmt.Println(a.styles.Success.Render(fmt.Sprintf(format, args...)))
}

func (a *App) warnf(format string, args ...any) {
	fmt.Println(a.styles.Warn.Render(fmt.Sprintf(format, args...)))
}
