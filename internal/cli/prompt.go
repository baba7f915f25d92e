package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// errPromptAborted is returned when the user cancels interactive setup.
var errPromptAborted = errors.New("setup aborted")

// validateProjectPath checks a user-supplied project path: it must be
// non-empty and its parent directory must exist and be writable. The path
// itself may not exist yet; start creates it.
func validateProjectPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path must not be empty")
	}

	parent := filepath.Dir(filepath.Clean(path))
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("parent directory %s does not exist", parent)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", parent)
	}

	probe, err := os.CreateTemp(parent, ".kalibox-*")
	if err != nil {
		return fmt.Errorf("parent directory %s is not writable", parent)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

// promptProjectDir runs first-use setup when the project directory does not
// exist yet: offer the defaults, or accept a custom project path. Returns
// the project directory to use.
func (a *App) promptProjectDir(defaultProject, defaultData string) (string, error) {
	a.infof("Project directory %s does not exist yet.", a.styles.Path.Render(defaultProject))
	a.infof("Default paths:")
	a.infof("  project files:   %s", a.styles.Path.Render(defaultProject))
	a.infof("  persistent data: %s", a.styles.Path.Render(defaultData))

	useDefaults, err := a.confirm("Use the default paths? [Y/n]: ")
	if err != nil {
		return "", err
	}
	if useDefaults {
		return defaultProject, nil
	}

	return a.promptCustomPath()
}

// confirm reads a yes/no answer from the shared stdin reader. Empty input
// means yes.
func (a *App) confirm(question string) (bool, error) {
	fmt.Print(a.styles.Prompt.Render(question))

	line, err := a.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes", nil
}

// promptCustomPath reads and validates a custom project path, re-prompting
// until a valid one is supplied. Uses a bubbletea text input on a terminal
// and a plain line reader otherwise.
func (a *App) promptCustomPath() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return a.promptCustomPathTUI()
	}
	return a.promptCustomPathPlain()
}

func (a *App) promptCustomPathTUI() (string, error) {
	model, err := tea.NewProgram(newPathPromptModel(a.styles)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result := model.(pathPromptModel)
	if result.aborted {
		return "", errPromptAborted
	}
	return result.value, nil
}

func (a *App) promptCustomPathPlain() (string, error) {
	for {
		fmt.Print(a.styles.Prompt.Render("Project directory: "))

		line, err := a.stdin.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return "", errPromptAborted
		}

		path := strings.TrimSpace(line)
		if verr := validateProjectPath(path); verr != nil {
			a.warnf("%v", verr)
			continue
		}
		return filepath.Clean(path), nil
	}
}

// pathPromptModel is the bubbletea model for interactive path entry.
type pathPromptModel struct {
	input   textinput.Model
	styles  Styles
	errMsg  string
	value   string
	aborted bool
}

func newPathPromptModel(styles Styles) pathPromptModel {
	ti := textinput.New()
	ti.Placeholder = "/path/to/kali_sandbox"
	ti.Focus()
	return pathPromptModel{input: ti, styles: styles}
}

func (m pathPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pathPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			path := strings.TrimSpace(m.input.Value())
			if err := validateProjectPath(path); err != nil {
				m.errMsg = err.Error()
				m.input.SetValue("")
				return m, nil
			}
			m.value = filepath.Clean(path)
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathPromptModel) View() string {
	s := m.styles.Prompt.Render("Project directory: ") + m.input.View() + "\n"
	if m.errMsg != "" {
		s += m.styles.Error.Render(m.errMsg) + "\n"
	}
	return s
}
