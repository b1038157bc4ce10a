// Package prompt asks the user which language the project uses.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yacobolo/vitecn/internal/project"
)

// ErrAborted is returned when the user quits without choosing.
var ErrAborted = errors.New("language selection aborted")

const question = "Which language does your project use?"

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is a single-choice list.
type model struct {
	choices []project.Language
	cursor  int
	chosen  bool
	aborted bool
}

func newModel(choices []project.Language) model {
	return model{choices: choices}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.chosen = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m model) View() string {
	if m.chosen {
		return fmt.Sprintf("%s %s\n", questionStyle.Render(question), cursorStyle.Render(m.selected().String()))
	}
	if m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(question))
	b.WriteString("\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + choice.String()))
		} else {
			b.WriteString("  " + choice.String())
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ to move, enter to select"))
	b.WriteString("\n")
	return b.String()
}

func (m model) selected() project.Language {
	return m.choices[m.cursor]
}

// Language runs the interactive chooser on in/out.
func Language(ctx context.Context, in io.Reader, out io.Writer) (project.Language, error) {
	p := tea.NewProgram(newModel(project.Languages),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running language prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || !m.chosen {
		return "", ErrAborted
	}
	return m.selected(), nil
}
