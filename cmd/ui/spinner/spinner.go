// Package spinner shows a progress spinner while a blocking task runs.
package spinner

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type doneMsg struct{ err error }

type model struct {
	spinner spinner.Model
	message string
	err     error
}

func newModel(message string) model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6"))
	return model{spinner: s, message: message}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Run displays the spinner with message until work returns, then reports
// work's error.
func Run(message string, work func() error) error {
	p := tea.NewProgram(newModel(message))

	go func() {
		p.Send(doneMsg{err: work()})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	return final.(model).err
}
