// internal/tui/progress.go
// Package: tui
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressMsg reports completed requests for the active condition.
type ProgressMsg struct {
	Done  int
	Total int
}

// ConditionMsg announces the condition now being measured, e.g. "baseline".
type ConditionMsg struct {
	Name string
}

// DoneMsg ends the program once the whole batch has finished.
type DoneMsg struct{}

var conditionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

// Model renders a spinner plus a progress bar while benchmark batches run.
// The caller drives it with ConditionMsg/ProgressMsg via tea.Program.Send.
type Model struct {
	spinner   spinner.Model
	bar       progress.Model
	condition string
	done      int
	total     int
	finished  bool
}

// NewModel builds the progress model.
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient()),
	}
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles progress, condition and termination messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConditionMsg:
		m.condition = msg.Name
		m.done, m.total = 0, 0
		return m, nil

	case ProgressMsg:
		m.done, m.total = msg.Done, msg.Total
		return m, nil

	case DoneMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current condition, bar and counter.
func (m Model) View() string {
	if m.finished {
		return ""
	}
	if m.condition == "" {
		return fmt.Sprintf("%s preparing benchmark...\n", m.spinner.View())
	}

	var pct float64
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s measuring %s\n%s %d/%d requests\n",
		m.spinner.View(),
		conditionStyle.Render(m.condition),
		m.bar.ViewAs(pct),
		m.done, m.total)
}
