// Package spinner provides an animated terminal spinner for long-running operations.
package spinner

import (
	"fmt"
	"os"
	"sync"
	"time"

	"tfsum/internal/ui"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// spinnerMap maps config names to spinner types
var spinnerMap = map[string]spinner.Spinner{
	"MiniDot": spinner.MiniDot,
	"Dot":     spinner.Dot,
	"Line":    spinner.Line,
	"Jump":    spinner.Jump,
	"Pulse":   spinner.Pulse,
	"Points":  spinner.Points,
	"Globe":   spinner.Globe,
	"Moon":    spinner.Moon,
	"Monkey":  spinner.Monkey,
	"Meter":   spinner.Meter,
}

// quitMsg is sent when the spinner should stop
type quitMsg struct{}

// model represents the spinner state
type model struct {
	spinner  spinner.Model
	message  string
	quitting bool
	program  *tea.Program
	wg       sync.WaitGroup
}

// Spinner provides a terminal spinner with a message.
type Spinner struct {
	model *model
}

// New creates a new bubbletea-based spinner.
func New(message string) *Spinner {
	s := spinner.New()

	if spin, ok := spinnerMap[ui.GetSpinnerType()]; ok {
		s.Spinner = spin
	} else {
		s.Spinner = spinner.MiniDot
	}
	s.Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.GetHexColorByName("highlight")))

	return &Spinner{
		model: &model{
			spinner: s,
			message: message,
		},
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.model.wg.Add(1)
	p := tea.NewProgram(s.model, tea.WithoutCatchPanics())
	s.model.program = p

	go func() {
		defer s.model.wg.Done()
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running spinner: %v\n", err)
			os.Exit(1)
		}
	}()
}

// Stop ends the spinner animation.
func (s *Spinner) Stop() {
	if s.model.program == nil {
		return
	}
	s.model.program.Send(quitMsg{})

	cleanup := make(chan struct{})
	go func() {
		s.model.wg.Wait()
		close(cleanup)
	}()

	select {
	case <-cleanup:
	case <-time.After(500 * time.Millisecond):
		fmt.Print("\r") // Clear the spinner line
	}
}
