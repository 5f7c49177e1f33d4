package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	session *session
	input   textinput.Model
	lastErr string
	over    bool
}

func newInteractiveModel(s *session) *interactiveModel {
	input := textinput.New()
	input.Placeholder = "move"
	input.CharLimit = 16
	input.Width = 16
	input.Focus()

	return &interactiveModel{session: s, input: input}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "q":
			if m.over || m.input.Value() == "" {
				return m, tea.Quit
			}

		case "enter":
			if m.over {
				return m, tea.Quit
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if text == "" {
				return m, nil
			}
			if err := m.session.apply(text); err != nil {
				m.lastErr = err.Error()
				return m, nil
			}
			m.lastErr = ""
			if _, ok := m.session.mover(); !ok {
				m.over = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)",
		m.session.table.GameName, m.session.table.VariantName)))
	b.WriteString("\n\n")

	board, err := m.session.render()
	if err != nil {
		board = err.Error()
	}
	b.WriteString(boardStyle.Render(board))
	b.WriteString("\n")

	if m.over {
		for _, w := range m.session.winners() {
			b.WriteString(winnerStyle.Render(fmt.Sprintf("Winner: player %d", w)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter/q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	if p, ok := m.session.mover(); ok {
		b.WriteString(fmt.Sprintf("Player %d to move: %s\n", p,
			moveStyle.Render(strings.Join(m.session.legalMoves(p), ", "))))
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.lastErr != "" {
		b.WriteString(errorStyle.Render(m.lastErr))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: play move • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(opts, state string) error {
	s, err := newSession(opts, state)
	if err != nil {
		return err
	}
	defer s.close()

	_, err = tea.NewProgram(newInteractiveModel(s)).Run()
	return err
}
