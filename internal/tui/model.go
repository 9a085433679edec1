// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ybert/teaty/internal/render"
	"github.com/ybert/teaty/internal/session"
)

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AA9E6")).Bold(true)
	matchedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CCB6B"))
	mismatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	wpmStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// Model implements the Bubble Tea typing UI around one Session.
type Model struct {
	session *session.Session
	keys    keyMap
	help    help.Model

	width  int
	height int
}

// NewModel constructs a typing TUI model.
func NewModel(s *session.Session) *Model {
	return &Model{session: s, keys: defaultKeyMap(), help: help.New()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Exactly one event is applied per call,
// followed by exactly one session tick; there is no background timer,
// elapsed time is re-read from the clock on each tick.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		action, r := dispatchKey(m.keys, msg)
		switch action {
		case ActionQuit:
			cmd = tea.Quit
		case ActionReset:
			m.session.Reset()
		case ActionType:
			m.session.ApplyChar(r)
		}
	}
	m.session.Tick()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	frame := render.Project(m.session)
	cells := styledCells(frame.Chars)

	title := titleStyle.Render(frame.Title)
	wpm := wpmStyle.Render(fmt.Sprintf("WPM: %d", frame.WPM))
	footer := m.help.View(m.keys)

	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{title, "", renderCells(cells), "", wpm}, "\n")
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapCells(cells, contentWidth)
	text := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	content := strings.Join([]string{title, "", text, "", wpm}, "\n")
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}
