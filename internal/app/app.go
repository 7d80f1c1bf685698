package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zkaedii/playground-zkaedi/internal/config"
	"github.com/zkaedii/playground-zkaedi/internal/types"
	"github.com/zkaedii/playground-zkaedi/internal/ui/banner"
	"github.com/zkaedii/playground-zkaedi/internal/ui/prompt"
)

type state int

const (
	stateEntering state = iota
	stateGreeted
)

// Model is the root application model
type Model struct {
	// Components
	prompt prompt.Model
	banner banner.Model

	// State
	state  state
	keyMap types.KeyMap

	// Layout
	width  int
	height int

	// Styles
	titleStyle lipgloss.Style
	helpStyle  lipgloss.Style
}

// New creates a new application model
func New(cfg config.Config) Model {
	return Model{
		prompt: prompt.New(cfg.Theme),
		banner: banner.New(cfg.Theme),
		state:  stateEntering,
		keyMap: types.DefaultKeyMap(),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Theme.Label)),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.Theme.Placeholder)),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.prompt.Init()
}

func (m Model) submitName() tea.Cmd {
	name := m.prompt.Value()
	return func() tea.Msg {
		return types.NameSubmittedMsg{Name: name}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(msg.Width)
		m.banner.SetWidth(msg.Width)
		return m, nil

	case types.NameSubmittedMsg:
		m.banner.SetName(msg.Name)
		m.prompt.Blur()
		m.state = stateGreeted
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateEntering:
			switch {
			case key.Matches(msg, m.keyMap.Submit):
				return m, m.submitName()
			case key.Matches(msg, m.keyMap.Escape):
				return m, tea.Quit
			}
			// All other keys, including q, belong to the input
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.prompt, cmd = m.prompt.Update(msg)
			return m, cmd

		case stateGreeted:
			switch {
			case key.Matches(msg, m.keyMap.Again):
				m.prompt.Reset()
				m.state = stateEntering
				return m, m.prompt.Focus()
			case key.Matches(msg, m.keyMap.Quit), key.Matches(msg, m.keyMap.Escape):
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	title := m.titleStyle.Render("greet")

	var body, help string
	switch m.state {
	case stateEntering:
		body = m.prompt.View()
		help = m.helpStyle.Render("enter greet • esc quit")
	case stateGreeted:
		body = m.banner.View()
		help = m.helpStyle.Render("a greet another • q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}
