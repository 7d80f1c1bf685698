package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zkaedii/playground-zkaedi/internal/config"
)

// Model represents the inline name input
type Model struct {
	input   textinput.Model
	width   int
	focused bool

	// Styles
	containerStyle lipgloss.Style
	labelStyle     lipgloss.Style
	focusedStyle   lipgloss.Style
	accent         lipgloss.Color
}

// New creates a new name input model
func New(theme config.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a name..."
	ti.Width = 40
	// No character limit: any text is a valid name
	ti.CharLimit = 0
	// Style the placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Placeholder)).
		Italic(true)
	// Style the text cursor
	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))
	// Style the prompt
	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label)).
		Bold(true)
	ti.Prompt = "> "
	// The prompt is the first thing the user interacts with
	ti.Focus()

	return Model{
		input:   ti,
		focused: true,
		containerStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)).
			Bold(true),
		focusedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		accent: lipgloss.Color(theme.Accent),
	}
}

// SetWidth updates the width
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - 6 // Account for padding/borders
}

// Focus focuses the input
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus from the input
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// IsFocused returns whether the input is focused
func (m Model) IsFocused() bool {
	return m.focused
}

// Value returns the current input value
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue sets the input value
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// Reset clears the input
func (m *Model) Reset() {
	m.input.Reset()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the labelled input field
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder

	if m.focused {
		b.WriteString(m.focusedStyle.Render("Name"))
	} else {
		b.WriteString(m.labelStyle.Render("Name"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	containerStyle := m.containerStyle
	if m.focused {
		containerStyle = containerStyle.BorderForeground(m.accent)
	}

	return containerStyle.Width(m.width - 2).Render(b.String())
}

// Height returns the height of the component
func (m Model) Height() int {
	return 4 // Label + input + border
}
