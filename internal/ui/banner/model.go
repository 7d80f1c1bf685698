package banner

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zkaedii/playground-zkaedi/internal/config"
	"github.com/zkaedii/playground-zkaedi/pkg/greeting"
)

// Model renders a greeting as a styled card
type Model struct {
	name  string
	width int

	// Styles
	cardStyle lipgloss.Style
	textStyle lipgloss.Style
}

// New creates a new banner model
func New(theme config.Theme) Model {
	return Model{
		cardStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 2),
		textStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Greeting)).
			Bold(true),
	}
}

// SetName sets the name to greet
func (m *Model) SetName(name string) {
	m.name = name
}

// Name returns the current name
func (m Model) Name() string {
	return m.name
}

// SetWidth updates the width
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Greeting returns the unstyled greeting text
func (m Model) Greeting() string {
	return greeting.Greet(m.name)
}

// View renders the greeting card
func (m Model) View() string {
	text := m.textStyle.Render(m.Greeting())

	cardStyle := m.cardStyle
	if m.width > 0 {
		cardStyle = cardStyle.Width(m.width - 2)
	}

	return cardStyle.Render(text)
}
