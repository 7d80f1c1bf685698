package types

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func makeKeyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	t.Run("Submit matches enter", func(t *testing.T) {
		if !key.Matches(makeKeyMsg("enter"), km.Submit) {
			t.Error("Submit should match enter")
		}
	})

	t.Run("Again matches a", func(t *testing.T) {
		if !key.Matches(makeKeyMsg("a"), km.Again) {
			t.Error("Again should match a")
		}
	})

	t.Run("Quit matches q and ctrl+c", func(t *testing.T) {
		if !key.Matches(makeKeyMsg("q"), km.Quit) {
			t.Error("Quit should match q")
		}
		if !key.Matches(makeKeyMsg("ctrl+c"), km.Quit) {
			t.Error("Quit should match ctrl+c")
		}
	})

	t.Run("Escape matches esc", func(t *testing.T) {
		if !key.Matches(makeKeyMsg("esc"), km.Escape) {
			t.Error("Escape should match esc")
		}
	})

	t.Run("Quit does not match plain letters", func(t *testing.T) {
		if key.Matches(makeKeyMsg("x"), km.Quit) {
			t.Error("Quit should not match x")
		}
	})
}
