package banner

import (
	"strings"
	"testing"

	"github.com/zkaedii/playground-zkaedi/internal/config"
)

func newModel() Model {
	return New(config.DefaultConfig().Theme)
}

func TestSetName(t *testing.T) {
	m := newModel()

	m.SetName("Alice")
	if m.Name() != "Alice" {
		t.Errorf("expected name %q, got %q", "Alice", m.Name())
	}
}

func TestGreeting(t *testing.T) {
	m := newModel()

	m.SetName("Alice")
	if got := m.Greeting(); got != "Hello, Alice!" {
		t.Errorf("expected greeting %q, got %q", "Hello, Alice!", got)
	}
}

func TestGreetingEmptyName(t *testing.T) {
	m := newModel()

	if got := m.Greeting(); got != "Hello, !" {
		t.Errorf("expected greeting %q, got %q", "Hello, !", got)
	}
}

func TestView(t *testing.T) {
	m := newModel()
	m.SetName("World")

	view := m.View()
	if view == "" {
		t.Error("expected non-empty view")
	}
	if !strings.Contains(view, "Hello, World!") {
		t.Errorf("expected view to contain the greeting, got %q", view)
	}
}

func TestViewMultiByteName(t *testing.T) {
	m := newModel()
	m.SetName("World! 🌍")

	if !strings.Contains(m.View(), "Hello, World! 🌍!") {
		t.Error("expected view to contain the multi-byte greeting unmodified")
	}
}
