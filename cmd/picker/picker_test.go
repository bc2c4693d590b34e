package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(model)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationMovesAndClampsCursor(t *testing.T) {
	m := newModel("pick one", []string{"a", "b", "c"})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("Cursor must not move above the first item, got %d", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, key("j"))
	if m.cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("Cursor must not move past the last item, got %d", m.cursor)
	}

	m = press(t, m, key("k"))
	if m.cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", m.cursor)
	}

	m = press(t, m, key("G"))
	if m.cursor != 2 {
		t.Errorf("G must jump to the last item, got %d", m.cursor)
	}
	m = press(t, m, key("g"))
	if m.cursor != 0 {
		t.Errorf("g must jump to the first item, got %d", m.cursor)
	}
}

func TestEnterConfirmsSelection(t *testing.T) {
	m := newModel("pick one", []string{"a", "b", "c"})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.chosen {
		t.Error("Enter must confirm the highlighted item")
	}
	if m.cancelled {
		t.Error("Confirming must not mark the model cancelled")
	}
	if m.cursor != 1 {
		t.Errorf("Expected confirmed index 1, got %d", m.cursor)
	}
}

func TestQuitCancels(t *testing.T) {
	for _, msg := range []tea.Msg{key("q"), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC}} {
		m := newModel("pick one", []string{"a", "b"})
		m = press(t, m, msg)

		if !m.cancelled {
			t.Errorf("%v must cancel the selection", msg)
		}
		if m.chosen {
			t.Errorf("%v must not confirm anything", msg)
		}
	}
}

func TestEmptyListOnlyResolvesByCancellation(t *testing.T) {
	m := newModel("pick one", nil)

	// Confirming with nothing to confirm is a no-op
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.chosen {
		t.Error("Enter on an empty list must not confirm")
	}

	m = press(t, m, key("q"))
	if !m.cancelled {
		t.Error("q must still cancel on an empty list")
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	items := make([]string, 50)
	for i := range items {
		items[i] = "item"
	}
	m := newModel("pick one", items)
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

	for i := 0; i < 20; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	if m.cursor < m.viewportOffset || m.cursor >= m.viewportOffset+m.viewportHeight {
		t.Errorf("Cursor %d fell outside viewport [%d, %d)",
			m.cursor, m.viewportOffset, m.viewportOffset+m.viewportHeight)
	}
}

func TestViewRendersTitleAndItems(t *testing.T) {
	m := newModel("Select the ads folder", []string{"ads", "rock"})

	view := m.View()
	for _, want := range []string{"Select the ads folder", "ads", "rock"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmptyState(t *testing.T) {
	m := newModel("Select the ad file", nil)

	view := m.View()
	if !strings.Contains(view, "Nothing to select") {
		t.Errorf("Empty view missing empty-state line:\n%s", view)
	}
}
