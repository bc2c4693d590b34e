package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model is the single-choice list selector. It has exactly three terminal
// outcomes: a confirmed index, cancellation, or a program error.
type model struct {
	title string
	items []string

	cursor         int
	viewportOffset int
	viewportHeight int
	width          int

	chosen    bool
	cancelled bool
}

func newModel(title string, items []string) model {
	return model{
		title:          title,
		items:          items,
		viewportHeight: 20, // Adjusted on the first WindowSizeMsg
	}
}

func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m = m.ensureCursorVisible()
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m = m.ensureCursorVisible()
			}
		case "pgup", "ctrl+b":
			m.cursor = max(m.cursor-m.viewportHeight, 0)
			m = m.ensureCursorVisible()
		case "pgdown", "ctrl+f":
			m.cursor = min(m.cursor+m.viewportHeight, len(m.items)-1)
			m.cursor = max(m.cursor, 0)
			m = m.ensureCursorVisible()
		case "home", "g":
			m.cursor = 0
			m = m.ensureCursorVisible()
		case "end", "G":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
			m = m.ensureCursorVisible()
		case "enter":
			// With nothing to choose from, confirm is a no-op; only q exits
			if len(m.items) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewportHeight = max(msg.Height-6, 3)
		m = m.ensureCursorVisible()
	}

	return m, nil
}

func (m model) ensureCursorVisible() model {
	if m.cursor < m.viewportOffset {
		m.viewportOffset = m.cursor
	}
	if m.cursor >= m.viewportOffset+m.viewportHeight {
		m.viewportOffset = m.cursor - m.viewportHeight + 1
	}
	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("  Nothing to select here\n\n")
		b.WriteString(helpStyle.Render("  q quit"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.viewportOffset+m.viewportHeight, len(m.items))
	for i := m.viewportOffset; i < end; i++ {
		line := "    " + m.items[i]
		if i == m.cursor {
			line = selectedStyle.Render("  > " + m.items[i])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.items) > m.viewportHeight {
		b.WriteString(helpStyle.Render(fmt.Sprintf("\n  [%d/%d]", m.cursor+1, len(m.items))))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  ↑/↓ navigate • enter select • q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run displays items as a full-screen list and blocks until the operator
// confirms one or cancels. It returns the index of the confirmed item and
// whether a choice was made; (_, false, nil) means the operator cancelled.
// The terminal is fully restored before Run returns, so callers may invoke
// it again immediately.
func Run(title string, items []string) (int, bool, error) {
	p := tea.NewProgram(newModel(title, items), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	fm := finalModel.(model)
	if fm.cancelled || !fm.chosen {
		return 0, false, nil
	}
	return fm.cursor, true, nil
}
