package tasbih

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tasbihdto "mihrab/internal/modules/tasbih/dto"
	"mihrab/internal/ui/theme"
)

type Port interface {
	State(ctx context.Context) (tasbihdto.StateOutput, error)
	Increment(ctx context.Context, phrase string) (tasbihdto.IncrementOutput, error)
	ResetAll(ctx context.Context) (tasbihdto.StateOutput, error)
}

type StateMsg struct {
	State tasbihdto.StateOutput
	Err   error
}

// IncrementedMsg carries the result of one tap so the app can report it.
type IncrementedMsg struct {
	Result tasbihdto.IncrementOutput
	Err    error
}

type Model struct {
	ctx    context.Context
	port   Port
	state  tasbihdto.StateOutput
	cursor int
	bar    progress.Model
	err    error
	width  int
	height int
}

func New(ctx context.Context, port Port) Model {
	bar := progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green)), progress.WithoutPercentage())
	bar.Width = 33
	return Model{ctx: ctx, port: port, bar: bar}
}

func (m Model) Init() tea.Cmd { return m.stateCmd() }

// Increment counts phrase (name or 1-based index).
func (m Model) Increment(phrase string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Increment(m.ctx, phrase)
		return IncrementedMsg{Result: out, Err: err}
	}
}

func (m Model) Reset() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.ResetAll(m.ctx)
		return StateMsg{State: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StateMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.state = msg.State
		}

	case IncrementedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.state = msg.Result.State
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.state.Counters)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < len(m.state.Counters) {
				return m, m.Increment(m.state.Counters[m.cursor].Phrase)
			}
		case "1", "2", "3":
			return m, m.Increment(msg.String())
		case "r":
			return m, m.Reset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Tasbih") + "\n\n")
	for i, c := range m.state.Counters {
		cursor := "  "
		if i == m.cursor {
			cursor = theme.Hot.Render("› ")
		}
		count := fmt.Sprintf("%2d/%d", c.Count, c.Target)
		if c.Completed {
			count = theme.Done.Render(count + " ✓")
		}
		percent := 0.0
		if c.Target > 0 {
			percent = float64(c.Count) / float64(c.Target)
		}
		sb.WriteString(cursor + strconv.Itoa(i+1) + ". " + theme.Arabic.Render(c.Arabic) + "  " + c.Title + "\n")
		sb.WriteString("     " + theme.Muted.Render(c.Meaning) + "\n")
		sb.WriteString("     " + m.bar.ViewAs(percent) + "  " + count + "\n\n")
	}
	if m.state.AllCompleted {
		sb.WriteString(theme.Done.Render("All three completed. Press r to start again.") + "\n\n")
	}
	if m.err != nil {
		sb.WriteString(theme.Error.Render(m.err.Error()) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("↑/↓ select · enter count · 1-3 quick count · r reset"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

func (m Model) stateCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.State(m.ctx)
		return StateMsg{State: out, Err: err}
	}
}
