package dhikr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	dhikrdto "mihrab/internal/modules/dhikr/dto"
	"mihrab/internal/ui/theme"
)

type Port interface {
	State(ctx context.Context) (dhikrdto.StateOutput, error)
	SwitchTab(ctx context.Context, tab string) (dhikrdto.StateOutput, error)
	Next(ctx context.Context) (dhikrdto.StateOutput, error)
	Previous(ctx context.Context) (dhikrdto.StateOutput, error)
	Advance(ctx context.Context) (dhikrdto.StateOutput, error)
	ResetAll(ctx context.Context) (dhikrdto.StateOutput, error)
}

type StateMsg struct {
	State dhikrdto.StateOutput
	Err   error
}

// Model walks through the morning or evening adhkar one item at a time. The
// item text is rendered as markdown.
type Model struct {
	ctx      context.Context
	port     Port
	state    dhikrdto.StateOutput
	viewport viewport.Model
	bar      progress.Model
	renderer *glamour.TermRenderer
	err      error
	width    int
	height   int
}

func New(ctx context.Context, port Port) Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(72),
	)
	bar := progress.New(progress.WithSolidFill(string(theme.Teal)))
	return Model{
		ctx:      ctx,
		port:     port,
		viewport: viewport.New(0, 0),
		bar:      bar,
		renderer: r,
	}
}

func (m Model) Init() tea.Cmd {
	return m.call(m.port.State)
}

func (m Model) SwitchTab(tab string) tea.Cmd {
	return m.call(func(ctx context.Context) (dhikrdto.StateOutput, error) {
		return m.port.SwitchTab(ctx, tab)
	})
}

func (m Model) Reset() tea.Cmd { return m.call(m.port.ResetAll) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = min(m.width-4, 80)
		m.viewport.Height = max(m.height-8, 3)
		m.bar.Width = min(m.width-4, 60)
		m.viewport.SetContent(m.renderItem())

	case StateMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.state = msg.State
			m.viewport.SetContent(m.renderItem())
			m.viewport.GotoTop()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			if !m.canAdvance() {
				return m, nil
			}
			return m, m.call(m.port.Advance)
		case "right", "l":
			return m, m.call(m.port.Next)
		case "left", "h":
			return m, m.call(m.port.Previous)
		case "m":
			return m, m.SwitchTab("morning")
		case "e":
			return m, m.SwitchTab("evening")
		case "r":
			return m, m.Reset()
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderTabs()
	counter := ""
	if m.state.Total > 0 {
		cur := m.state.Current
		status := fmt.Sprintf("%d / %d", m.state.Position, m.state.Total)
		if cur.Completed {
			status += "  " + theme.Done.Render("completed")
		} else {
			status += "  " + theme.Hot.Render(fmt.Sprintf("repetition %d of %d", m.state.Repetition, m.state.Required))
		}
		counter = status + "\n" + m.bar.ViewAs(m.listPercent())
	}
	keys := "enter count · ←/→ move · m/e morning/evening · r reset"
	if !m.canAdvance() {
		keys = "←/→ move · m/e morning/evening · r reset"
	}
	footer := theme.Muted.Render(keys)
	if m.err != nil {
		footer = theme.Error.Render(m.err.Error()) + "\n" + footer
	}
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), counter, "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

// canAdvance is false on a completed item, which the usecase would reject.
func (m Model) canAdvance() bool {
	return m.state.Total > 0 && !m.state.Current.Completed
}

func (m Model) renderTabs() string {
	label := func(name string, s dhikrdto.ListSummary) string {
		text := fmt.Sprintf(" %s %d/%d ", strings.ToUpper(name[:1])+name[1:], s.Completed, s.Total)
		if m.state.ActiveTab == name {
			return theme.Hot.Render(text)
		}
		return theme.Muted.Render(text)
	}
	return label("morning", m.state.Morning) + theme.Muted.Render("│") + label("evening", m.state.Evening)
}

func (m Model) listPercent() float64 {
	s := m.state.Morning
	if m.state.ActiveTab == "evening" {
		s = m.state.Evening
	}
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

func (m Model) renderItem() string {
	if m.state.Total == 0 {
		return theme.Muted.Render("nothing to recite")
	}
	md := ItemMarkdown(m.state.Current)
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// ItemMarkdown lays out one item: Arabic as a heading, then the
// transliteration in italics and the translation.
func ItemMarkdown(item dhikrdto.ItemOutput) string {
	var sb strings.Builder
	sb.WriteString("## " + item.Arabic + "\n\n")
	if t := strings.TrimSpace(item.Transliteration); t != "" {
		sb.WriteString("*" + t + "*\n\n")
	}
	sb.WriteString(item.Translation + "\n")
	if item.Repetitions > 1 {
		sb.WriteString(fmt.Sprintf("\n> Recite %d times\n", item.Repetitions))
	}
	return sb.String()
}

func (m Model) call(fn func(ctx context.Context) (dhikrdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn(m.ctx)
		return StateMsg{State: out, Err: err}
	}
}
