package prayer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	prayerdto "mihrab/internal/modules/prayer/dto"
	"mihrab/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Today(ctx context.Context, latitude, longitude *float64, method *int) (prayerdto.TodayOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Today prayerdto.TodayOutput
	Err   error
}

type tickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows today's timetable and counts down to the next prayer. The
// countdown runs locally; the timetable is fetched again once it elapses.
type Model struct {
	ctx     context.Context
	port    Port
	spinner spinner.Model
	today   prayerdto.TodayOutput
	nextAt  time.Time
	method  *int
	err     error
	loading bool
	now     func() time.Time
	width   int
	height  int
}

func New(ctx context.Context, port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{ctx: ctx, port: port, spinner: sp, loading: true, now: time.Now}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick, tick())
}

// Reload fetches the timetable again, e.g. after the location changed.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// SetMethod overrides the calculation method for this session and reloads.
func (m *Model) SetMethod(method int) tea.Cmd {
	m.method = &method
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.today = msg.Today
		m.nextAt = time.Time{}
		if msg.Today.Next != nil {
			if at, err := time.Parse(time.RFC3339, msg.Today.Next.At); err == nil {
				m.nextAt = at
			}
		}

	case tickMsg:
		cmds := []tea.Cmd{tick()}
		if !m.loading && !m.nextAt.IsZero() && !m.now().Before(m.nextAt) {
			cmds = append(cmds, m.Reload())
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Reload()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading && m.today.Date == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading prayer times…")
	}
	if m.err != nil && m.today.Date == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Error.Render(m.err.Error())+"\n\n"+theme.Muted.Render("set a location with :location:search or :location:detect, r to retry"))
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Prayer times") + "  " + theme.Muted.Render(m.today.Date) + "\n")
	sb.WriteString(theme.Muted.Render(m.place()) + "\n\n")
	for _, p := range m.today.Prayers {
		line := fmt.Sprintf("%-8s %s", p.Name, p.Time)
		if p.Next {
			sb.WriteString(theme.Hot.Render("› "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	if m.today.Next != nil {
		sb.WriteString("\n" + theme.Title.Render("Next: "+m.today.Next.Name) + "  " + m.countdown() + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Error.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("method %d · r refresh", m.today.Method)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Render(sb.String()))
}

func (m Model) place() string {
	coords := fmt.Sprintf("%.4f, %.4f", m.today.Latitude, m.today.Longitude)
	if m.today.City == "" {
		return coords
	}
	if m.today.Country == "" {
		return m.today.City + " · " + coords
	}
	return m.today.City + ", " + m.today.Country + " · " + coords
}

func (m Model) countdown() string {
	if m.nextAt.IsZero() {
		return m.today.Next.Remaining
	}
	left := m.nextAt.Sub(m.now())
	if left < 0 {
		left = 0
	}
	h := int(left / time.Hour)
	mm := int(left % time.Hour / time.Minute)
	s := int(left % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, mm, s)
}

func (m Model) loadCmd() tea.Cmd {
	method := m.method
	return func() tea.Msg {
		out, err := m.port.Today(m.ctx, nil, nil, method)
		return LoadedMsg{Today: out, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}
