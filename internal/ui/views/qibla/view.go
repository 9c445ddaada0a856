package qibla

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	qibladto "mihrab/internal/modules/qibla/dto"
	"mihrab/internal/ui/theme"
)

const (
	headingStep = 5.0
	radius      = 6
)

type Port interface {
	Direction(ctx context.Context, latitude, longitude, heading *float64) (qibladto.DirectionOutput, error)
}

type LoadedMsg struct {
	Direction qibladto.DirectionOutput
	Err       error
}

// Model draws the qibla on a compass ring. Without a magnetometer the device
// heading is entered by hand with ←/→ or :qibla:heading.
type Model struct {
	ctx     context.Context
	port    Port
	out     qibladto.DirectionOutput
	heading *float64
	err     error
	loaded  bool
	width   int
	height  int
}

func New(ctx context.Context, port Port) Model {
	return Model{ctx: ctx, port: port}
}

func (m Model) Init() tea.Cmd { return m.loadCmd(false) }

// Reload resolves the observer again from the current location.
func (m *Model) Reload() tea.Cmd {
	m.loaded = false
	return m.loadCmd(false)
}

// SetHeading points the top of the compass at heading degrees.
func (m *Model) SetHeading(heading float64) tea.Cmd {
	h := math.Mod(heading, 360)
	if h < 0 {
		h += 360
	}
	m.heading = &h
	return m.loadCmd(m.loaded)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.out = msg.Direction
			m.loaded = true
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			return m, m.SetHeading(m.currentHeading() - headingStep)
		case "right":
			return m, m.SetHeading(m.currentHeading() + headingStep)
		case "n":
			m.heading = nil
			return m, m.loadCmd(m.loaded)
		case "r":
			return m, m.Reload()
		}
	}
	return m, nil
}

func (m Model) currentHeading() float64 {
	if m.heading == nil {
		return 0
	}
	return *m.heading
}

func (m Model) View() string {
	if !m.loaded {
		body := "Locating…"
		if m.err != nil {
			body = theme.Error.Render(m.err.Error()) + "\n\n" +
				theme.Muted.Render("set a location with :location:search or :location:detect, r to retry")
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.out.AtKaaba {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("You are at the Kaaba"))
	}

	// The ring is drawn relative to the heading so the arrow shows where to turn.
	angle := m.out.Bearing
	if m.out.Relative != nil {
		angle = *m.out.Relative
	}

	var info strings.Builder
	info.WriteString(theme.Title.Render("Qibla") + "\n\n")
	info.WriteString(fmt.Sprintf("bearing  %6.1f° %s\n", m.out.Bearing, m.out.Compass))
	if m.heading != nil {
		info.WriteString(fmt.Sprintf("heading  %6.1f°\n", *m.heading))
	}
	if m.out.Relative != nil {
		info.WriteString(fmt.Sprintf("turn     %6.1f°\n", *m.out.Relative))
	}
	info.WriteString("\n" + theme.Muted.Render(m.place()) + "\n")
	if m.err != nil {
		info.WriteString("\n" + theme.Error.Render(m.err.Error()) + "\n")
	}
	info.WriteString("\n" + theme.Muted.Render("←/→ heading · n north-up · r refresh"))

	body := lipgloss.JoinHorizontal(lipgloss.Center, Ring(angle, m.heading != nil), "    ", info.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(body))
}

func (m Model) place() string {
	coords := fmt.Sprintf("%.4f, %.4f", m.out.Latitude, m.out.Longitude)
	if m.out.City == "" {
		return coords
	}
	return m.out.City + " · " + coords
}

// Ring renders a compass ring with the qibla marker at angle degrees
// clockwise from the top. Cells are twice as tall as wide, so x is doubled.
func Ring(angle float64, headingUp bool) string {
	w, h := 4*radius+1, 2*radius+1
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}
	cx, cy := 2*radius, radius
	put := func(deg float64, r rune) {
		rad := deg * math.Pi / 180
		x := cx + int(math.Round(2*radius*math.Sin(rad)))
		y := cy - int(math.Round(radius*math.Cos(rad)))
		grid[y][x] = r
	}
	for deg := 0.0; deg < 360; deg += 15 {
		put(deg, '·')
	}
	if !headingUp {
		put(0, 'N')
		put(90, 'E')
		put(180, 'S')
		put(270, 'W')
	} else {
		put(0, '▲')
	}
	for r := 1; r < radius; r++ {
		rad := angle * math.Pi / 180
		x := cx + int(math.Round(2*float64(r)*math.Sin(rad)))
		y := cy - int(math.Round(float64(r)*math.Cos(rad)))
		grid[y][x] = '•'
	}
	put(angle, '◆')
	grid[cy][cx] = '+'

	lines := make([]string, h)
	for y, row := range grid {
		lines[y] = string(row)
	}
	ring := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Foreground(theme.Lavender).Render(ring)
}

func (m Model) loadCmd(pinned bool) tea.Cmd {
	var lat, lon *float64
	if pinned {
		la, lo := m.out.Latitude, m.out.Longitude
		lat, lon = &la, &lo
	}
	heading := m.heading
	return func() tea.Msg {
		out, err := m.port.Direction(m.ctx, lat, lon, heading)
		if err == nil && pinned {
			out.City, out.Country = m.out.City, m.out.Country
		}
		return LoadedMsg{Direction: out, Err: err}
	}
}
