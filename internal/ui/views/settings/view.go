package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	locationdto "mihrab/internal/modules/location/dto"
	settingsdto "mihrab/internal/modules/settings/dto"
	"mihrab/internal/ui/theme"
)

type SettingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
}

type LocationPort interface {
	Current(ctx context.Context) (locationdto.LocationOutput, error)
	Detect(ctx context.Context) (locationdto.LocationOutput, error)
	Search(ctx context.Context, query string) ([]locationdto.LocationOutput, error)
	Select(ctx context.Context, latitude, longitude float64, city, country string) (locationdto.LocationOutput, error)
	Clear(ctx context.Context) error
}

// SettingsMsg reports loaded or updated settings. Changed is set when the
// user modified them.
type SettingsMsg struct {
	Settings settingsdto.SettingsOutput
	Changed  bool
	Err      error
}

// LocationMsg reports the current location. Changed is set when the saved
// location was replaced or cleared.
type LocationMsg struct {
	Location locationdto.LocationOutput
	Changed  bool
	Err      error
}

type SearchMsg struct {
	Query   string
	Results []locationdto.LocationOutput
	Err     error
}

type Model struct {
	ctx      context.Context
	settings SettingsPort
	location LocationPort

	current  settingsdto.SettingsOutput
	place    locationdto.LocationOutput
	hasPlace bool

	search  textinput.Model
	results []locationdto.LocationOutput
	cursor  int
	err     error
	width   int
	height  int
}

func New(ctx context.Context, settings SettingsPort, location LocationPort) Model {
	ti := textinput.New()
	ti.Placeholder = "search a city…"
	ti.CharLimit = 128
	return Model{ctx: ctx, settings: settings, location: location, search: ti}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.getCmd(), m.currentCmd())
}

// Filtering reports whether the search box owns the keyboard.
func (m Model) Filtering() bool { return m.search.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = min(m.width-10, 50)

	case SettingsMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.current = msg.Settings
		}

	case LocationMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.hasPlace = false
			return m, nil
		}
		m.err = nil
		m.place = msg.Location
		m.hasPlace = msg.Location.Source != "" || msg.Location.City != ""

	case SearchMsg:
		m.err = msg.Err
		m.results = msg.Results
		m.cursor = 0

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "esc":
				m.search.Blur()
				return m, nil
			case "enter":
				m.search.Blur()
				return m, m.Search(m.search.Value())
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "/":
			return m, m.search.Focus()
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.results) {
				r := m.results[m.cursor]
				m.results = nil
				return m, m.Select(r.Latitude, r.Longitude, r.City, r.Country)
			}
		case "d":
			return m, m.Detect()
		case "c":
			return m, m.Clear()
		case "l":
			lang := "ar"
			if m.current.Language == "ar" {
				lang = "en"
			}
			return m, m.Change(settingsdto.UpdateInput{Language: &lang})
		case "n":
			on := !m.current.NotificationsEnabled
			return m, m.Change(settingsdto.UpdateInput{NotificationsEnabled: &on})
		case "+", "=":
			method := m.current.CalculationMethod + 1
			return m, m.Change(settingsdto.UpdateInput{CalculationMethod: &method})
		case "-":
			if m.current.CalculationMethod > 0 {
				method := m.current.CalculationMethod - 1
				return m, m.Change(settingsdto.UpdateInput{CalculationMethod: &method})
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	sb.WriteString(fmt.Sprintf("language       %s\n", m.current.Language))
	sb.WriteString(fmt.Sprintf("method         %d\n", m.current.CalculationMethod))
	sb.WriteString(fmt.Sprintf("notifications  %s\n", onOff(m.current.NotificationsEnabled)))
	if m.current.AdhanSoundID != "" {
		sb.WriteString(fmt.Sprintf("adhan          %s\n", m.current.AdhanSoundID))
	}

	sb.WriteString("\n" + theme.Title.Render("Location") + "\n\n")
	if m.hasPlace {
		sb.WriteString(placeLine(m.place) + "  " + theme.Muted.Render(m.place.Source) + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("no location") + "\n")
	}
	sb.WriteString("\n" + m.search.View() + "\n")
	for i, r := range m.results {
		line := placeLine(r)
		if i == m.cursor {
			sb.WriteString(theme.Hot.Render("› "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Error.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("l language · n notifications · +/- method · / search · d detect · c clear"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

func placeLine(l locationdto.LocationOutput) string {
	name := l.City
	if l.Country != "" {
		name += ", " + l.Country
	}
	return fmt.Sprintf("%s (%.4f, %.4f)", name, l.Latitude, l.Longitude)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// ─── async commands ──────────────────────────────────────────────────────────

// Change applies a settings patch.
func (m Model) Change(input settingsdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.Update(m.ctx, input)
		return SettingsMsg{Settings: out, Changed: err == nil, Err: err}
	}
}

func (m Model) Search(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	return func() tea.Msg {
		out, err := m.location.Search(m.ctx, query)
		return SearchMsg{Query: query, Results: out, Err: err}
	}
}

func (m Model) Select(latitude, longitude float64, city, country string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.location.Select(m.ctx, latitude, longitude, city, country)
		return LocationMsg{Location: out, Changed: err == nil, Err: err}
	}
}

func (m Model) Detect() tea.Cmd {
	return func() tea.Msg {
		out, err := m.location.Detect(m.ctx)
		return LocationMsg{Location: out, Changed: err == nil, Err: err}
	}
}

func (m Model) Clear() tea.Cmd {
	return func() tea.Msg {
		if err := m.location.Clear(m.ctx); err != nil {
			return LocationMsg{Err: err}
		}
		return LocationMsg{Changed: true}
	}
}

func (m Model) getCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.Get(m.ctx)
		return SettingsMsg{Settings: out, Err: err}
	}
}

func (m Model) currentCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.location.Current(m.ctx)
		return LocationMsg{Location: out, Err: err}
	}
}
