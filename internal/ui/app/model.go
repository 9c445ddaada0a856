package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	locationdto "mihrab/internal/modules/location/dto"
	settingsdto "mihrab/internal/modules/settings/dto"
	"mihrab/internal/ui/components"
	"mihrab/internal/ui/theme"
	dhikrview "mihrab/internal/ui/views/dhikr"
	prayerview "mihrab/internal/ui/views/prayer"
	qiblaview "mihrab/internal/ui/views/qibla"
	quranview "mihrab/internal/ui/views/quran"
	settingsview "mihrab/internal/ui/views/settings"
	tasbihview "mihrab/internal/ui/views/tasbih"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each view declares the narrow port it needs; the root only bundles them.

type Ports struct {
	Qibla    qiblaview.Port
	Prayer   prayerview.Port
	Tasbih   tasbihview.Port
	Dhikr    dhikrview.Port
	Quran    quranview.Port
	Location settingsview.LocationPort
	Settings settingsview.SettingsPort
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPrayer tabID = iota
	tabQibla
	tabTasbih
	tabDhikr
	tabQuran
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Prayer", "Qibla", "Tasbih", "Dhikr", "Quran", "Settings",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Count   key.Binding
	Move    key.Binding
	Reset   key.Binding
	Pane    key.Binding
	Stop    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Count:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "count / play")),
		Move:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move / heading")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset / refresh")),
		Pane:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "quran pane")),
		Stop:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop recitation")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Count, k.Move},
		{k.Reset, k.Pane, k.Stop},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; each tab is a self-contained sub-view.
type Model struct {
	prayerView   prayerview.Model
	qiblaView    qiblaview.Model
	tasbihView   tasbihview.Model
	dhikrView    dhikrview.Model
	quranView    quranview.Model
	settingsView settingsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(ctx context.Context, ports Ports) Model {
	return Model{
		prayerView:   prayerview.New(ctx, ports.Prayer),
		qiblaView:    qiblaview.New(ctx, ports.Qibla),
		tasbihView:   tasbihview.New(ctx, ports.Tasbih),
		dhikrView:    dhikrview.New(ctx, ports.Dhikr),
		quranView:    quranview.New(ctx, ports.Quran),
		settingsView: settingsview.New(ctx, ports.Settings, ports.Location),
		activeTab:    tabPrayer,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.prayerView.Init(),
		m.qiblaView.Init(),
		m.tasbihView.Init(),
		m.dhikrView.Init(),
		m.quranView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all key input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case settingsview.LocationMsg:
		if msg.Changed {
			m.status = "location: " + locationLabel(msg.Location)
			cmds = append(cmds, m.prayerView.Reload(), m.qiblaView.Reload())
		} else if msg.Err != nil {
			m.status = "location: " + msg.Err.Error()
		}

	case settingsview.SettingsMsg:
		if msg.Changed {
			m.status = "settings saved"
			cmds = append(cmds, m.prayerView.Reload())
		}

	case tasbihview.IncrementedMsg:
		if msg.Err == nil && msg.Result.State.AllCompleted && msg.Result.Changed {
			m.status = "tasbih complete"
		}

	case quranview.PlaybackMsg:
		if msg.Err != nil {
			m.status = "quran: " + msg.Err.Error()
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its text input or filter is active.
		if !m.subViewFiltering() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			case ":":
				return m, m.palette.Open()
			}
		}

		// Keys go to the active tab only.
		var tabCmd tea.Cmd
		switch m.activeTab {
		case tabPrayer:
			m.prayerView, tabCmd = m.prayerView.Update(msg)
		case tabQibla:
			m.qiblaView, tabCmd = m.qiblaView.Update(msg)
		case tabTasbih:
			m.tasbihView, tabCmd = m.tasbihView.Update(msg)
		case tabDhikr:
			m.dhikrView, tabCmd = m.dhikrView.Update(msg)
		case tabQuran:
			m.quranView, tabCmd = m.quranView.Update(msg)
		case tabSettings:
			m.settingsView, tabCmd = m.settingsView.Update(msg)
		}
		return m, tabCmd
	}

	// Async results are routed to every view; each ignores what it does not own.
	cmds = append(cmds, m.broadcast(msg)...)
	return m, tea.Batch(cmds...)
}

func (m *Model) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 6)
	m.prayerView, cmds[0] = m.prayerView.Update(msg)
	m.qiblaView, cmds[1] = m.qiblaView.Update(msg)
	m.tasbihView, cmds[2] = m.tasbihView.Update(msg)
	m.dhikrView, cmds[3] = m.dhikrView.Update(msg)
	m.quranView, cmds[4] = m.quranView.Update(msg)
	m.settingsView, cmds[5] = m.settingsView.Update(msg)
	return cmds
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabPrayer:
		return m.prayerView.View()
	case tabQibla:
		return m.qiblaView.View()
	case tabTasbih:
		return m.tasbihView.View()
	case tabDhikr:
		return m.dhikrView.View()
	case tabQuran:
		return m.quranView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "mihrab  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if now, ok := m.quranView.Playing(); ok {
		left = theme.Hot.Render(fmt.Sprintf("▶ %s · %d", now.ReciterName, now.SurahID)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "prayer:refresh":
		m.activeTab = tabPrayer
		return m, m.prayerView.Reload()

	case "prayer:method":
		method, ok := m.intArg(parts, components.Usage("prayer:method"))
		if !ok {
			return m, nil
		}
		m.activeTab = tabPrayer
		return m, m.prayerView.SetMethod(method)

	case "qibla:heading":
		if len(parts) < 2 {
			m.status = components.Usage("qibla:heading")
			return m, nil
		}
		heading, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			m.status = "invalid heading"
			return m, nil
		}
		m.activeTab = tabQibla
		return m, m.qiblaView.SetHeading(heading)

	case "tasbih:inc":
		if len(parts) < 2 {
			m.status = components.Usage("tasbih:inc")
			return m, nil
		}
		m.activeTab = tabTasbih
		return m, m.tasbihView.Increment(parts[1])

	case "tasbih:reset":
		m.activeTab = tabTasbih
		return m, m.tasbihView.Reset()

	case "dhikr:tab":
		if len(parts) < 2 {
			m.status = components.Usage("dhikr:tab")
			return m, nil
		}
		m.activeTab = tabDhikr
		return m, m.dhikrView.SwitchTab(parts[1])

	case "dhikr:reset":
		m.activeTab = tabDhikr
		return m, m.dhikrView.Reset()

	case "quran:lang":
		id, ok := m.intArg(parts, components.Usage("quran:lang"))
		if !ok {
			return m, nil
		}
		m.activeTab = tabQuran
		return m, m.quranView.SetLanguage(id)

	case "quran:play":
		surah, ok := m.intArg(parts, components.Usage("quran:play"))
		if !ok {
			return m, nil
		}
		m.activeTab = tabQuran
		return m, m.quranView.PlaySurah(surah)

	case "quran:stop":
		return m, m.quranView.Stop()

	case "location:detect":
		m.activeTab = tabSettings
		return m, m.settingsView.Detect()

	case "location:search":
		if rest == "" {
			m.status = components.Usage("location:search")
			return m, nil
		}
		m.activeTab = tabSettings
		return m, m.settingsView.Search(rest)

	case "location:set":
		if len(parts) < 3 {
			m.status = components.Usage("location:set")
			return m, nil
		}
		lat, errLat := strconv.ParseFloat(parts[1], 64)
		lon, errLon := strconv.ParseFloat(parts[2], 64)
		if errLat != nil || errLon != nil {
			m.status = "invalid coordinate"
			return m, nil
		}
		city := strings.Join(parts[3:], " ")
		return m, m.settingsView.Select(lat, lon, city, "")

	case "location:clear":
		return m, m.settingsView.Clear()

	case "settings:lang":
		if len(parts) < 2 {
			m.status = components.Usage("settings:lang")
			return m, nil
		}
		lang := parts[1]
		return m, m.settingsView.Change(settingsdto.UpdateInput{Language: &lang})

	case "settings:method":
		method, ok := m.intArg(parts, components.Usage("settings:method"))
		if !ok {
			return m, nil
		}
		return m, m.settingsView.Change(settingsdto.UpdateInput{CalculationMethod: &method})

	case "settings:notify":
		if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
			m.status = components.Usage("settings:notify")
			return m, nil
		}
		on := parts[1] == "on"
		return m, m.settingsView.Change(settingsdto.UpdateInput{NotificationsEnabled: &on})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func (m *Model) intArg(parts []string, usage string) (int, bool) {
	if len(parts) < 2 {
		m.status = usage
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		m.status = usage
		return 0, false
	}
	return n, true
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's text input is open, in
// which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	switch m.activeTab {
	case tabQuran:
		return m.quranView.Filtering()
	case tabSettings:
		return m.settingsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.broadcast(sz)
}

func locationLabel(l locationdto.LocationOutput) string {
	if l.City == "" {
		return "cleared"
	}
	if l.Country == "" {
		return l.City
	}
	return l.City + ", " + l.Country
}
