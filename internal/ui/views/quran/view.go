package quran

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	qurandto "mihrab/internal/modules/quran/dto"
	"mihrab/internal/ui/theme"
)

const pollEvery = 2 * time.Second

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Overview(ctx context.Context) (qurandto.OverviewOutput, error)
	Reciters(ctx context.Context, languageID int, query string) ([]qurandto.ReciterOutput, error)
	Play(ctx context.Context, languageID, reciterID, moshafID, surahID int) (qurandto.PlaybackOutput, error)
	Stop(ctx context.Context) error
	NowPlaying(ctx context.Context) (qurandto.PlaybackOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewMsg struct {
	Overview qurandto.OverviewOutput
	Err      error
}

type RecitersMsg struct {
	LanguageID int
	Reciters   []qurandto.ReciterOutput
	Err        error
}

type PlaybackMsg struct {
	Playback qurandto.PlaybackOutput
	Err      error
}

type pollMsg struct{}

// ─── list items ──────────────────────────────────────────────────────────────

type reciterItem struct{ r qurandto.ReciterOutput }

func (i reciterItem) Title() string { return i.r.Name }
func (i reciterItem) Description() string {
	if len(i.r.Moshaf) == 0 {
		return "no recitations"
	}
	return fmt.Sprintf("%s · %d recitations", i.r.Moshaf[0].Name, len(i.r.Moshaf))
}
func (i reciterItem) FilterValue() string { return i.r.Name }

type surahItem struct{ s qurandto.SurahOutput }

func (i surahItem) Title() string       { return fmt.Sprintf("%3d  %s", i.s.ID, i.s.DisplayName) }
func (i surahItem) Description() string { return "     " + i.s.NameSimple }
func (i surahItem) FilterValue() string { return strconv.Itoa(i.s.ID) + " " + i.s.NameSimple + " " + i.s.NameArabic }

// ─── model ───────────────────────────────────────────────────────────────────

type pane int

const (
	paneReciters pane = iota
	paneSurahs
)

type Model struct {
	ctx        context.Context
	port       Port
	reciters   list.Model
	surahs     list.Model
	spinner    spinner.Model
	focus      pane
	overview   qurandto.OverviewOutput
	languageID int
	playback   qurandto.PlaybackOutput
	err        error
	loading    bool
	width      int
	height     int
}

func New(ctx context.Context, port Port) Model {
	newList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)
		l := list.New(nil, delegate, 0, 0)
		l.Title = title
		l.Styles.Title = theme.Title
		l.SetShowHelp(false)
		l.SetFilteringEnabled(true)
		return l
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		ctx:      ctx,
		port:     port,
		reciters: newList("Reciters"),
		surahs:   newList("Surahs"),
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.overviewCmd(), m.spinner.Tick, poll())
}

// SetLanguage reloads the reciter list in another catalog language.
func (m *Model) SetLanguage(languageID int) tea.Cmd {
	m.languageID = languageID
	return m.recitersCmd(languageID)
}

// PlaySurah plays surah with the selected reciter.
func (m Model) PlaySurah(surahID int) tea.Cmd {
	item, ok := m.reciters.SelectedItem().(reciterItem)
	if !ok {
		return func() tea.Msg { return PlaybackMsg{Err: fmt.Errorf("select a reciter first")} }
	}
	lang, reciterID := m.languageID, item.r.ID
	return func() tea.Msg {
		out, err := m.port.Play(m.ctx, lang, reciterID, 0, surahID)
		return PlaybackMsg{Playback: out, Err: err}
	}
}

func (m Model) Stop() tea.Cmd {
	return func() tea.Msg {
		if err := m.port.Stop(m.ctx); err != nil {
			return PlaybackMsg{Err: err}
		}
		return PlaybackMsg{}
	}
}

func (m Model) Playing() (qurandto.PlaybackOutput, bool) {
	return m.playback, m.playback.Playing
}

// Filtering reports whether either list's search filter is active.
func (m Model) Filtering() bool {
	return m.reciters.FilterState() == list.Filtering || m.surahs.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case OverviewMsg:
		if msg.Err != nil {
			m.loading = false
			m.err = msg.Err
			return m, nil
		}
		m.overview = msg.Overview
		items := make([]list.Item, len(msg.Overview.Surahs))
		for i, s := range msg.Overview.Surahs {
			items[i] = surahItem{s: s}
		}
		cmds = append(cmds, m.surahs.SetItems(items))
		if msg.Overview.DefaultLanguage != nil && m.languageID == 0 {
			m.languageID = msg.Overview.DefaultLanguage.ID
		}
		cmds = append(cmds, m.recitersCmd(m.languageID))
		return m, tea.Batch(cmds...)

	case RecitersMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Reciters))
		for i, r := range msg.Reciters {
			items[i] = reciterItem{r: r}
		}
		m.reciters.Title = "Reciters · " + m.languageName(msg.LanguageID)
		return m, m.reciters.SetItems(items)

	case PlaybackMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.playback = msg.Playback
		}
		return m, nil

	case pollMsg:
		return m, tea.Batch(poll(), m.nowPlayingCmd())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case "f":
				if m.focus == paneReciters {
					m.focus = paneSurahs
				} else {
					m.focus = paneReciters
				}
				return m, nil
			case "enter":
				if m.focus == paneReciters {
					m.focus = paneSurahs
					return m, nil
				}
				if item, ok := m.surahs.SelectedItem().(surahItem); ok {
					return m, m.PlaySurah(item.s.ID)
				}
				return m, nil
			case "s":
				return m, m.Stop()
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == paneReciters {
		m.reciters, cmd = m.reciters.Update(msg)
	} else {
		m.surahs, cmd = m.surahs.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) resize() {
	listH := m.height - 3
	if listH < 3 {
		listH = 3
	}
	m.reciters.SetSize(m.width/2-2, listH)
	m.surahs.SetSize(m.width-m.width/2-2, listH)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading Quran catalog…")
	}

	style := func(p pane) lipgloss.Style {
		if m.focus == p {
			return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Lavender)
		}
		return lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Surface1)
	}
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		style(paneReciters).Render(m.reciters.View()),
		style(paneSurahs).Render(m.surahs.View()),
	)

	status := theme.Muted.Render("f switch pane · enter play · s stop · / filter")
	if m.playback.Playing {
		status = theme.Hot.Render(fmt.Sprintf("▶ %s · surah %d", m.playback.ReciterName, m.playback.SurahID)) + "  " + status
	}
	if m.err != nil {
		status = theme.Error.Render(m.err.Error()) + "  " + status
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes, status)
}

func (m Model) languageName(id int) string {
	for _, l := range m.overview.Languages {
		if l.ID == id {
			if l.Native != "" {
				return l.Native
			}
			return l.Name
		}
	}
	return "default"
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) overviewCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Overview(m.ctx)
		return OverviewMsg{Overview: out, Err: err}
	}
}

func (m Model) recitersCmd(languageID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Reciters(m.ctx, languageID, "")
		return RecitersMsg{LanguageID: languageID, Reciters: out, Err: err}
	}
}

func (m Model) nowPlayingCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.NowPlaying(m.ctx)
		return PlaybackMsg{Playback: out, Err: err}
	}
}

func poll() tea.Cmd {
	return tea.Tick(pollEvery, func(time.Time) tea.Msg { return pollMsg{} })
}
