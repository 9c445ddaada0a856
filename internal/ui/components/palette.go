package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mihrab/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// PaletteCommand describes one palette entry. Name is "<tab>:<verb>".
type PaletteCommand struct {
	Name string
	Args string
	Help string
}

// Group is the tab a command belongs to.
func (c PaletteCommand) Group() string {
	group, _, _ := strings.Cut(c.Name, ":")
	return group
}

func (c PaletteCommand) usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

const maxMatches = 6

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	nameStyle     = lipgloss.NewStyle().Foreground(theme.Lavender)
	selectedStyle = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true)
	argStyle      = lipgloss.NewStyle().Foreground(theme.Overlay0)
	helpStyle     = lipgloss.NewStyle().Foreground(theme.Subtext0).Italic(true)
)

// PaletteCommands must stay in sync with the switch in app/model.go
// executePalette.
var PaletteCommands = []PaletteCommand{
	{"prayer:refresh", "", "refetch today's timetable"},
	{"prayer:method", "<id>", "show times for another calculation method"},
	{"qibla:heading", "<degrees>", "set the compass heading"},
	{"tasbih:inc", "<phrase|1-3>", "count one tasbih"},
	{"tasbih:reset", "", "zero all three counters"},
	{"dhikr:tab", "<morning|evening>", "switch adhkar list"},
	{"dhikr:reset", "", "clear both adhkar lists"},
	{"quran:lang", "<id>", "load reciters for a language"},
	{"quran:play", "<surah>", "play a surah with the selected reciter"},
	{"quran:stop", "", "stop recitation"},
	{"location:detect", "", "use the device fix"},
	{"location:search", "<query>", "find a city"},
	{"location:set", "<lat> <lon> [city]", "save coordinates by hand"},
	{"location:clear", "", "forget the saved location"},
	{"settings:lang", "<en|ar>", "interface language"},
	{"settings:method", "<id>", "default calculation method"},
	{"settings:notify", "<on|off>", "prayer notifications"},
}

// Usage returns the usage line for a palette command, or "" when unknown.
func Usage(name string) string {
	for _, c := range PaletteCommands {
		if c.Name == name {
			return "usage: " + c.usage()
		}
	}
	return ""
}

// MatchCommands filters PaletteCommands by the first word of input. A word
// with a colon matches command names by prefix. A bare word matches the tab
// group by prefix or any word of the help text.
func MatchCommands(input string) []PaletteCommand {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return PaletteCommands
	}
	word := fields[0]
	var out []PaletteCommand
	for _, c := range PaletteCommands {
		var ok bool
		if strings.Contains(word, ":") {
			// once arguments follow, only the exact command stays listed
			ok = strings.HasPrefix(c.Name, word) && (len(fields) == 1 || c.Name == word)
		} else {
			ok = strings.HasPrefix(c.Group(), word) || strings.Contains(strings.ToLower(c.Help), word)
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "prayer, qibla, tasbih, dhikr, quran, location or settings"
	ti.CharLimit = 256
	return Palette{input: ti}
}

// Visible reports whether the palette is currently shown.
func (p Palette) Visible() bool { return p.visible }

// Value is the text typed so far.
func (p Palette) Value() string { return p.input.Value() }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			p.complete()
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// complete replaces the typed word with the first matching command name.
// Input that already carries arguments is left alone.
func (p *Palette) complete() {
	value := p.input.Value()
	if len(strings.Fields(value)) > 1 {
		return
	}
	matches := MatchCommands(value)
	if len(matches) == 0 {
		return
	}
	next := matches[0].Name
	if matches[0].Args != "" {
		next += " "
	}
	p.input.SetValue(next)
	p.input.CursorEnd()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	matches := MatchCommands(p.input.Value())

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command Palette"))
	sb.WriteString(argStyle.Render(fmt.Sprintf("  %d match", len(matches))))
	if len(matches) != 1 {
		sb.WriteString(argStyle.Render("es"))
	}
	sb.WriteString("\n: " + p.input.View() + "\n")
	if len(matches) == 0 {
		sb.WriteString("\n" + theme.Error.Render("  no command matches") + "\n")
	} else {
		sb.WriteString("\n")
		for i, c := range matches {
			if i == maxMatches {
				sb.WriteString(argStyle.Render(fmt.Sprintf("  … %d more", len(matches)-maxMatches)) + "\n")
				break
			}
			style := nameStyle
			if i == 0 {
				style = selectedStyle
			}
			line := "  " + style.Render(c.Name)
			if c.Args != "" {
				line += " " + argStyle.Render(c.Args)
			}
			sb.WriteString(line + "  " + helpStyle.Render(c.Help) + "\n")
		}
		sb.WriteString(argStyle.Render("tab completes · enter runs · esc closes"))
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
