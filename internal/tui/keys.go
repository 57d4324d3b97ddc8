package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/tickr/internal/app"
)

// translateKey maps a terminal key to engine keys. Pasted text arrives as
// several runes and yields one key per rune.
func translateKey(msg tea.KeyMsg) []app.Key {
	switch msg.Type {
	case tea.KeyRunes:
		out := make([]app.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, app.Char(r))
		}
		return out
	case tea.KeySpace:
		return []app.Key{app.Char(' ')}
	case tea.KeyEnter:
		return []app.Key{app.Code(app.KeyEnter)}
	case tea.KeyEsc:
		return []app.Key{app.Code(app.KeyEsc)}
	case tea.KeyTab:
		return []app.Key{app.Code(app.KeyTab)}
	case tea.KeyShiftTab:
		return []app.Key{app.Code(app.KeyBackTab)}
	case tea.KeyUp:
		return []app.Key{app.Code(app.KeyUp)}
	case tea.KeyDown:
		return []app.Key{app.Code(app.KeyDown)}
	case tea.KeyLeft:
		return []app.Key{app.Code(app.KeyLeft)}
	case tea.KeyRight:
		return []app.Key{app.Code(app.KeyRight)}
	case tea.KeyBackspace:
		return []app.Key{app.Code(app.KeyBackspace)}
	case tea.KeyDelete:
		return []app.Key{app.Code(app.KeyDelete)}
	}
	return nil
}

type keyMap struct {
	Toggle     key.Binding
	Stop       key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Jump       key.Binding
	Search     key.Binding
	Range      key.Binding
	Refresh    key.Binding
	Home       key.Binding
	Projects   key.Binding
	Tickrs     key.Binding
	Worked     key.Binding
	Timeline   key.Binding
	Categories key.Binding
	Focus      key.Binding
	Help       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding

	// popup and search input
	Field   key.Binding
	Save    key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Deny    key.Binding
	Pick    key.Binding
	Type    key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/end"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop running"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Jump: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "project"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Range: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "range"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Projects: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "projects"),
	),
	Tickrs: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tasks"),
	),
	Worked: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "worked"),
	),
	Timeline: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "timeline"),
	),
	Categories: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "categories"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "tab bar"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev tab"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),

	Field: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y/enter", "confirm"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
	Pick: key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("↑/↓", "select"),
	),
	Type: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("type", "edit text"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Stop, k.New, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Projects, k.Tickrs, k.Worked, k.Timeline, k.Categories},
		{k.Toggle, k.Stop, k.Jump, k.Refresh},
		{k.New, k.Edit, k.Delete, k.Search, k.Range},
		{k.Focus, k.Left, k.Right, k.Up, k.Down, k.Enter, k.Back, k.Help, k.Quit},
	}
}

// contextHelp is the footer hint set for the current mode and view.
type contextHelp struct {
	mode app.Mode
	view app.View
}

func (c contextHelp) ShortHelp() []key.Binding {
	k := keys
	switch c.mode {
	case app.ModeEditTickr:
		return []key.Binding{k.Type, k.Pick, k.Save, k.Cancel}
	case app.ModeNewCategory:
		return []key.Binding{k.Type, k.Field, k.Save, k.Cancel}
	case app.ModeNewTickr:
		return []key.Binding{k.Type, k.Field, k.Pick, k.Save, k.Cancel}
	case app.ModeConfirm:
		return []key.Binding{k.Confirm, k.Deny}
	case app.ModeProjectSearch:
		return []key.Binding{k.Type, k.Enter, k.Cancel}
	case app.ModeTabBar:
		return []key.Binding{k.Left, k.Right, k.Enter, k.Focus, k.Quit}
	}

	switch c.view {
	case app.ViewProjects:
		return []key.Binding{k.Up, k.Down, k.Enter, k.New, k.Search, k.Help, k.Quit}
	case app.ViewTickrs, app.ViewProjectTickrs:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Toggle, k.New, k.Delete, k.Back, k.Quit}
	case app.ViewTickrDetail:
		return []key.Binding{k.Toggle, k.Stop, k.Jump, k.Edit, k.Delete, k.Back}
	case app.ViewWorkedProjects:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Range, k.Help, k.Quit}
	case app.ViewTimeline:
		return []key.Binding{k.Range, k.Refresh, k.Help, k.Quit}
	case app.ViewCategories:
		return []key.Binding{k.Up, k.Down, k.New, k.Back, k.Quit}
	case app.ViewHelp:
		return []key.Binding{k.Help, k.Back, k.Quit}
	}
	return []key.Binding{k.Projects, k.Tickrs, k.Worked, k.Timeline, k.Stop, k.Help, k.Quit}
}

func (c contextHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp()}
}
