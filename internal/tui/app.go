// Package tui runs the interactive tracker on bubbletea. It translates
// terminal input into engine events and renders the engine's state; all
// behavior lives in package app.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
)

// App is the root Bubble Tea model.
type App struct {
	state *app.State
	tick  time.Duration

	width  int
	height int
	frame  int

	help help.Model
}

func New(state *app.State, tick time.Duration) App {
	if tick <= 0 {
		tick = 250 * time.Millisecond
	}
	h := help.New()
	h.ShowAll = false

	return App{
		state: state,
		tick:  tick,
		help:  h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd(a.tick)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		for _, k := range translateKey(msg) {
			a.state.Update(app.KeyPress{Key: k})
			if a.state.Quitting() {
				return a, tea.Quit
			}
		}
		return a, nil

	case tickMsg:
		a.frame++
		a.state.Update(app.Tick{})
		return a, tickCmd(a.tick)
	}

	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := a.renderContent(a.width - 4)
	if p := a.state.Popup(); p != nil {
		content = lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center,
			renderPopup(p, min(a.width-4, 72)))
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderContent(w int) string {
	st := a.state
	switch st.View() {
	case app.ViewDashboard:
		return renderDashboard(st, w)
	case app.ViewProjects:
		return renderProjects(st, w)
	case app.ViewProjectTickrs:
		return renderProjectTickrs(st, w)
	case app.ViewTickrs:
		return renderTickrs(st, w)
	case app.ViewTickrDetail:
		return renderDetail(st, w)
	case app.ViewWorkedProjects:
		return renderWorkedProjects(st, w)
	case app.ViewTimeline:
		return renderTimeline(st, w)
	case app.ViewCategories:
		return renderCategories(st, w)
	case app.ViewHelp:
		return renderHelp(w)
	}
	return ""
}

func (a App) renderHeader() string {
	st := a.state
	var tabs []string
	for i, t := range app.Tabs {
		style := inactiveTabStyle
		switch {
		case i == st.TabIndex() && st.Focus() == app.FocusTabBar:
			style = focusedTabStyle
		case i == st.TabIndex():
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.Title))
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("tickr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	running := a.runningLine()

	status := ""
	if s := a.state.Status(); s != "" {
		status = statusStyle(s).Render(" " + s)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Bottom, running, status)
	helpView := footerStyle.Render(a.help.View(contextHelp{mode: a.state.Mode(), view: a.state.View()}))
	return lipgloss.JoinVertical(lipgloss.Left, footerStyle.Render(top), helpView)
}

// runningLine shows the running tickr and the age of its open interval.
func (a App) runningLine() string {
	t, ok := a.state.Running()
	if !ok {
		return mutedStyle.Render("● No task running")
	}
	iv := t.OpenInterval()
	if iv == nil {
		return mutedStyle.Render("● No task running")
	}

	frames := spinner.MiniDot.Frames
	indicator := frames[a.frame%len(frames)]
	elapsed := formatDuration(a.state.Now().Sub(iv.StartTime))
	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		timerRunningStyle.Render(indicator+" "),
		titleStyle.Render(fmt.Sprintf("%s > %s > ",
			truncate(a.state.ProjectName(t.ProjectID), 24), truncate(t.Description, 32))),
		timerRunningStyle.Render("Running "+elapsed),
	)
}
