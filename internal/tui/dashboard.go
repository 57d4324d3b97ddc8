package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
)

const recentLimit = 5

func renderDashboard(st *app.State, w int) string {
	now := st.Now()

	welcome := accentStyle.Bold(true).Render("Welcome to tickr - " + now.Format("Monday, January 2, 2006"))

	running := renderRunningPanel(st, w)
	today := renderTodayPanel(st, w)
	recent := renderRecentPanel(st, w)

	return lipgloss.JoinVertical(lipgloss.Left, " "+welcome, running, today, recent)
}

func renderRunningPanel(st *app.State, w int) string {
	title := sectionStyle.Render("Current Task")
	t, ok := st.Running()
	if !ok {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No task currently running"),
		))
	}

	var elapsed string
	if iv := t.OpenInterval(); iv != nil {
		elapsed = formatDuration(st.Now().Sub(iv.StartTime))
	}
	c, hasCategory := st.CategoryFor(t)
	line := timerRunningStyle.Render("● ") + categoryTag(c, hasCategory) + titleStyle.Render(truncate(t.Description, w-12))
	detail := fmt.Sprintf("  %s %s  %s %s",
		mutedStyle.Render("Project:"), highlightStyle.Render(st.ProjectName(t.ProjectID)),
		mutedStyle.Render("Time:"), timerRunningStyle.Render(elapsed),
	)
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, line, detail))
}

func renderTodayPanel(st *app.State, w int) string {
	today := st.Today()
	rows := []string{
		sectionStyle.Render("Today's Summary"),
		fmt.Sprintf("%s %s", mutedStyle.Render("Total time:  "), accentStyle.Bold(true).Render(formatSeconds(today.Seconds))),
		fmt.Sprintf("%s %s", mutedStyle.Render("Tasks worked:"), successStyle.Bold(true).Render(fmt.Sprint(today.Tickrs))),
		fmt.Sprintf("%s %s", mutedStyle.Render("Projects:    "), highlightStyle.Bold(true).Render(fmt.Sprint(today.Projects))),
		"",
		mutedStyle.Render(fmt.Sprintf("%d projects  %d tasks", len(st.Projects()), len(st.AllTickrs()))),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderRecentPanel(st *app.State, w int) string {
	now := st.Now()
	title := sectionStyle.Render("Recent Tasks")
	tickrs := st.AllTickrs()
	if len(tickrs) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No tasks yet"),
		))
	}

	rows := []string{title}
	// newest first
	for i := len(tickrs) - 1; i >= 0 && len(rows) <= recentLimit; i-- {
		t := tickrs[i]
		c, ok := st.CategoryFor(t)
		rows = append(rows, fmt.Sprintf("  %s %s%s %s",
			mutedStyle.Render("•"),
			categoryTag(c, ok),
			normalItemStyle.Render(truncate(t.Description, 35)),
			accentStyle.Render("["+formatDuration(app.Elapsed(t, now))+"]"),
		))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
