package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
)

const (
	detailTimeLayout = "2006-01-02 15:04"
	// intervals beyond this are elided to the first and last two
	maxListedIntervals = 5
)

func renderTickrs(st *app.State, w int) string {
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Tickrs"), "", tickrList(st, st.Tickrs(), w-4, true)))
}

func renderDetail(st *app.State, w int) string {
	t, projectName, ok := st.Detail()
	if !ok {
		return panelStyle.Width(w).Render(mutedStyle.Render("No task selected."))
	}
	now := st.Now()

	label := func(name string) string {
		return mutedStyle.Render(fmt.Sprintf("%-11s", name+":"))
	}

	category := "none"
	if c, ok := st.CategoryFor(t); ok {
		category = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Color)).Render(c.Name)
	}

	first, last := "pending", "open"
	if n := len(t.Intervals); n > 0 {
		first = t.Intervals[0].StartTime.Local().Format(detailTimeLayout)
		if end := t.Intervals[n-1].EndTime; end != nil {
			last = end.Local().Format(detailTimeLayout)
		}
	}
	elapsed := "--:--:--"
	if len(t.Intervals) > 0 {
		elapsed = formatDuration(app.Elapsed(t, now))
	}
	state := stateLabel(t)

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("Task") + "  " + titleStyle.Render(truncate(t.Description, w-10)),
		mutedStyle.Render(strings.Repeat("─", 40)),
		label("Project") + projectName,
		label("Category") + category,
		label("Status") + stateStyle(state).Bold(true).Render(state),
		label("First") + first,
		label("Last") + last,
		label("Elapsed") + elapsed,
		"",
		accentStyle.Bold(true).Render(fmt.Sprintf("Intervals (%d)", len(t.Intervals))),
	}

	if len(t.Intervals) == 0 {
		rows = append(rows, mutedStyle.Render("  none"))
	}
	n := len(t.Intervals)
	for i, iv := range t.Intervals {
		if n > maxListedIntervals && i >= 2 && i < n-2 {
			if i == 2 {
				rows = append(rows, "     ...")
			}
			continue
		}
		end, to := "open", now
		if iv.EndTime != nil {
			end, to = iv.EndTime.Local().Format(detailTimeLayout), *iv.EndTime
		}
		rows = append(rows, fmt.Sprintf("  %2d) %s -> %s %s",
			i+1, iv.StartTime.Local().Format(detailTimeLayout), end,
			mutedStyle.Render("("+formatDuration(to.Sub(iv.StartTime))+")")))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
