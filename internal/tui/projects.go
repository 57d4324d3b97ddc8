package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/store"
)

const projectNameWidth = 24

func renderProjects(st *app.State, w int) string {
	title := titleStyle.Render("Projects")

	var rows []string
	rows = append(rows, title)
	if query, editing := st.Search(); editing || query != "" {
		cursor := ""
		if editing {
			cursor = highlightStyle.Render("▏")
		}
		rows = append(rows, mutedStyle.Render("Search: ")+normalItemStyle.Render(query)+cursor)
	}
	rows = append(rows, "")

	projects := st.Projects()
	if len(projects) == 0 {
		rows = append(rows, mutedStyle.Render("No projects found. Press r to refresh."))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	header := fmt.Sprintf("  %s %8s %5s %5s", pad("Project", projectNameWidth), "Total", "End", "Open")
	rows = append(rows, sectionStyle.Render(header))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", projectNameWidth+21)))

	for i, p := range projects {
		selected := i == st.ProjectIndex()
		sum := st.SummaryFor(p.ID)
		style := normalItemStyle
		if selected {
			style = selectedItemStyle
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s %s",
			cursorPrefix(selected),
			style.Render(pad(p.Name, projectNameWidth)),
			accentStyle.Render(fmt.Sprintf("%8s", formatSeconds(sum.TotalSeconds))),
			successStyle.Render(fmt.Sprintf("%5d", sum.Ended)),
			warningStyle.Render(fmt.Sprintf("%5d", sum.Open)),
		))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func renderProjectTickrs(st *app.State, w int) string {
	name := "Project Tickrs"
	var sum app.ProjectSummary
	if p, ok := st.SelectedProject(); ok {
		name = p.Name
		sum = st.SummaryFor(p.ID)
	}
	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(truncate(name, w-30)), "  ",
		mutedStyle.Render(fmt.Sprintf("%s total, %d open", formatSeconds(sum.TotalSeconds), sum.Open)),
	)
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		title, "", tickrList(st, st.Tickrs(), w-4, false)))
}

func renderWorkedProjects(st *app.State, w int) string {
	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Worked Projects"), "  ", rangeTabs(
			[]string{"Today", "Week"}, int(st.WorkedRange())),
	)

	projects := st.WorkedProjects()
	if len(projects) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("Nothing tracked in this range.")))
	}

	rows := []string{title, ""}
	for i, p := range projects {
		selected := i == st.WorkedIndex()
		style := normalItemStyle
		if selected {
			style = selectedItemStyle
		}
		rows = append(rows, cursorPrefix(selected)+style.Render(truncate(p.Name, w-8)))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// tickrList renders tickr rows. withProject prefixes each row with its
// project name for the unscoped list.
func tickrList(st *app.State, tickrs []store.Tickr, w int, withProject bool) string {
	if len(tickrs) == 0 {
		return mutedStyle.Render("No tickrs found. Press r to refresh.")
	}
	now := st.Now()
	running, _ := st.Running()

	rows := make([]string, 0, len(tickrs))
	for i, t := range tickrs {
		selected := i == st.TickrIndex()
		style := normalItemStyle
		if selected {
			style = selectedItemStyle
		}
		marker := "  "
		if t.Running() && t.ID == running.ID {
			marker = timerRunningStyle.Render("● ")
		}
		c, ok := st.CategoryFor(t)
		row := cursorPrefix(selected) + marker + style.Render("["+intervalText(t, now)+"] ") + categoryTag(c, ok)
		if withProject {
			row += highlightStyle.Render(truncate(st.ProjectName(t.ProjectID), 16)) + mutedStyle.Render(" / ")
		}
		used := lipgloss.Width(row)
		rows = append(rows, row+style.Render(truncate(t.Description, w-used)))
	}
	return strings.Join(rows, "\n")
}

// rangeTabs renders mode tabs with the active one highlighted.
func rangeTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = inactiveTabStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
