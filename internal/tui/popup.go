package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
)

var popupStyle = activePanelStyle.Padding(1, 2)

func renderPopup(p app.Popup, w int) string {
	var title string
	var rows []string
	switch p := p.(type) {
	case *app.EditTickrPopup:
		title = "Edit task"
		rows = editTickrRows(p)
	case *app.NewCategoryPopup:
		title = "New category"
		rows = newCategoryRows(p)
	case *app.NewTickrPopup:
		title = "New task"
		rows = newTickrRows(p)
	case *app.ConfirmPopup:
		title = "Confirm"
		rows = []string{normalItemStyle.Render(p.Message), "", mutedStyle.Render("y/enter: confirm   n/esc: cancel")}
	default:
		return ""
	}
	body := append([]string{accentStyle.Bold(true).Render(title), ""}, rows...)
	return popupStyle.Width(w).Render(strings.Join(body, "\n"))
}

func fieldLine(active bool, name, value string) string {
	marker, nameStyle := "  ", mutedStyle
	if active {
		marker, nameStyle = highlightStyle.Render("> "), highlightStyle.Bold(true)
	}
	v := normalItemStyle.Bold(true).Render(value)
	if active {
		v += highlightStyle.Render("▏")
	}
	return marker + nameStyle.Render(name+": ") + v
}

func optionRows(names, colors []string, selected int, active bool) []string {
	rows := make([]string, 0, len(names))
	for i, name := range names {
		style := normalItemStyle
		if colors != nil && colors[i] != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i]))
		}
		if i == selected || active {
			style = style.Bold(true)
		}
		marker := "    "
		if i == selected {
			marker = "  " + highlightStyle.Render("> ")
		}
		rows = append(rows, marker+style.Render(name))
	}
	return rows
}

func categoryNames(opts []app.CategoryOption) ([]string, []string) {
	names := make([]string, len(opts))
	colors := make([]string, len(opts))
	for i, o := range opts {
		names[i], colors[i] = o.Name, o.Color
	}
	return names, colors
}

func editTickrRows(p *app.EditTickrPopup) []string {
	rows := []string{fieldLine(true, "Label", p.Label), "", mutedStyle.Render("  Category")}
	names, colors := categoryNames(p.Categories)
	rows = append(rows, optionRows(names, colors, p.Category.Index(), false)...)
	return append(rows, "", mutedStyle.Render("Type to edit label. Up/Down: category. Enter: save. Esc: cancel."))
}

func newCategoryRows(p *app.NewCategoryPopup) []string {
	preview := ""
	if c := strings.TrimSpace(p.Color); c != "" {
		if !strings.HasPrefix(c, "#") {
			c = "#" + c
		}
		preview = " " + swatch(c)
	}
	return []string{
		fieldLine(p.Field == app.FieldName, "Name", p.Name),
		fieldLine(p.Field == app.FieldColor, "Color", p.Color) + preview,
		"",
		mutedStyle.Render("Tab: switch field. Color is #RRGGBB. Enter: save. Esc: cancel."),
	}
}

func newTickrRows(p *app.NewTickrPopup) []string {
	rows := []string{fieldLine(p.Field == app.FieldLabel, "Label", p.Label), ""}

	rows = append(rows, fieldLine(p.Field == app.FieldProject, "Project", ""))
	projects := make([]string, len(p.Projects))
	for i, o := range p.Projects {
		projects[i] = o.Name
	}
	rows = append(rows, optionRows(projects, nil, p.Project.Index(), p.Field == app.FieldProject)...)

	rows = append(rows, "", fieldLine(p.Field == app.FieldCategory, "Category", ""))
	names, colors := categoryNames(p.Categories)
	rows = append(rows, optionRows(names, colors, p.Category.Index(), p.Field == app.FieldCategory)...)

	start := "no"
	if p.StartNow {
		start = "yes"
	}
	rows = append(rows, "", fieldLine(p.Field == app.FieldStartNow, "Start now", start))
	return append(rows, "", mutedStyle.Render("Tab: switch field. Up/Down: select. Space: toggle start. Enter: save. Esc: cancel."))
}
