package tui

import (
	"strings"

	"github.com/sadopc/tickr/internal/app"
)

func renderCategories(st *app.State, w int) string {
	rows := []string{titleStyle.Render("Categories"), ""}

	categories := st.Categories()
	if len(categories) == 0 {
		rows = append(rows, mutedStyle.Render("No categories yet. Press n to create one."))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	for i, c := range categories {
		selected := i == st.CategoryIndex()
		style := normalItemStyle
		if selected {
			style = selectedItemStyle
		}
		rows = append(rows, cursorPrefix(selected)+swatch(c.Color)+" "+
			style.Render(pad(c.Name, 24))+" "+mutedStyle.Render(c.Color))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
