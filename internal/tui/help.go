package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelp lists every global binding grouped as in keys.FullHelp.
func renderHelp(w int) string {
	titles := []string{"Navigate", "Timer", "Edit", "Move"}
	rows := []string{titleStyle.Render("Help"), ""}
	for i, group := range keys.FullHelp() {
		rows = append(rows, sectionStyle.Render(titles[i]))
		for _, b := range group {
			rows = append(rows, helpRow(b))
		}
		rows = append(rows, "")
	}
	rows = append(rows, mutedStyle.Render("Popups: type to edit, tab to switch field, enter to save, esc to cancel."))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func helpRow(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %s %s", highlightStyle.Render(fmt.Sprintf("%-10s", h.Key)), h.Desc)
}
