package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/store"
)

type tickMsg time.Time

// truncate shortens s to w terminal cells, ending with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

// pad truncates and right-pads s to exactly w cells.
func pad(s string, w int) string {
	return runewidth.FillRight(truncate(s, w), w)
}

func formatSeconds(secs int64) string {
	return app.FormatSeconds(secs)
}

func formatDuration(d time.Duration) string {
	return app.FormatSeconds(int64(d / time.Second))
}

func formatHours(secs int64) string {
	return fmt.Sprintf("%.1fh", float64(secs)/3600)
}

// cursorPrefix marks the selected row.
func cursorPrefix(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// categoryTag renders "[name] " in the category color, or nothing.
func categoryTag(c store.Category, ok bool) string {
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Color)).Render("["+c.Name+"]") + " "
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// intervalText summarizes a tickr's intervals, e.g. "2 intervals, 01:30:00".
func intervalText(t store.Tickr, now time.Time) string {
	n := len(t.Intervals)
	if n == 0 {
		return "0 intervals, --:--:--"
	}
	label := "intervals"
	if n == 1 {
		label = "interval"
	}
	return fmt.Sprintf("%d %s, %s", n, label, formatDuration(app.Elapsed(t, now)))
}

// stateLabel names where t is in its lifecycle.
func stateLabel(t store.Tickr) string {
	switch {
	case len(t.Intervals) == 0:
		return "Not started"
	case t.Running():
		return "Running"
	}
	return "Ended"
}
