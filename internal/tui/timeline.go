package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/tickr/internal/app"
)

const timelineLegend = "Legend: . none  : <15m  = <30m  + <45m  # 45m+"

func renderTimeline(st *app.State, w int) string {
	r := st.TimelineRange()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Timeline"), "  ", rangeTabs([]string{"Day", "Week"}, int(r)),
	)

	days := st.Timelines()
	if len(days) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", "No data."))
	}

	var body string
	if r == app.TimelineWeek {
		body = renderWeekTimeline(days, w-4)
	} else {
		body = renderDayTimeline(days[0])
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "", mutedStyle.Render(timelineLegend)))
}

func renderDayTimeline(d app.DayTimeline) string {
	return strings.Join([]string{
		highlightStyle.Render("Date: " + d.Date.Format("2006-01-02")),
		"Total: " + formatSeconds(d.TotalSeconds),
		"",
		mutedStyle.Render("Hours: " + hourMarkers()),
		"Work : " + d.Bar(),
	}, "\n")
}

func renderWeekTimeline(days []app.DayTimeline, w int) string {
	rows := []string{mutedStyle.Render("            " + hourMarkers())}
	for _, d := range days {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			d.Date.Format("Mon 01-02"), d.Bar(), formatSeconds(d.TotalSeconds)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n"), "", weekChart(days, w))
}

// weekChart draws hours tracked per day.
func weekChart(days []app.DayTimeline, w int) string {
	chartWidth := w
	if chartWidth < 20 {
		chartWidth = 20
	}
	chart := barchart.New(chartWidth, 10)

	bars := make([]barchart.BarData, 0, len(days))
	style := lipgloss.NewStyle().Foreground(colorSecondary)
	for _, d := range days {
		bars = append(bars, barchart.BarData{
			Label: d.Date.Format("Mon"),
			Values: []barchart.BarValue{{
				Name:  formatHours(d.TotalSeconds),
				Value: float64(d.TotalSeconds) / 3600,
				Style: style,
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

// hourMarkers puts a bar every four hours over a 24-cell ruler.
func hourMarkers() string {
	var b strings.Builder
	for h := 0; h < 24; h++ {
		if h%4 == 0 {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
