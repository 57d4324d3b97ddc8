// Package export writes tracked intervals as CSV or JSON, one row per
// interval.
package export

import (
	"fmt"
	"time"

	"github.com/sadopc/tickr/internal/store"
)

// Row is one exported interval. End is nil while the interval is open.
type Row struct {
	Project     string
	Task        string
	Category    string
	Start       time.Time
	End         *time.Time
	DurationSec int64
}

// Range bounds exported intervals by their start time, inclusive on both
// ends. Nil bounds are open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func (r Range) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Rows flattens tickrs into interval rows. Open intervals are measured up
// to now.
func Rows(tickrs []store.Tickr, projects []store.Project, categories []store.Category, r Range, now time.Time) []Row {
	projectNames := make(map[int64]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var rows []Row
	for _, t := range tickrs {
		project, ok := projectNames[t.ProjectID]
		if !ok {
			project = "Unknown"
		}
		var category string
		if t.CategoryID != nil {
			category = categoryNames[*t.CategoryID]
		}

		for _, iv := range t.Intervals {
			if !r.contains(iv.StartTime) {
				continue
			}
			end := now
			if iv.EndTime != nil {
				end = *iv.EndTime
			}
			rows = append(rows, Row{
				Project:     project,
				Task:        t.Description,
				Category:    category,
				Start:       iv.StartTime,
				End:         iv.EndTime,
				DurationSec: int64(end.Sub(iv.StartTime) / time.Second),
			})
		}
	}
	return rows
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
