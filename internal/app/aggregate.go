package app

import (
	"fmt"
	"time"

	"github.com/sadopc/tickr/internal/store"
)

// ProjectSummary is derived from every tickr of a project.
type ProjectSummary struct {
	TotalSeconds int64
	Ended        int
	Open         int
}

// Elapsed sums all intervals of t, measuring open ones up to now. Negative
// spans count as zero.
func Elapsed(t store.Tickr, now time.Time) time.Duration {
	var total time.Duration
	for _, iv := range t.Intervals {
		end := now
		if iv.EndTime != nil {
			end = *iv.EndTime
		}
		if d := end.Sub(iv.StartTime); d > 0 {
			total += d
		}
	}
	return total
}

// Summarize buckets tickrs by project. A tickr with no intervals counts as
// open; only closed intervals with a positive length add to the total.
func Summarize(tickrs []store.Tickr) map[int64]ProjectSummary {
	out := make(map[int64]ProjectSummary)
	for _, t := range tickrs {
		s := out[t.ProjectID]
		if t.Running() || len(t.Intervals) == 0 {
			s.Open++
		} else {
			s.Ended++
		}
		for _, iv := range t.Intervals {
			if iv.EndTime == nil {
				continue
			}
			if secs := int64(iv.EndTime.Sub(iv.StartTime) / time.Second); secs > 0 {
				s.TotalSeconds += secs
			}
		}
		out[t.ProjectID] = s
	}
	return out
}

// RunningID returns the first tickr whose last interval is open.
func RunningID(tickrs []store.Tickr) *int64 {
	for _, t := range tickrs {
		if t.Running() {
			id := t.ID
			return &id
		}
	}
	return nil
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WorkedWindow returns the [from, to) window a worked range covers.
func WorkedWindow(r WorkedRange, now time.Time) (time.Time, time.Time) {
	today := StartOfDay(now)
	to := today.AddDate(0, 0, 1)
	if r == WorkedWeek {
		return today.AddDate(0, 0, -6), to
	}
	return today, to
}

// DayTimeline is tracked time within one local day, bucketed per hour.
type DayTimeline struct {
	Date         time.Time
	Hours        [24]int64
	TotalSeconds int64
}

// Bar renders the day as one glyph per hour.
func (d DayTimeline) Bar() string {
	b := make([]byte, 0, len(d.Hours))
	for _, secs := range d.Hours {
		b = append(b, HourGlyph(secs))
	}
	return string(b)
}

// HourGlyph maps the seconds tracked in an hour to a fill character.
func HourGlyph(seconds int64) byte {
	switch {
	case seconds <= 0:
		return '.'
	case seconds < 900:
		return ':'
	case seconds < 1800:
		return '='
	case seconds < 2700:
		return '+'
	default:
		return '#'
	}
}

// TimelineDays returns the local day starts a timeline range covers, oldest
// first.
func TimelineDays(r TimelineRange, now time.Time) []time.Time {
	today := StartOfDay(now)
	if r == TimelineDay {
		return []time.Time{today}
	}
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = today.AddDate(0, 0, i-6)
	}
	return days
}

// BuildDayTimeline clips every interval to day and accumulates the overlap.
func BuildDayTimeline(tickrs []store.Tickr, day, now time.Time) DayTimeline {
	tl := DayTimeline{Date: day}
	dayEnd := day.AddDate(0, 0, 1)
	for _, t := range tickrs {
		for _, iv := range t.Intervals {
			end := now
			if iv.EndTime != nil {
				end = *iv.EndTime
			}
			tl.add(iv.StartTime, end, day, dayEnd)
		}
	}
	return tl
}

func (d *DayTimeline) add(start, end, dayStart, dayEnd time.Time) {
	if !end.After(dayStart) || !start.Before(dayEnd) {
		return
	}
	from := later(start, dayStart)
	to := earlier(end, dayEnd)
	secs := int64(to.Sub(from) / time.Second)
	if secs <= 0 {
		return
	}
	d.TotalSeconds += secs

	for h := range d.Hours {
		hourStart := dayStart.Add(time.Duration(h) * time.Hour)
		hourEnd := hourStart.Add(time.Hour)
		if !to.After(hourStart) || !from.Before(hourEnd) {
			continue
		}
		seg := earlier(to, hourEnd).Sub(later(from, hourStart))
		if seg > 0 {
			d.Hours[h] += int64(seg / time.Second)
		}
	}
}

// TodaySummary is what the dashboard reports for the current day.
type TodaySummary struct {
	Seconds  int64
	Tickrs   int
	Projects int
}

// Today measures time tracked since local midnight, counting the tickrs
// and projects that have any of it.
func Today(tickrs []store.Tickr, now time.Time) TodaySummary {
	day := StartOfDay(now)
	var out TodaySummary
	projects := make(map[int64]struct{})
	for _, t := range tickrs {
		tl := BuildDayTimeline([]store.Tickr{t}, day, now)
		if tl.TotalSeconds == 0 {
			continue
		}
		out.Seconds += tl.TotalSeconds
		out.Tickrs++
		projects[t.ProjectID] = struct{}{}
	}
	out.Projects = len(projects)
	return out
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// FormatSeconds renders secs as HH:MM:SS. Hours are not capped at 24.
func FormatSeconds(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
