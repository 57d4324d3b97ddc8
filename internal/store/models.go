package store

import "time"

type Project struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Tickr is a single task belonging to a project. Intervals are in
// chronological order.
type Tickr struct {
	ID          int64
	ProjectID   int64
	Description string
	CategoryID  *int64
	CreatedAt   time.Time
	Intervals   []Interval
}

// Running reports whether the last interval is still open.
func (t Tickr) Running() bool {
	if len(t.Intervals) == 0 {
		return false
	}
	return t.Intervals[len(t.Intervals)-1].EndTime == nil
}

// OpenInterval returns the open interval, if any.
func (t Tickr) OpenInterval() *Interval {
	if !t.Running() {
		return nil
	}
	return &t.Intervals[len(t.Intervals)-1]
}

type Interval struct {
	ID        int64
	TickrID   int64
	StartTime time.Time
	EndTime   *time.Time
}

type Category struct {
	ID    int64
	Name  string
	Color string // #RRGGBB
}

// TickrScope selects which tickrs ListTickrs returns. A nil ProjectID
// means all tickrs.
type TickrScope struct {
	ProjectID *int64
}

// AllTickrs is the unfiltered scope.
var AllTickrs = TickrScope{}

// ByProject scopes a tickr listing to one project.
func ByProject(id int64) TickrScope {
	return TickrScope{ProjectID: &id}
}
