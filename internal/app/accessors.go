package app

import (
	"slices"
	"time"

	"github.com/sadopc/tickr/internal/store"
)

func (s *State) Quitting() bool { return s.quit }
func (s *State) View() View     { return s.view }
func (s *State) Focus() Focus   { return s.focus }
func (s *State) TabIndex() int  { return s.tab }
func (s *State) Status() string { return s.status }
func (s *State) Popup() Popup   { return s.popup }
func (s *State) Now() time.Time { return s.now() }

// Mode reports where the next key press goes.
func (s *State) Mode() Mode {
	switch s.popup.(type) {
	case *EditTickrPopup:
		return ModeEditTickr
	case *NewCategoryPopup:
		return ModeNewCategory
	case *NewTickrPopup:
		return ModeNewTickr
	case *ConfirmPopup:
		return ModeConfirm
	}
	switch {
	case s.quit:
		return ModeQuit
	case s.searching:
		return ModeProjectSearch
	case s.focus == FocusTabBar:
		return ModeTabBar
	}
	return ModeContent
}

func (s *State) Projects() []store.Project       { return s.projects }
func (s *State) ProjectIndex() int               { return s.projectCursor.Index() }
func (s *State) WorkedProjects() []store.Project { return s.workedProjects }
func (s *State) WorkedIndex() int                { return s.workedCursor.Index() }
func (s *State) Tickrs() []store.Tickr           { return s.tickrs }
func (s *State) TickrIndex() int                 { return s.tickrCursor.Index() }
func (s *State) AllTickrs() []store.Tickr        { return s.allTickrs }
func (s *State) Categories() []store.Category    { return s.categoryList }
func (s *State) CategoryIndex() int              { return s.categoryCursor.Index() }
func (s *State) WorkedRange() WorkedRange        { return s.workedRange }
func (s *State) TimelineRange() TimelineRange    { return s.timelineRange }

// Search returns the project filter and whether it is being edited.
func (s *State) Search() (string, bool) { return s.search, s.searching }

// SelectedProject is the project whose tickrs ProjectTickrs lists.
func (s *State) SelectedProject() (store.Project, bool) {
	if s.project == nil {
		return store.Project{}, false
	}
	return *s.project, true
}

// Detail returns the tickr shown in TickrDetail with its project name.
func (s *State) Detail() (store.Tickr, string, bool) {
	if s.detail == nil {
		return store.Tickr{}, "", false
	}
	return s.detail.tickr, s.detail.projectName, true
}

// CategoryFor returns the cached category of t.
func (s *State) CategoryFor(t store.Tickr) (store.Category, bool) {
	if t.CategoryID == nil {
		return store.Category{}, false
	}
	c, ok := s.categories[*t.CategoryID]
	return c, ok
}

func (s *State) SummaryFor(projectID int64) ProjectSummary {
	return s.summaries[projectID]
}

// ProjectName resolves a project id, or "Unknown".
func (s *State) ProjectName(id int64) string {
	if name, ok := s.projectNames[id]; ok {
		return name
	}
	return "Unknown"
}

// Running returns the running tickr, if any.
func (s *State) Running() (store.Tickr, bool) {
	if s.running == nil {
		return store.Tickr{}, false
	}
	i := slices.IndexFunc(s.allTickrs, func(t store.Tickr) bool { return t.ID == *s.running })
	if i < 0 {
		return store.Tickr{}, false
	}
	return s.allTickrs[i], true
}

func (s *State) Today() TodaySummary {
	return Today(s.allTickrs, s.now())
}

// Timelines returns one DayTimeline per day of the timeline range.
func (s *State) Timelines() []DayTimeline {
	now := s.now()
	days := TimelineDays(s.timelineRange, now)
	out := make([]DayTimeline, len(days))
	for i, d := range days {
		out[i] = BuildDayTimeline(s.allTickrs, d, now)
	}
	return out
}

// Notify adds msg to the status line, after any status set during startup.
func (s *State) Notify(msg string) {
	if s.status != "" {
		msg = s.status + "; " + msg
	}
	s.setStatus(msg)
}
