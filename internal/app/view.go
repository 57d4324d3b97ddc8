package app

// View is the content shown below the tab bar.
type View int

const (
	ViewDashboard View = iota
	ViewProjects
	ViewTickrs
	ViewProjectTickrs
	ViewWorkedProjects
	ViewTimeline
	ViewCategories
	ViewTickrDetail
	ViewHelp
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewProjects:
		return "Projects"
	case ViewTickrs:
		return "Tickrs"
	case ViewProjectTickrs:
		return "Project Tickrs"
	case ViewWorkedProjects:
		return "Worked Projects"
	case ViewTimeline:
		return "Timeline"
	case ViewCategories:
		return "Categories"
	case ViewTickrDetail:
		return "Tickr Detail"
	case ViewHelp:
		return "Help"
	}
	return "Unknown"
}

// Tab is one entry of the tab bar.
type Tab struct {
	Title string
	View  View
}

// Tabs is the tab bar in display order.
var Tabs = []Tab{
	{"Home", ViewDashboard},
	{"Projects", ViewProjects},
	{"Tickrs", ViewTickrs},
	{"Worked", ViewWorkedProjects},
	{"Timeline", ViewTimeline},
	{"Categories", ViewCategories},
}

// Focus says whether arrow keys drive the tab bar or the content.
type Focus int

const (
	FocusContent Focus = iota
	FocusTabBar
)

type WorkedRange int

const (
	WorkedToday WorkedRange = iota
	WorkedWeek
)

func (r WorkedRange) String() string {
	if r == WorkedWeek {
		return "week"
	}
	return "today"
}

func parseWorkedRange(v string) WorkedRange {
	if v == "week" {
		return WorkedWeek
	}
	return WorkedToday
}

type TimelineRange int

const (
	TimelineDay TimelineRange = iota
	TimelineWeek
)

func (r TimelineRange) String() string {
	if r == TimelineWeek {
		return "week"
	}
	return "day"
}

func parseTimelineRange(v string) TimelineRange {
	if v == "week" {
		return TimelineWeek
	}
	return TimelineDay
}

// viewDef is everything view-dependent in one place. A nil field means
// the view has no such behavior. rescans marks loads that already reread
// every tickr.
type viewDef struct {
	tab     int
	load    func(*State)
	rescans bool
	cursor  func(*State) *Cursor
	length  func(*State) int
	open    func(*State)
	create  func(*State)
	toggle  func(*State)
}

// views is filled in init to break the initialization cycle between the
// table and the loaders that navigate.
var views map[View]viewDef

func init() {
	tickrCursor := func(s *State) *Cursor { return &s.tickrCursor }
	tickrCount := func(s *State) int { return len(s.tickrs) }

	views = map[View]viewDef{
		ViewDashboard: {
			tab:     0,
			load:    (*State).loadDashboard,
			rescans: true,
		},
		ViewProjects: {
			tab:     1,
			load:    (*State).loadProjects,
			rescans: true,
			cursor:  func(s *State) *Cursor { return &s.projectCursor },
			length:  func(s *State) int { return len(s.projects) },
			open:    (*State).openSelectedProject,
			create:  (*State).openNewTickrPopup,
		},
		ViewTickrs: {
			tab:     2,
			load:    (*State).loadTickrs,
			rescans: true,
			cursor:  tickrCursor,
			length:  tickrCount,
			open:    (*State).openSelectedTickr,
		},
		ViewProjectTickrs: {
			tab:     2,
			load:    (*State).loadProjectTickrs,
			rescans: true,
			cursor:  tickrCursor,
			length:  tickrCount,
			open:    (*State).openSelectedTickr,
			create:  (*State).openNewTickrPopup,
		},
		ViewWorkedProjects: {
			tab:    3,
			load:   (*State).loadWorkedProjects,
			cursor: func(s *State) *Cursor { return &s.workedCursor },
			length: func(s *State) int { return len(s.workedProjects) },
			open:   (*State).openSelectedWorkedProject,
			toggle: (*State).toggleWorkedRange,
		},
		ViewTimeline: {
			tab:     4,
			load:    (*State).loadTimeline,
			rescans: true,
			toggle:  (*State).toggleTimelineRange,
		},
		ViewCategories: {
			tab:    5,
			load:   (*State).loadCategories,
			cursor: func(s *State) *Cursor { return &s.categoryCursor },
			length: func(s *State) int { return len(s.categoryList) },
			create: (*State).openNewCategoryPopup,
		},
		ViewTickrDetail: {
			tab:  2,
			load: (*State).refreshDetail,
		},
		ViewHelp: {
			tab: -1,
		},
	}
}
