// Package app is the interactive state engine. It owns every piece of UI
// state, turns events into transitions and mediates between the Store and
// the renderer. Renderers only read it through the accessor methods.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sadopc/tickr/internal/store"
)

type detailContext struct {
	tickr       store.Tickr
	projectName string
	parent      View
}

// State is the whole application state. It is not safe for concurrent use;
// the event loop owns it.
type State struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	quit    bool
	running *int64

	view    View
	history []historyEntry
	focus   Focus
	tab     int

	projects       []store.Project
	workedProjects []store.Project
	tickrs         []store.Tickr
	allTickrs      []store.Tickr
	categoryList   []store.Category
	projectNames   map[int64]string

	projectCursor  Cursor
	workedCursor   Cursor
	tickrCursor    Cursor
	categoryCursor Cursor

	project *store.Project
	detail  *detailContext

	summaries  map[int64]ProjectSummary
	categories map[int64]store.Category

	workedRange   WorkedRange
	timelineRange TimelineRange

	search    string
	searching bool

	popup  Popup
	status string
}

type Option func(*State)

// WithClock replaces time.Now for elapsed-time and range computations.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds the state and loads the dashboard. Load failures leave empty
// lists and a status message; a nil store yields an empty, usable state.
func New(st Store, opts ...Option) *State {
	s := &State{
		store:        st,
		log:          slog.New(slog.DiscardHandler),
		now:          time.Now,
		view:         ViewDashboard,
		projectNames: make(map[int64]string),
		summaries:    make(map[int64]ProjectSummary),
		categories:   make(map[int64]store.Category),
	}
	for _, opt := range opts {
		opt(s)
	}
	if st == nil {
		s.store = unavailableStore{}
		s.status = "Storage unavailable"
		s.log.Error("starting without storage")
		return s
	}

	s.loadRanges()
	s.loadDashboard()
	s.log.Debug("state initialized",
		"projects", len(s.projects), "tickrs", len(s.allTickrs), "running", s.running != nil)
	return s
}

// Update applies one event. It never returns an error; failures become the
// status message.
func (s *State) Update(ev Event) {
	switch ev := ev.(type) {
	case Tick:
		if s.running != nil {
			s.refreshRunning()
		}
	case KeyPress:
		s.handleKey(ev.Key)
	}
}

// refreshRunning keeps elapsed times live. Views whose load already rescans
// every tickr are not rescanned twice.
func (s *State) refreshRunning() {
	if !views[s.view].rescans {
		s.refreshAll()
	}
	s.loadView()
}

func (s *State) handleKey(k Key) {
	if s.popup != nil {
		s.popup.handleKey(s, k)
		return
	}
	if s.searching {
		s.handleSearchKey(k)
		return
	}

	switch k.Code {
	case KeyRune:
		s.handleRune(k.Rune)
	case KeyTab:
		if s.focus == FocusTabBar {
			s.focus = FocusContent
		} else {
			s.focus = FocusTabBar
		}
	case KeyBackTab:
		if toggle := views[s.view].toggle; toggle != nil {
			toggle(s)
		}
	case KeyLeft:
		if s.focus == FocusTabBar {
			s.tab = (s.tab + len(Tabs) - 1) % len(Tabs)
		}
	case KeyRight:
		if s.focus == FocusTabBar {
			s.tab = (s.tab + 1) % len(Tabs)
		}
	case KeyUp:
		if s.focus == FocusContent {
			s.moveSelection(-1)
		}
	case KeyDown:
		if s.focus == FocusContent {
			s.moveSelection(1)
		}
	case KeyEnter:
		if s.focus == FocusTabBar {
			s.activateTab()
		} else if open := views[s.view].open; open != nil {
			open(s)
		}
	case KeyEsc:
		s.goBack()
	}
}

func (s *State) handleRune(r rune) {
	switch r {
	case 'q':
		s.quit = true
	case 'h':
		s.navigateTo(ViewDashboard)
	case 'p':
		s.navigateTo(ViewProjects)
	case 't':
		s.navigateTo(ViewTickrs)
	case 'w':
		s.navigateTo(ViewWorkedProjects)
	case 'l':
		s.navigateTo(ViewTimeline)
	case 'c':
		s.navigateTo(ViewCategories)
	case '?':
		if s.view == ViewHelp {
			s.goBack()
		} else {
			s.navigateTo(ViewHelp)
		}
	case '/':
		if s.view == ViewProjects {
			s.searching = true
		}
	case 'r':
		s.loadView()
	case 'k':
		if s.focus == FocusContent {
			s.moveSelection(-1)
		}
	case 'j':
		if s.focus == FocusContent {
			s.moveSelection(1)
		}
	case ' ':
		s.toggleTimer()
	case 's':
		s.stopRunning()
	case 'g':
		s.jumpToProject()
	case 'e':
		s.openEditPopup()
	case 'n':
		if create := views[s.view].create; create != nil {
			create(s)
		}
	case 'd':
		s.confirmDelete()
	}
}

func (s *State) handleSearchKey(k Key) {
	if s.view != ViewProjects {
		s.searching = false
		return
	}
	switch {
	case k.Code == KeyEsc:
		s.searching = false
		s.search = ""
		s.loadProjects()
	case k.Code == KeyEnter:
		s.searching = false
		s.loadProjects()
	case k.erases():
		s.search = dropLastRune(s.search)
		s.loadProjects()
	default:
		if r, ok := k.printable(); ok {
			s.search += string(r)
			s.loadProjects()
		}
	}
}

func (s *State) moveSelection(delta int) {
	def := views[s.view]
	if def.cursor == nil {
		return
	}
	c, n := def.cursor(s), def.length(s)
	if delta < 0 {
		c.Up(n)
	} else {
		c.Down(n)
	}
}

func (s *State) setStatus(msg string) {
	s.status = msg
}

func (s *State) clearStatus() {
	s.status = ""
}

// fail records a recoverable store failure.
func (s *State) fail(msg string, err error) {
	s.status = fmt.Sprintf("%s: %v", msg, err)
	s.log.Warn("store operation failed", "op", msg, "err", err)
}

func (s *State) loadRanges() {
	v, err := s.store.GetSetting(store.SettingWorkedRange, WorkedToday.String())
	if err != nil {
		s.log.Warn("load worked range", "err", err)
	}
	s.workedRange = parseWorkedRange(v)

	v, err = s.store.GetSetting(store.SettingTimelineRange, TimelineDay.String())
	if err != nil {
		s.log.Warn("load timeline range", "err", err)
	}
	s.timelineRange = parseTimelineRange(v)
}

func (s *State) saveSetting(key, value string) {
	if err := s.store.SetSetting(key, value); err != nil {
		s.fail("Failed to save preference", err)
	}
}

func (s *State) toggleWorkedRange() {
	if s.workedRange == WorkedToday {
		s.workedRange = WorkedWeek
	} else {
		s.workedRange = WorkedToday
	}
	s.saveSetting(store.SettingWorkedRange, s.workedRange.String())
	s.loadWorkedProjects()
}

func (s *State) toggleTimelineRange() {
	if s.timelineRange == TimelineDay {
		s.timelineRange = TimelineWeek
	} else {
		s.timelineRange = TimelineDay
	}
	s.saveSetting(store.SettingTimelineRange, s.timelineRange.String())
	s.loadTimeline()
}

func dropLastRune(v string) string {
	r := []rune(v)
	if len(r) == 0 {
		return v
	}
	return string(r[:len(r)-1])
}

var errUnavailable = errors.New("storage unavailable")

// unavailableStore stands in when the database could not be opened.
type unavailableStore struct{}

func (unavailableStore) ListProjects() ([]store.Project, error)        { return nil, errUnavailable }
func (unavailableStore) SearchProjects(string) ([]store.Project, error) { return nil, errUnavailable }
func (unavailableStore) GetProject(int64) (*store.Project, error)      { return nil, errUnavailable }
func (unavailableStore) CreateProject(string) (*store.Project, error)   { return nil, errUnavailable }
func (unavailableStore) ProjectsWorkedOn(time.Time, time.Time) ([]store.Project, error) {
	return nil, errUnavailable
}
func (unavailableStore) ListTickrs(store.TickrScope) ([]store.Tickr, error) { return nil, errUnavailable }
func (unavailableStore) GetTickr(int64) (*store.Tickr, error)              { return nil, errUnavailable }
func (unavailableStore) CreateTickr(int64, string, *int64) (*store.Tickr, error) {
	return nil, errUnavailable
}
func (unavailableStore) UpdateTickr(int64, string, *int64) error         { return errUnavailable }
func (unavailableStore) DeleteTickr(int64) error                         { return errUnavailable }
func (unavailableStore) StartInterval(int64) error                       { return errUnavailable }
func (unavailableStore) EndOpenInterval(int64) error                     { return errUnavailable }
func (unavailableStore) ListCategories() ([]store.Category, error)       { return nil, errUnavailable }
func (unavailableStore) GetCategory(int64) (*store.Category, error)      { return nil, errUnavailable }
func (unavailableStore) CreateCategory(string, string) (*store.Category, error) {
	return nil, errUnavailable
}
func (unavailableStore) GetSetting(_, fallback string) (string, error) { return fallback, errUnavailable }
func (unavailableStore) SetSetting(string, string) error                 { return errUnavailable }
