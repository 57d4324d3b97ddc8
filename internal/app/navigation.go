package app

import (
	"slices"

	"github.com/sadopc/tickr/internal/store"
)

// historyEntry is a view together with the context it was showing.
type historyEntry struct {
	view    View
	project *store.Project
	detail  *detailContext
}

func (e historyEntry) same(o historyEntry) bool {
	if e.view != o.view {
		return false
	}
	switch e.view {
	case ViewProjectTickrs:
		return e.project != nil && o.project != nil && e.project.ID == o.project.ID
	case ViewTickrDetail:
		return e.detail != nil && o.detail != nil && e.detail.tickr.ID == o.detail.tickr.ID
	}
	return true
}

func (s *State) current() historyEntry {
	return historyEntry{view: s.view, project: s.project, detail: s.detail}
}

// navigateTo switches to v keeping the current context. ProjectTickrs and
// TickrDetail are only reached through enterProjectTickrs and
// enterTickrDetail.
func (s *State) navigateTo(v View) {
	s.navigate(historyEntry{view: v, project: s.project, detail: s.detail})
}

// navigate records the current view and its context in history when the
// target differs, then shows the target and loads it.
func (s *State) navigate(to historyEntry) {
	if cur := s.current(); !cur.same(to) {
		s.history = append(s.history, cur)
	}
	s.restore(to)
	s.clearStatus()
	s.loadView()
}

func (s *State) restore(e historyEntry) {
	s.view = e.view
	s.project = e.project
	s.detail = e.detail
	if s.view != ViewProjects {
		s.searching = false
	}
	s.syncTab()
}

// goBack returns to the previous view with the context it had. With no
// history it only clears the status.
func (s *State) goBack() {
	s.clearStatus()
	n := len(s.history)
	if n == 0 {
		return
	}
	e := s.history[n-1]
	s.history = s.history[:n-1]
	s.restore(e)
	s.loadView()
}

func (s *State) syncTab() {
	if tab := views[s.view].tab; tab >= 0 {
		s.tab = tab
	}
}

func (s *State) activateTab() {
	s.navigateTo(Tabs[s.tab].View)
	s.focus = FocusContent
}

func (s *State) enterProjectTickrs(p store.Project) {
	s.navigate(historyEntry{view: ViewProjectTickrs, project: &p, detail: s.detail})
}

func (s *State) enterTickrDetail(t store.Tickr, parent View) {
	name := s.projectNames[t.ProjectID]
	if p, err := s.store.GetProject(t.ProjectID); err == nil {
		name = p.Name
	}
	s.navigate(historyEntry{
		view:    ViewTickrDetail,
		project: s.project,
		detail:  &detailContext{tickr: t, projectName: name, parent: parent},
	})
}

// leaveDetail forgets tickr id: history entries showing it are dropped, and
// if it is on screen the user goes back to where they came from.
func (s *State) leaveDetail(id int64) {
	shows := func(e historyEntry) bool {
		return e.view == ViewTickrDetail && e.detail != nil && e.detail.tickr.ID == id
	}
	s.history = slices.DeleteFunc(s.history, shows)
	for i := range s.history {
		if d := s.history[i].detail; d != nil && d.tickr.ID == id {
			s.history[i].detail = nil
		}
	}

	if cur := s.current(); shows(cur) {
		parent := s.detail.parent
		if len(s.history) > 0 {
			s.goBack()
		} else {
			s.restore(historyEntry{view: parent, project: s.project})
			s.loadView()
		}
	} else if s.detail != nil && s.detail.tickr.ID == id {
		s.detail = nil
	}
	s.compactHistory()
}

// compactHistory merges repeated entries and drops those equal to the
// current view, so every Back changes what is shown.
func (s *State) compactHistory() {
	s.history = slices.CompactFunc(s.history, historyEntry.same)
	for n := len(s.history); n > 0 && s.history[n-1].same(s.current()); n-- {
		s.history = s.history[:n-1]
	}
}

func (s *State) openSelectedProject() {
	if len(s.projects) == 0 {
		return
	}
	s.enterProjectTickrs(s.projects[s.projectCursor.Index()])
}

func (s *State) openSelectedTickr() {
	if len(s.tickrs) == 0 {
		return
	}
	s.enterTickrDetail(s.tickrs[s.tickrCursor.Index()], s.view)
}

func (s *State) openSelectedWorkedProject() {
	if len(s.workedProjects) == 0 {
		return
	}
	s.goToProject(s.workedProjects[s.workedCursor.Index()].ID, nil)
}

func (s *State) jumpToProject() {
	if s.view != ViewTickrDetail || s.detail == nil {
		return
	}
	id := s.detail.tickr.ID
	s.goToProject(s.detail.tickr.ProjectID, &id)
}

// goToProject shows the project's tickrs with the project selected in the
// projects list and, when given, the tickr highlighted.
func (s *State) goToProject(projectID int64, highlight *int64) {
	p, err := s.store.GetProject(projectID)
	if err != nil {
		s.setStatus("Project not found.")
		s.log.Warn("go to project", "project", projectID, "err", err)
		return
	}

	s.loadProjects()
	if i := slices.IndexFunc(s.projects, func(x store.Project) bool { return x.ID == projectID }); i >= 0 {
		s.projectCursor.Set(i)
	}
	s.enterProjectTickrs(*p)
	if highlight != nil {
		if i := slices.IndexFunc(s.tickrs, func(t store.Tickr) bool { return t.ID == *highlight }); i >= 0 {
			s.tickrCursor.Set(i)
		}
	}
}

// currentTickr is the tickr actions apply to in the active view.
func (s *State) currentTickr() *store.Tickr {
	switch s.view {
	case ViewTickrs, ViewProjectTickrs:
		if len(s.tickrs) == 0 {
			return nil
		}
		t := s.tickrs[s.tickrCursor.Index()]
		return &t
	case ViewTickrDetail:
		if s.detail == nil {
			return nil
		}
		t := s.detail.tickr
		return &t
	}
	return nil
}
