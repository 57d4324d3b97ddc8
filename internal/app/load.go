package app

import (
	"errors"
	"strings"

	"github.com/sadopc/tickr/internal/store"
)

// loadView reloads whatever the active view shows.
func (s *State) loadView() {
	if load := views[s.view].load; load != nil {
		load(s)
	}
}

// refreshAll reloads every tickr and project name and rebuilds everything
// derived from them. Successful loads leave the status untouched.
func (s *State) refreshAll() {
	tickrs, err := s.store.ListTickrs(store.AllTickrs)
	if err != nil {
		s.fail("Failed to load tickrs", err)
		return
	}
	s.allTickrs = tickrs
	s.running = RunningID(tickrs)
	s.summaries = Summarize(tickrs)

	projects, err := s.store.ListProjects()
	if err != nil {
		s.fail("Failed to load projects", err)
	} else {
		names := make(map[int64]string, len(projects))
		for _, p := range projects {
			names[p.ID] = p.Name
		}
		s.projectNames = names
	}
	s.refreshCategoryCache()
}

// loadDashboard needs no separate summary scan; refreshAll rebuilt them.
func (s *State) loadDashboard() {
	s.refreshAll()
	s.listProjects()
}

func (s *State) loadProjects() {
	if s.listProjects() {
		s.refreshSummaries()
	}
}

func (s *State) listProjects() bool {
	var (
		projects []store.Project
		err      error
	)
	if q := strings.TrimSpace(s.search); q != "" {
		projects, err = s.store.SearchProjects(q)
	} else {
		projects, err = s.store.ListProjects()
	}
	if err != nil {
		s.fail("Failed to load projects", err)
		return false
	}
	s.projects = projects
	s.projectCursor.Clamp(len(projects))
	return true
}

func (s *State) loadWorkedProjects() {
	from, to := WorkedWindow(s.workedRange, s.now())
	projects, err := s.store.ProjectsWorkedOn(from, to)
	if err != nil {
		s.fail("Failed to load worked projects", err)
		return
	}
	s.workedProjects = projects
	s.workedCursor.Clamp(len(projects))
}

func (s *State) loadTickrs() {
	s.refreshAll()
	s.tickrs = s.allTickrs
	s.tickrCursor.Clamp(len(s.tickrs))
}

func (s *State) loadProjectTickrs() {
	if !invariant(s.project != nil, "project tickrs shown without a project") {
		s.tickrs = nil
		s.tickrCursor.Clamp(0)
		return
	}
	tickrs, err := s.store.ListTickrs(store.ByProject(s.project.ID))
	if err != nil {
		s.fail("Failed to load tickrs", err)
		return
	}
	s.tickrs = tickrs
	s.tickrCursor.Clamp(len(tickrs))
	s.refreshSummaries()
	s.refreshCategoryCache()
}

func (s *State) loadTimeline() {
	s.refreshAll()
}

func (s *State) loadCategories() {
	categories, err := s.store.ListCategories()
	if err != nil {
		s.fail("Failed to load categories", err)
		return
	}
	s.categoryList = categories
	s.categoryCursor.Clamp(len(categories))
	for _, c := range categories {
		s.categories[c.ID] = c
	}
}

// refreshDetail re-reads the detail tickr. A tickr that vanished sends the
// user back to a list instead of rendering a stale context.
func (s *State) refreshDetail() {
	if !invariant(s.detail != nil, "tickr detail shown without a tickr") {
		return
	}
	t, err := s.store.GetTickr(s.detail.tickr.ID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.leaveDetail(s.detail.tickr.ID)
		s.setStatus("Task not found.")
	case err != nil:
		s.fail("Failed to refresh task", err)
	default:
		s.detail.tickr = *t
		s.refreshCategoryCache()
	}
}

// refreshSummaries rebuilds project summaries from a full tickr scan.
func (s *State) refreshSummaries() {
	tickrs, err := s.store.ListTickrs(store.AllTickrs)
	if err != nil {
		s.fail("Failed to load project summaries", err)
		return
	}
	s.allTickrs = tickrs
	s.running = RunningID(tickrs)
	s.summaries = Summarize(tickrs)
}

// refreshCategoryCache fetches only the categories referenced by loaded
// tickrs that are not cached yet.
func (s *State) refreshCategoryCache() {
	missing := make(map[int64]struct{})
	note := func(t store.Tickr) {
		if t.CategoryID == nil {
			return
		}
		if _, ok := s.categories[*t.CategoryID]; !ok {
			missing[*t.CategoryID] = struct{}{}
		}
	}
	for _, t := range s.tickrs {
		note(t)
	}
	for _, t := range s.allTickrs {
		note(t)
	}
	if s.detail != nil {
		note(s.detail.tickr)
	}

	for id := range missing {
		c, err := s.store.GetCategory(id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			s.fail("Failed to load categories", err)
			return
		}
		s.categories[id] = *c
	}
}
