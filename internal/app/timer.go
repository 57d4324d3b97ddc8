package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sadopc/tickr/internal/store"
)

// toggleTimer stops the selected tickr when it is the running one, and
// otherwise makes it the only running tickr.
func (s *State) toggleTimer() {
	t := s.currentTickr()
	if t == nil {
		s.setStatus("No task selected.")
		return
	}

	if t.Running() && s.running != nil && *s.running == t.ID {
		if err := s.store.EndOpenInterval(t.ID); err != nil {
			s.fail("Failed to stop task", err)
			return
		}
		s.running = nil
	} else if !s.startExclusive(t.ID) {
		return
	}
	s.afterTimerChange()
}

// startExclusive closes the running tickr's interval, then opens one on id.
// If closing fails nothing is started.
func (s *State) startExclusive(id int64) bool {
	if s.running != nil && *s.running != id {
		if err := s.store.EndOpenInterval(*s.running); err != nil {
			s.fail("Failed to stop currently running task", err)
			return false
		}
		s.running = nil
	}
	err := s.store.StartInterval(id)
	if err != nil && !errors.Is(err, store.ErrAlreadyRunning) {
		s.fail("Failed to start task", err)
		return false
	}
	// An interval left open out of band is adopted rather than duplicated.
	s.running = &id
	return true
}

// stopRunning re-reads the data to find the running tickr, closes it and
// shows its project with the tickr highlighted.
func (s *State) stopRunning() {
	s.refreshAll()
	i := slices.IndexFunc(s.allTickrs, func(t store.Tickr) bool { return t.Running() })
	if i < 0 {
		s.setStatus("No task running.")
		return
	}
	t := s.allTickrs[i]
	if err := s.store.EndOpenInterval(t.ID); err != nil {
		s.fail("Failed to stop task", err)
		return
	}
	s.running = nil
	s.refreshAll()
	s.goToProject(t.ProjectID, &t.ID)
	s.log.Info("timer stopped", "tickr", t.ID)
}

func (s *State) afterTimerChange() {
	s.refreshAll()
	switch s.view {
	case ViewTickrs, ViewProjectTickrs, ViewTickrDetail:
		s.loadView()
	}
}

// confirmDelete asks before deleting the selected tickr.
func (s *State) confirmDelete() {
	switch s.view {
	case ViewTickrs, ViewProjectTickrs, ViewTickrDetail:
	default:
		return
	}
	t := s.currentTickr()
	if t == nil {
		s.setStatus("No task selected.")
		return
	}
	id := t.ID
	s.popup = &ConfirmPopup{
		Message:   fmt.Sprintf("Delete task %q?", t.Description),
		onConfirm: func(s *State) { s.deleteTickr(id) },
	}
}

func (s *State) deleteTickr(id int64) {
	if err := s.store.DeleteTickr(id); err != nil {
		s.fail("Failed to delete task", err)
		return
	}
	if s.running != nil && *s.running == id {
		s.running = nil
	}
	s.leaveDetail(id)
	s.refreshAll()
	s.loadView()
	s.setStatus("Task deleted.")
	s.log.Info("tickr deleted", "tickr", id)
}
