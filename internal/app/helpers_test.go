package app

import (
	"testing"
	"time"

	"github.com/sadopc/tickr/internal/store"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)}
}

func newTestStore(t *testing.T, c *testClock) *store.Store {
	t.Helper()
	st, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	st.SetClock(c.now)
	return st
}

// newTestState returns a state over a fresh in-memory store. Seed runs
// before the state is built so the initial load sees the data.
func newTestState(t *testing.T, seed func(st *store.Store)) (*State, *store.Store, *testClock) {
	t.Helper()
	c := newTestClock()
	st := newTestStore(t, c)
	if seed != nil {
		seed(st)
	}
	return New(st, WithClock(c.now)), st, c
}

func press(s *State, keys ...Key) {
	for _, k := range keys {
		s.Update(KeyPress{Key: k})
	}
}

func typeText(s *State, text string) {
	for _, r := range text {
		press(s, Char(r))
	}
}

func mustProject(t *testing.T, st *store.Store, name string) *store.Project {
	t.Helper()
	p, err := st.CreateProject(name)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func mustTickr(t *testing.T, st *store.Store, projectID int64, desc string) *store.Tickr {
	t.Helper()
	tk, err := st.CreateTickr(projectID, desc, nil)
	if err != nil {
		t.Fatalf("create tickr: %v", err)
	}
	return tk
}

func openIntervals(t *testing.T, st *store.Store) int {
	t.Helper()
	tickrs, err := st.ListTickrs(store.AllTickrs)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, tk := range tickrs {
		for _, iv := range tk.Intervals {
			if iv.EndTime == nil {
				n++
			}
		}
	}
	return n
}

func runningID(s *State) int64 {
	if s.running == nil {
		return 0
	}
	return *s.running
}

// faultStore fails selected operations.
type faultStore struct {
	*store.Store
	endErr    error
	startErr  error
	updateErr error
	listErr   error

	fullScans int
}

func (f *faultStore) EndOpenInterval(id int64) error {
	if f.endErr != nil {
		return f.endErr
	}
	return f.Store.EndOpenInterval(id)
}

func (f *faultStore) StartInterval(id int64) error {
	if f.startErr != nil {
		return f.startErr
	}
	return f.Store.StartInterval(id)
}

func (f *faultStore) UpdateTickr(id int64, description string, categoryID *int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.Store.UpdateTickr(id, description, categoryID)
}

func (f *faultStore) ListTickrs(scope store.TickrScope) ([]store.Tickr, error) {
	if scope.ProjectID == nil {
		f.fullScans++
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Store.ListTickrs(scope)
}
