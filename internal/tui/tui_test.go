package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/store"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	s.SetClock(func() time.Time { return testNow })
	return s
}

// newTestApp seeds a project with one running and one idle tickr and
// returns a sized App over it.
func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	p, err := s.CreateProject("Acme")
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.CreateCategory("Deep Work", "#7C3AED")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateTickr(p.ID, "idle", nil); err != nil {
		t.Fatal(err)
	}
	design, err := s.CreateTickr(p.ID, "design", &c.ID)
	if err != nil {
		t.Fatal(err)
	}
	end := testNow.Add(-2 * time.Hour)
	if _, err := s.AddInterval(design.ID, testNow.Add(-3*time.Hour), &end); err != nil {
		t.Fatal(err)
	}
	if err := s.StartInterval(design.ID); err != nil {
		t.Fatal(err)
	}

	st := app.New(s, app.WithClock(func() time.Time { return testNow.Add(90 * time.Second) }))
	a := New(st, 0)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

// ============================================================
// Key translation
// ============================================================

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []app.Key
	}{
		{"rune", runes("q"), []app.Key{app.Char('q')}},
		{"paste", runes("ab"), []app.Key{app.Char('a'), app.Char('b')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []app.Key{app.Char(' ')}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []app.Key{app.Code(app.KeyEnter)}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []app.Key{app.Code(app.KeyEsc)}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []app.Key{app.Code(app.KeyTab)}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []app.Key{app.Code(app.KeyBackTab)}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []app.Key{app.Code(app.KeyUp)}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, []app.Key{app.Code(app.KeyDown)}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []app.Key{app.Code(app.KeyLeft)}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []app.Key{app.Code(app.KeyRight)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []app.Key{app.Code(app.KeyBackspace)}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []app.Key{app.Code(app.KeyDelete)}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ============================================================
// App update loop
// ============================================================

func TestQuitKey(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestCtrlCQuits(t *testing.T) {
	a, _ := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestNavigationKeyDoesNotQuit(t *testing.T) {
	a, _ := newTestApp(t)
	m, cmd := a.Update(runes("p"))
	if cmd != nil {
		t.Fatal("navigation should not return a command")
	}
	if m.(App).state.View() != app.ViewProjects {
		t.Fatalf("expected projects view, got %v", m.(App).state.View())
	}
}

func TestTickAdvancesFrameAndReschedules(t *testing.T) {
	a, _ := newTestApp(t)
	m, cmd := a.Update(tickMsg(testNow))
	if m.(App).frame != 1 {
		t.Fatalf("expected frame 1, got %d", m.(App).frame)
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func TestNewDefaultsTick(t *testing.T) {
	a := New(app.New(nil), 0)
	if a.tick != 250*time.Millisecond {
		t.Fatalf("expected default tick, got %v", a.tick)
	}
	if a.Init() == nil {
		t.Fatal("Init should start the ticker")
	}
}

func TestWindowSize(t *testing.T) {
	a := New(app.New(nil), time.Second)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := m.(App)
	if got.width != 80 || got.height != 24 || got.help.Width != 80 {
		t.Fatalf("size not applied: %d x %d", got.width, got.height)
	}
}

// ============================================================
// Rendering
// ============================================================

func TestViewLoadingBeforeSize(t *testing.T) {
	a := New(app.New(nil), 0)
	if a.View() != "Loading..." {
		t.Fatalf("unexpected view %q", a.View())
	}
}

func TestHeaderShowsTabs(t *testing.T) {
	a, _ := newTestApp(t)
	header := a.renderHeader()
	if !strings.Contains(header, "tickr") {
		t.Error("header should contain the title")
	}
	for _, tab := range app.Tabs {
		if !strings.Contains(header, tab.Title) {
			t.Errorf("header missing tab %q", tab.Title)
		}
	}
}

func TestFooterShowsRunningTickr(t *testing.T) {
	a, _ := newTestApp(t)
	footer := a.renderFooter()
	for _, want := range []string{"Acme", "design", "Running 00:01:30"} {
		if !strings.Contains(footer, want) {
			t.Errorf("footer missing %q:\n%s", want, footer)
		}
	}
}

func TestFooterWithoutRunningTickr(t *testing.T) {
	a := New(app.New(nil), 0)
	a = send(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	footer := a.renderFooter()
	if !strings.Contains(footer, "No task running") {
		t.Errorf("expected idle line, got:\n%s", footer)
	}
	if !strings.Contains(footer, "Storage unavailable") {
		t.Errorf("expected status in footer, got:\n%s", footer)
	}
}

func TestEveryViewRenders(t *testing.T) {
	a, _ := newTestApp(t)
	for _, key := range []string{"h", "p", "t", "w", "l", "c", "?"} {
		a = send(t, a, runes(key))
		if out := a.View(); strings.TrimSpace(out) == "" {
			t.Errorf("view after %q rendered empty", key)
		}
	}
}

func TestDashboardContent(t *testing.T) {
	a, _ := newTestApp(t)
	out := a.View()
	for _, want := range []string{"Current Task", "design", "Today's Summary", "Recent Tasks", "idle"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestProjectsContent(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, runes("p"))
	out := a.View()
	for _, want := range []string{"Projects", "Acme", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("projects view missing %q", want)
		}
	}
}

func TestDetailContent(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, runes("t"), tea.KeyMsg{Type: tea.KeyEnter})
	if a.state.View() != app.ViewTickrDetail {
		t.Fatalf("expected detail view, got %v", a.state.View())
	}
	out := a.View()
	for _, want := range []string{"Project", "Category", "Status", "Elapsed"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q", want)
		}
	}
}

func TestTimelineWeekRendersChart(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, runes("l"), tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.state.TimelineRange() != app.TimelineWeek {
		t.Fatalf("expected week range, got %v", a.state.TimelineRange())
	}
	if out := a.View(); !strings.Contains(out, "Week") {
		t.Error("week timeline should show its tab")
	}
}

func TestCategoriesContent(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, runes("c"))
	out := a.View()
	if !strings.Contains(out, "Deep Work") || !strings.Contains(out, "#7C3AED") {
		t.Errorf("categories view missing category:\n%s", out)
	}
}

func TestPopupOverlay(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, runes("p"), runes("n"))
	if a.state.Mode() != app.ModeNewTickr {
		t.Fatalf("expected new tickr popup, got %v", a.state.Mode())
	}
	out := a.View()
	for _, want := range []string{"New task", "Label", "Project", "Start now"} {
		if !strings.Contains(out, want) {
			t.Errorf("popup missing %q", want)
		}
	}
}

func TestRenderPopupKinds(t *testing.T) {
	none := app.CategoryOption{Name: "none"}
	tests := []struct {
		name  string
		popup app.Popup
		want  []string
	}{
		{"edit", &app.EditTickrPopup{Label: "design", Categories: []app.CategoryOption{none}}, []string{"Edit task", "design", "none"}},
		{"category", &app.NewCategoryPopup{Name: "Ops", Color: "ff0000", Field: app.FieldColor}, []string{"New category", "Ops", "ff0000"}},
		{"tickr", &app.NewTickrPopup{
			Label:      "write",
			Projects:   []app.ProjectOption{{ID: 1, Name: "Acme"}},
			Categories: []app.CategoryOption{none},
		}, []string{"New task", "write", "Acme", "Start now: no"}},
		{"confirm", &app.ConfirmPopup{Message: "Delete task?"}, []string{"Confirm", "Delete task?", "y/enter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPopup(tt.popup, 60)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q in:\n%s", want, out)
				}
			}
		})
	}
}

// ============================================================
// Help
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help empty")
	}
	if len(keys.FullHelp()) != 4 {
		t.Fatalf("expected 4 help groups, got %d", len(keys.FullHelp()))
	}
}

func TestContextHelpPerMode(t *testing.T) {
	modes := []app.Mode{
		app.ModeContent, app.ModeTabBar, app.ModeProjectSearch, app.ModeEditTickr,
		app.ModeNewCategory, app.ModeNewTickr, app.ModeConfirm,
	}
	for _, m := range modes {
		if len((contextHelp{mode: m}).ShortHelp()) == 0 {
			t.Errorf("mode %v has no help", m)
		}
	}
	views := []app.View{
		app.ViewDashboard, app.ViewProjects, app.ViewTickrs, app.ViewProjectTickrs,
		app.ViewTickrDetail, app.ViewWorkedProjects, app.ViewTimeline, app.ViewCategories, app.ViewHelp,
	}
	for _, v := range views {
		h := contextHelp{mode: app.ModeContent, view: v}
		if len(h.FullHelp()) != 1 || len(h.ShortHelp()) == 0 {
			t.Errorf("view %v has no help", v)
		}
	}
}

func TestHelpScreenGroups(t *testing.T) {
	out := renderHelp(100)
	for _, want := range []string{"Navigate", "Timer", "Edit", "Move", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short string changed: %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Errorf("got %q", got)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 4); got != "ab  " {
		t.Errorf("got %q", got)
	}
}

func TestHourMarkers(t *testing.T) {
	m := hourMarkers()
	if len(m) != 24 {
		t.Fatalf("expected 24 columns, got %d", len(m))
	}
}

func TestStateLabel(t *testing.T) {
	end := testNow
	tests := []struct {
		name string
		t    store.Tickr
		want string
	}{
		{"no intervals", store.Tickr{}, "Not started"},
		{"open", store.Tickr{Intervals: []store.Interval{{StartTime: testNow}}}, "Running"},
		{"ended", store.Tickr{Intervals: []store.Interval{{StartTime: testNow.Add(-time.Hour), EndTime: &end}}}, "Ended"},
	}
	for _, tt := range tests {
		if got := stateLabel(tt.t); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatSeconds(3725); got != "01:02:05" {
		t.Errorf("formatSeconds: got %q", got)
	}
	if got := formatHours(5400); got != "1.5h" {
		t.Errorf("formatHours: got %q", got)
	}
}
