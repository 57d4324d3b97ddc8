package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/tickr/internal/config"
	"github.com/sadopc/tickr/internal/store"
)

var referenceTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// cliHarness runs commands against a temp-dir database with a fixed clock.
type cliHarness struct {
	t   *testing.T
	dir string
	db  string
	now time.Time
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("TICKR_CONFIG_PATH", filepath.Join(dir, "conf"))
	t.Setenv("HOME", dir)
	return &cliHarness{t: t, dir: dir, db: filepath.Join(dir, "tickr.db"), now: referenceTime}
}

func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()
	now := h.now
	cmd := newRoot(&runtime{now: func() time.Time { return now }})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", h.db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *cliHarness) store() *store.Store {
	h.t.Helper()
	s, err := store.New(h.db)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { s.Close() })
	return s
}

func (h *cliHarness) tickr(project, description string) store.Tickr {
	h.t.Helper()
	s := h.store()
	p, err := s.GetProjectByName(project)
	require.NoError(h.t, err)
	tickrs, err := s.ListTickrs(store.ByProject(p.ID))
	require.NoError(h.t, err)
	for _, t := range tickrs {
		if t.Description == description {
			return t
		}
	}
	h.t.Fatalf("task %q not found in %q", description, project)
	return store.Tickr{}
}

func openCount(t *testing.T, s *store.Store) int {
	t.Helper()
	tickrs, err := s.ListTickrs(store.AllTickrs)
	require.NoError(t, err)
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

// ============================================================
// project
// ============================================================

func TestProjectAdd(t *testing.T) {
	h := newCLIHarness(t)

	out := h.mustRun("project", "add", "website")
	assert.Contains(t, out, `Project "website" created.`)

	out = h.mustRun("project", "add", "website")
	assert.Contains(t, out, "already exists")

	projects, err := h.store().ListProjects()
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestProjectList(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("project", "add", "backend")
	h.mustRun("task", "add", "website", "header",
		"--start", "2026-03-10T09:00:00Z", "--end", "2026-03-10T10:30:00Z")

	out := h.mustRun("project", "list")
	assert.Contains(t, out, "PROJECT")
	assert.Contains(t, out, "01:30:00")
	assert.Less(t, bytes.Index([]byte(out), []byte("backend")), bytes.Index([]byte(out), []byte("website")),
		"projects should be sorted by name")
}

// ============================================================
// task add
// ============================================================

func TestTaskAddUnknownProject(t *testing.T) {
	h := newCLIHarness(t)
	_, err := h.run("task", "add", "nope", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "nope" not found`)
}

func TestTaskAddEndRequiresStart(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	_, err := h.run("task", "add", "website", "header", "--end", "2026-03-10T10:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a start")
}

func TestTaskAddRejectsEndBeforeStart(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	_, err := h.run("task", "add", "website", "header",
		"--start", "2026-03-10T10:00:00Z", "--end", "2026-03-10T09:00:00Z")
	require.Error(t, err)

	tickrs, err := h.store().ListTickrs(store.AllTickrs)
	require.NoError(t, err)
	assert.Empty(t, tickrs, "no task should be created on invalid bounds")
}

func TestTaskAddBadTime(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	_, err := h.run("task", "add", "website", "header", "--start", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestTaskAddWithIntervalAndNewCategory(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")

	out := h.mustRun("task", "add", "website", "header",
		"--start", "2026-03-10T09:00:00Z", "--end", "2026-03-10T10:30:00Z", "--category", "design")
	assert.Contains(t, out, `Category "design" not found`)

	tk := h.tickr("website", "header")
	require.Len(t, tk.Intervals, 1)
	require.NotNil(t, tk.Intervals[0].EndTime)
	assert.Equal(t, 90*time.Minute, tk.Intervals[0].EndTime.Sub(tk.Intervals[0].StartTime))

	require.NotNil(t, tk.CategoryID)
	c, err := h.store().GetCategory(*tk.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "design", c.Name)
	assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Color)
}

func TestTaskAddReusesCategory(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("category", "design", "#00ff00")

	out := h.mustRun("task", "add", "website", "header", "--category", "design")
	assert.NotContains(t, out, "not found")

	cats, err := h.store().ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestTaskAddOpenIntervalStopsRunning(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("task", "add", "website", "first", "--start", "2026-03-10T08:00:00Z")
	h.mustRun("task", "add", "website", "second", "--start", "2026-03-10T11:00:00Z")

	assert.Equal(t, 1, openCount(t, h.store()))
	assert.False(t, h.tickr("website", "first").Running())
	assert.True(t, h.tickr("website", "second").Running())
}

// ============================================================
// task switch / start
// ============================================================

func TestTaskSwitch(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("project", "add", "backend")
	h.mustRun("task", "add", "website", "header")
	h.mustRun("task", "add", "backend", "api")

	out := h.mustRun("task", "start", "website", "header")
	assert.Contains(t, out, `Switched to task "header"`)
	assert.NotContains(t, out, "Stopped")

	h.now = referenceTime.Add(25 * time.Minute)
	out = h.mustRun("task", "switch", "backend", "api")
	assert.Contains(t, out, "Stopped the running task.")

	header := h.tickr("website", "header")
	require.Len(t, header.Intervals, 1)
	require.NotNil(t, header.Intervals[0].EndTime)
	assert.Equal(t, 25*time.Minute, header.Intervals[0].EndTime.Sub(header.Intervals[0].StartTime))
	assert.True(t, h.tickr("backend", "api").Running())
	assert.Equal(t, 1, openCount(t, h.store()))
}

func TestTaskSwitchUnknownTask(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	_, err := h.run("task", "switch", "website", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `task "ghost" not found`)
}

func TestTaskList(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("project", "add", "backend")
	h.mustRun("task", "add", "website", "header", "--category", "design")
	h.mustRun("task", "add", "backend", "api", "--start", "2026-03-10T11:00:00Z")

	out := h.mustRun("task", "list")
	assert.Contains(t, out, "header")
	assert.Contains(t, out, "design")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "01:00:00")

	out = h.mustRun("task", "list", "--project", "website")
	assert.Contains(t, out, "header")
	assert.NotContains(t, out, "api")
}

// ============================================================
// category
// ============================================================

func TestCategoryNormalizesColor(t *testing.T) {
	h := newCLIHarness(t)
	out := h.mustRun("category", "review", "3498db")
	assert.Contains(t, out, "#3498DB")

	c, err := h.store().GetCategoryByName("review")
	require.NoError(t, err)
	assert.Equal(t, "#3498DB", c.Color)
}

func TestCategoryRejectsBadColor(t *testing.T) {
	h := newCLIHarness(t)
	_, err := h.run("category", "review", "blue")
	require.Error(t, err)

	cats, err := h.store().ListCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestCategoryPromptsWithoutName(t *testing.T) {
	h := newCLIHarness(t)
	orig := promptCategory
	t.Cleanup(func() { promptCategory = orig })
	promptCategory = func(name, colorValue *string) error {
		*name = "meetings"
		return nil
	}

	h.mustRun("category")
	c, err := h.store().GetCategoryByName("meetings")
	require.NoError(t, err)
	assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Color)
}

// ============================================================
// export
// ============================================================

func TestExportCSV(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("task", "add", "website", "header",
		"--start", "2026-03-09T09:00:00Z", "--end", "2026-03-09T10:00:00Z")
	h.mustRun("task", "add", "website", "footer", "--start", "2026-03-10T11:00:00Z")

	path := filepath.Join(h.dir, "out.csv")
	out := h.mustRun("export", "-o", path)
	assert.Contains(t, out, "Exported 2 intervals")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Duration (seconds)", records[0][5])
	assert.Equal(t, "3600", records[1][5])
	assert.Equal(t, "Running", records[2][4])
	assert.Equal(t, "3600", records[2][5])
}

func TestExportFiltersByStart(t *testing.T) {
	h := newCLIHarness(t)
	h.mustRun("project", "add", "website")
	h.mustRun("task", "add", "website", "header",
		"--start", "2026-03-09T09:00:00Z", "--end", "2026-03-09T10:00:00Z")
	h.mustRun("task", "add", "website", "footer",
		"--start", "2026-03-10T09:00:00Z", "--end", "2026-03-10T09:30:00Z")

	path := filepath.Join(h.dir, "out.json")
	out := h.mustRun("export", "-o", path, "-s", "2026-03-10T00:00:00Z")
	assert.Contains(t, out, "Exported 1 intervals")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"task": "footer"`)
	assert.NotContains(t, string(data), `"header"`)
}

func TestExportUnknownFormat(t *testing.T) {
	h := newCLIHarness(t)
	_, err := h.run("export", "-o", filepath.Join(h.dir, "out.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

// ============================================================
// version
// ============================================================

func TestVersion(t *testing.T) {
	h := newCLIHarness(t)
	out := h.mustRun("version")
	assert.Contains(t, out, "dev")
}

func TestStartStateSurvivesUnusableDataDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	r := &runtime{
		cfg: &config.Config{
			DBPath:   filepath.Join(blocker, "tickr.db"),
			LogFile:  filepath.Join(blocker, "tickr.log"),
			LogLevel: "info",
		},
		now: func() time.Time { return referenceTime },
	}
	state, cleanup := startState(r)
	defer cleanup()

	require.NotNil(t, state)
	assert.Contains(t, state.Status(), "Storage unavailable")
	assert.Contains(t, state.Status(), "Logging disabled")
}

func TestStartStateOpensStoreAndLog(t *testing.T) {
	dir := t.TempDir()
	r := &runtime{
		cfg: &config.Config{
			DBPath:   filepath.Join(dir, "tickr.db"),
			LogFile:  filepath.Join(dir, "logs", "tickr.log"),
			LogLevel: "info",
		},
		now: func() time.Time { return referenceTime },
	}
	state, cleanup := startState(r)
	cleanup()

	assert.Empty(t, state.Status())
	data, err := os.ReadFile(r.cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tickr started")
}
