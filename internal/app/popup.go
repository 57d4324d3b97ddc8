package app

import (
	"slices"
	"strings"

	"github.com/sadopc/tickr/internal/hexcolor"
	"github.com/sadopc/tickr/internal/store"
)

// Popup is the modal dialog currently owning input. Exactly one of the
// types below, or nil.
type Popup interface {
	handleKey(s *State, k Key)
}

// CategoryOption is one entry of a category picker. The first entry of
// every picker is "none" with a nil ID.
type CategoryOption struct {
	ID    *int64
	Name  string
	Color string
}

type ProjectOption struct {
	ID   int64
	Name string
}

type EditTickrPopup struct {
	TickrID    int64
	Label      string
	Category   Cursor
	Categories []CategoryOption
}

type CategoryField int

const (
	FieldName CategoryField = iota
	FieldColor
)

type NewCategoryPopup struct {
	Name  string
	Color string
	Field CategoryField
}

type NewTickrField int

const (
	FieldLabel NewTickrField = iota
	FieldProject
	FieldCategory
	FieldStartNow
)

type NewTickrPopup struct {
	Label      string
	Project    Cursor
	Category   Cursor
	Projects   []ProjectOption
	Categories []CategoryOption
	StartNow   bool
	Field      NewTickrField
}

// ConfirmPopup gates a destructive action.
type ConfirmPopup struct {
	Message   string
	onConfirm func(*State)
}

func (s *State) closePopup() {
	s.popup = nil
	s.clearStatus()
}

// categoryOptions snapshots the category table behind a leading "none".
func (s *State) categoryOptions() ([]CategoryOption, bool) {
	categories, err := s.store.ListCategories()
	if err != nil {
		s.fail("Failed to load categories", err)
		return nil, false
	}
	opts := []CategoryOption{{Name: "none"}}
	for _, c := range categories {
		id := c.ID
		opts = append(opts, CategoryOption{ID: &id, Name: c.Name, Color: c.Color})
	}
	return opts, true
}

// ============================================================
// Edit tickr
// ============================================================

func (s *State) openEditPopup() {
	if s.view != ViewTickrDetail {
		return
	}
	if s.detail == nil {
		s.setStatus("No task selected.")
		return
	}
	opts, ok := s.categoryOptions()
	if !ok {
		return
	}
	t := s.detail.tickr
	p := &EditTickrPopup{TickrID: t.ID, Label: t.Description, Categories: opts}
	if t.CategoryID != nil {
		i := slices.IndexFunc(opts, func(o CategoryOption) bool { return o.ID != nil && *o.ID == *t.CategoryID })
		if i >= 0 {
			p.Category.Set(i)
		}
	}
	s.popup = p
}

func (p *EditTickrPopup) handleKey(s *State, k Key) {
	switch {
	case k.Code == KeyEsc:
		s.closePopup()
	case k.Code == KeyEnter:
		s.applyEdit(p)
	case k.Code == KeyUp:
		p.Category.Up(len(p.Categories))
	case k.Code == KeyDown:
		p.Category.Down(len(p.Categories))
	case k.erases():
		p.Label = dropLastRune(p.Label)
	default:
		if r, ok := k.printable(); ok {
			p.Label += string(r)
		}
	}
}

func (s *State) applyEdit(p *EditTickrPopup) {
	label := strings.TrimSpace(p.Label)
	if label == "" {
		s.setStatus("Task label is required.")
		return
	}
	var categoryID *int64
	if i := p.Category.Index(); i < len(p.Categories) {
		categoryID = p.Categories[i].ID
	}
	if err := s.store.UpdateTickr(p.TickrID, label, categoryID); err != nil {
		s.fail("Failed to update task", err)
		return
	}

	s.popup = nil
	s.setStatus("Task updated.")
	s.refreshDetail()
	s.refreshCategoryCache()
	if s.detail != nil {
		switch s.detail.parent {
		case ViewTickrs:
			s.loadTickrs()
		case ViewProjectTickrs:
			s.loadProjectTickrs()
		}
	}
}

// ============================================================
// New category
// ============================================================

func (s *State) openNewCategoryPopup() {
	if s.view != ViewCategories {
		return
	}
	s.popup = &NewCategoryPopup{}
}

func (p *NewCategoryPopup) handleKey(s *State, k Key) {
	field := &p.Name
	if p.Field == FieldColor {
		field = &p.Color
	}
	switch {
	case k.Code == KeyEsc:
		s.closePopup()
	case k.Code == KeyEnter:
		s.applyNewCategory(p)
	case k.Code == KeyTab:
		if p.Field == FieldName {
			p.Field = FieldColor
		} else {
			p.Field = FieldName
		}
	case k.erases():
		*field = dropLastRune(*field)
	default:
		if r, ok := k.printable(); ok {
			*field += string(r)
		}
	}
}

func (s *State) applyNewCategory(p *NewCategoryPopup) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		s.setStatus("Category name is required.")
		return
	}
	color, ok := hexcolor.Normalize(p.Color)
	if !ok {
		s.setStatus("Color must be a 6-digit hex value.")
		return
	}
	if _, err := s.store.CreateCategory(name, color); err != nil {
		s.fail("Failed to create category", err)
		return
	}

	s.popup = nil
	s.setStatus("Category created.")
	s.loadCategories()
	if i := slices.IndexFunc(s.categoryList, func(c store.Category) bool { return c.Name == name }); i >= 0 {
		s.categoryCursor.Set(i)
	}
}

// ============================================================
// New tickr
// ============================================================

func (s *State) openNewTickrPopup() {
	if s.view != ViewProjects && s.view != ViewProjectTickrs {
		return
	}
	projects, err := s.store.ListProjects()
	if err != nil {
		s.fail("Failed to load projects", err)
		return
	}
	if len(projects) == 0 {
		s.setStatus("No projects available.")
		return
	}
	opts, ok := s.categoryOptions()
	if !ok {
		return
	}

	p := &NewTickrPopup{Categories: opts, StartNow: true}
	for _, pr := range projects {
		p.Projects = append(p.Projects, ProjectOption{ID: pr.ID, Name: pr.Name})
	}

	var current *int64
	switch {
	case s.view == ViewProjectTickrs && s.project != nil:
		current = &s.project.ID
	case s.view == ViewProjects && len(s.projects) > 0:
		current = &s.projects[s.projectCursor.Index()].ID
	}
	if current != nil {
		if i := slices.IndexFunc(p.Projects, func(o ProjectOption) bool { return o.ID == *current }); i >= 0 {
			p.Project.Set(i)
		}
	}
	s.popup = p
}

func (p *NewTickrPopup) handleKey(s *State, k Key) {
	switch {
	case k.Code == KeyEsc:
		s.closePopup()
	case k.Code == KeyEnter:
		s.applyNewTickr(p)
	case k.Code == KeyTab:
		p.Field = (p.Field + 1) % (FieldStartNow + 1)
	case k.Code == KeyUp:
		switch p.Field {
		case FieldProject:
			p.Project.Up(len(p.Projects))
		case FieldCategory:
			p.Category.Up(len(p.Categories))
		}
	case k.Code == KeyDown:
		switch p.Field {
		case FieldProject:
			p.Project.Down(len(p.Projects))
		case FieldCategory:
			p.Category.Down(len(p.Categories))
		}
	case k.Code == KeyRune && k.Rune == ' ':
		switch p.Field {
		case FieldStartNow:
			p.StartNow = !p.StartNow
		case FieldLabel:
			p.Label += " "
		}
	case k.erases():
		if p.Field == FieldLabel {
			p.Label = dropLastRune(p.Label)
		}
	default:
		if r, ok := k.printable(); ok && p.Field == FieldLabel {
			p.Label += string(r)
		}
	}
}

func (s *State) applyNewTickr(p *NewTickrPopup) {
	label := strings.TrimSpace(p.Label)
	if label == "" {
		s.setStatus("Task label is required.")
		return
	}
	if p.Project.Index() >= len(p.Projects) {
		s.setStatus("Project selection is required.")
		return
	}
	projectID := p.Projects[p.Project.Index()].ID
	var categoryID *int64
	if i := p.Category.Index(); i < len(p.Categories) {
		categoryID = p.Categories[i].ID
	}

	t, err := s.store.CreateTickr(projectID, label, categoryID)
	if err != nil {
		s.fail("Failed to create task", err)
		return
	}
	s.popup = nil

	if p.StartNow {
		if !s.startExclusive(t.ID) {
			s.refreshAll()
			s.loadView()
			return
		}
		s.setStatus("Task created and started.")
	} else {
		s.setStatus("Task created.")
	}
	s.refreshAll()
	s.loadView()
	s.log.Info("tickr created", "tickr", t.ID, "project", projectID, "started", p.StartNow)
}

// ============================================================
// Confirm
// ============================================================

func (p *ConfirmPopup) handleKey(s *State, k Key) {
	switch {
	case k.Code == KeyEnter, k.Code == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
		s.popup = nil
		if p.onConfirm != nil {
			p.onConfirm(s)
		}
	case k.Code == KeyEsc, k.Code == KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
		s.closePopup()
	}
}
