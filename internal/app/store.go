package app

import (
	"time"

	"github.com/sadopc/tickr/internal/store"
)

// Store is the persistence the engine drives. *store.Store satisfies it.
type Store interface {
	ListProjects() ([]store.Project, error)
	SearchProjects(query string) ([]store.Project, error)
	GetProject(id int64) (*store.Project, error)
	CreateProject(name string) (*store.Project, error)
	ProjectsWorkedOn(from, to time.Time) ([]store.Project, error)

	ListTickrs(scope store.TickrScope) ([]store.Tickr, error)
	GetTickr(id int64) (*store.Tickr, error)
	CreateTickr(projectID int64, description string, categoryID *int64) (*store.Tickr, error)
	UpdateTickr(id int64, description string, categoryID *int64) error
	DeleteTickr(id int64) error

	StartInterval(tickrID int64) error
	EndOpenInterval(tickrID int64) error

	ListCategories() ([]store.Category, error)
	GetCategory(id int64) (*store.Category, error)
	CreateCategory(name, color string) (*store.Category, error)

	GetSetting(key, fallback string) (string, error)
	SetSetting(key, value string) error
}

var _ Store = (*store.Store)(nil)
