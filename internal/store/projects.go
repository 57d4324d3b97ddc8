package store

import (
	"fmt"
	"strings"
	"time"
)

const projectColumns = `id, name, created_at`

func (s *Store) CreateProject(name string) (*Project, error) {
	res, err := s.db.Exec(
		`INSERT INTO projects (name, created_at) VALUES (?, ?)`,
		name, s.timestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetProject(id)
}

func (s *Store) GetProject(id int64) (*Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, wrapNotFound(err))
	}
	return p, nil
}

func (s *Store) GetProjectByName(name string) (*Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE name = ?`, name,
	))
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", name, wrapNotFound(err))
	}
	return p, nil
}

func (s *Store) ListProjects() ([]Project, error) {
	return s.queryProjects(`SELECT ` + projectColumns + ` FROM projects ORDER BY name COLLATE NOCASE, id`)
}

// SearchProjects returns projects whose name contains query, ignoring case.
func (s *Store) SearchProjects(query string) ([]Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListProjects()
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	return s.queryProjects(
		`SELECT `+projectColumns+` FROM projects
		 WHERE lower(name) LIKE ? ESCAPE '\'
		 ORDER BY name COLLATE NOCASE, id`, pattern,
	)
}

// ProjectsWorkedOn returns the distinct projects having at least one
// interval that starts in [from, to).
func (s *Store) ProjectsWorkedOn(from, to time.Time) ([]Project, error) {
	return s.queryProjects(`
		SELECT DISTINCT p.id, p.name, p.created_at
		FROM projects p
		JOIN tickrs t    ON t.project_id = p.id
		JOIN intervals i ON i.tickr_id = t.id
		WHERE i.start_time >= ? AND i.start_time < ?
		ORDER BY p.name COLLATE NOCASE, p.id`,
		formatTime(from), formatTime(to),
	)
}

func (s *Store) queryProjects(query string, args ...any) ([]Project, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(r rowScanner) (*Project, error) {
	p := &Project{}
	var createdAt string
	if err := r.Scan(&p.ID, &p.Name, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return p, nil
}

func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}
