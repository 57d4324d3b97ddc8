package store

import (
	"database/sql"
	"fmt"
)

const tickrColumns = `id, project_id, description, category_id, created_at`

func (s *Store) CreateTickr(projectID int64, description string, categoryID *int64) (*Tickr, error) {
	res, err := s.db.Exec(
		`INSERT INTO tickrs (project_id, description, category_id, created_at) VALUES (?, ?, ?, ?)`,
		projectID, description, categoryID, s.timestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert tickr: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTickr(id)
}

// GetTickr returns the tickr with its intervals loaded.
func (s *Store) GetTickr(id int64) (*Tickr, error) {
	t, err := scanTickr(s.db.QueryRow(
		`SELECT `+tickrColumns+` FROM tickrs WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("get tickr %d: %w", id, wrapNotFound(err))
	}
	t.Intervals, err = s.intervalsFor(t.ID)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTickrs returns tickrs in creation order, each with its intervals.
func (s *Store) ListTickrs(scope TickrScope) ([]Tickr, error) {
	query := `SELECT ` + tickrColumns + ` FROM tickrs`
	var args []any
	if scope.ProjectID != nil {
		query += ` WHERE project_id = ?`
		args = append(args, *scope.ProjectID)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickrs: %w", err)
	}

	var tickrs []Tickr
	for rows.Next() {
		t, err := scanTickr(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		tickrs = append(tickrs, *t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// One connection: intervals are queried after the tickr cursor is closed.
	byID, err := s.intervalsByTickr(scope)
	if err != nil {
		return nil, err
	}
	for i := range tickrs {
		tickrs[i].Intervals = byID[tickrs[i].ID]
	}
	return tickrs, nil
}

func (s *Store) UpdateTickr(id int64, description string, categoryID *int64) error {
	res, err := s.db.Exec(
		`UPDATE tickrs SET description = ?, category_id = ? WHERE id = ?`,
		description, categoryID, id,
	)
	if err != nil {
		return fmt.Errorf("update tickr %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("update tickr %d", id))
}

// DeleteTickr removes the tickr and, by cascade, its intervals.
func (s *Store) DeleteTickr(id int64) error {
	res, err := s.db.Exec(`DELETE FROM tickrs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete tickr %d: %w", id, err)
	}
	return requireAffected(res, fmt.Sprintf("delete tickr %d", id))
}

func scanTickr(r rowScanner) (*Tickr, error) {
	t := &Tickr{}
	var categoryID sql.NullInt64
	var createdAt string
	if err := r.Scan(&t.ID, &t.ProjectID, &t.Description, &categoryID, &createdAt); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := categoryID.Int64
		t.CategoryID = &id
	}
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return t, nil
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
