package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const intervalColumns = `id, tickr_id, start_time, end_time`

// StartInterval opens a new interval on the tickr at the current time.
func (s *Store) StartInterval(tickrID int64) error {
	t, err := s.GetTickr(tickrID)
	if err != nil {
		return fmt.Errorf("start interval: %w", err)
	}
	if t.Running() {
		return fmt.Errorf("start interval on tickr %d: %w", tickrID, ErrAlreadyRunning)
	}
	_, err = s.db.Exec(
		`INSERT INTO intervals (tickr_id, start_time) VALUES (?, ?)`,
		tickrID, s.timestamp(),
	)
	if err != nil {
		return fmt.Errorf("start interval: %w", err)
	}
	return nil
}

// EndOpenInterval closes the tickr's open interval. It is a no-op when
// nothing is open.
func (s *Store) EndOpenInterval(tickrID int64) error {
	_, err := s.db.Exec(
		`UPDATE intervals SET end_time = ? WHERE tickr_id = ? AND end_time IS NULL`,
		s.timestamp(), tickrID,
	)
	if err != nil {
		return fmt.Errorf("end interval on tickr %d: %w", tickrID, err)
	}
	return nil
}

// EndAllOpen closes every open interval and returns how many were closed.
func (s *Store) EndAllOpen() (int64, error) {
	res, err := s.db.Exec(
		`UPDATE intervals SET end_time = ? WHERE end_time IS NULL`, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("end open intervals: %w", err)
	}
	return res.RowsAffected()
}

// AddInterval records an interval with explicit bounds. A nil end leaves
// it open.
func (s *Store) AddInterval(tickrID int64, start time.Time, end *time.Time) (*Interval, error) {
	if end != nil && end.Before(start) {
		return nil, errors.New("add interval: end before start")
	}
	var endStr *string
	if end != nil {
		v := formatTime(*end)
		endStr = &v
	}
	res, err := s.db.Exec(
		`INSERT INTO intervals (tickr_id, start_time, end_time) VALUES (?, ?, ?)`,
		tickrID, formatTime(start), endStr,
	)
	if err != nil {
		return nil, fmt.Errorf("add interval: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.getInterval(id)
}

func (s *Store) getInterval(id int64) (*Interval, error) {
	iv, err := scanInterval(s.db.QueryRow(
		`SELECT `+intervalColumns+` FROM intervals WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("get interval %d: %w", id, wrapNotFound(err))
	}
	return iv, nil
}

func (s *Store) intervalsFor(tickrID int64) ([]Interval, error) {
	byID, err := s.queryIntervals(
		`SELECT `+intervalColumns+` FROM intervals WHERE tickr_id = ? ORDER BY start_time, id`, tickrID,
	)
	if err != nil {
		return nil, err
	}
	return byID[tickrID], nil
}

func (s *Store) intervalsByTickr(scope TickrScope) (map[int64][]Interval, error) {
	if scope.ProjectID == nil {
		return s.queryIntervals(`SELECT ` + intervalColumns + ` FROM intervals ORDER BY start_time, id`)
	}
	return s.queryIntervals(`
		SELECT i.id, i.tickr_id, i.start_time, i.end_time
		FROM intervals i
		JOIN tickrs t ON t.id = i.tickr_id
		WHERE t.project_id = ?
		ORDER BY i.start_time, i.id`, *scope.ProjectID)
}

func (s *Store) queryIntervals(query string, args ...any) (map[int64][]Interval, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list intervals: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]Interval)
	for rows.Next() {
		iv, err := scanInterval(rows)
		if err != nil {
			return nil, err
		}
		out[iv.TickrID] = append(out[iv.TickrID], *iv)
	}
	return out, rows.Err()
}

func scanInterval(r rowScanner) (*Interval, error) {
	iv := &Interval{}
	var start string
	var end sql.NullString
	if err := r.Scan(&iv.ID, &iv.TickrID, &start, &end); err != nil {
		return nil, err
	}
	var err error
	if iv.StartTime, err = parseTime(start); err != nil {
		return nil, err
	}
	if end.Valid {
		t, err := parseTime(end.String)
		if err != nil {
			return nil, err
		}
		iv.EndTime = &t
	}
	return iv, nil
}
