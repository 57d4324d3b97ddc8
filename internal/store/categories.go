package store

import "fmt"

const categoryColumns = `id, name, color`

func (s *Store) CreateCategory(name, color string) (*Category, error) {
	res, err := s.db.Exec(
		`INSERT INTO categories (name, color) VALUES (?, ?)`, name, color,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetCategory(id)
}

func (s *Store) GetCategory(id int64) (*Category, error) {
	c, err := scanCategory(s.db.QueryRow(
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, wrapNotFound(err))
	}
	return c, nil
}

func (s *Store) GetCategoryByName(name string) (*Category, error) {
	c, err := scanCategory(s.db.QueryRow(
		`SELECT `+categoryColumns+` FROM categories WHERE name = ?`, name,
	))
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", name, wrapNotFound(err))
	}
	return c, nil
}

// ListCategories returns all categories sorted by name, ignoring case.
func (s *Store) ListCategories() ([]Category, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM categories ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func scanCategory(r rowScanner) (*Category, error) {
	c := &Category{}
	if err := r.Scan(&c.ID, &c.Name, &c.Color); err != nil {
		return nil, err
	}
	return c, nil
}
