package store

import "fmt"

// Preference keys persisted between sessions.
const (
	SettingWorkedRange   = "worked_range"
	SettingTimelineRange = "timeline_range"
)

// GetSetting returns the stored value for key, or fallback when the key is
// absent.
func (s *Store) GetSetting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		err = wrapNotFound(err)
		if isNotFound(err) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}
