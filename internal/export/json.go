package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Intervals  []jsonEntry `json:"intervals"`
}

type jsonEntry struct {
	Project     string `json:"project"`
	Task        string `json:"task"`
	Category    string `json:"category,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time,omitempty"`
	Running     bool   `json:"running,omitempty"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
}

func WriteJSON(w io.Writer, rows []Row, exportedAt time.Time) error {
	export := jsonExport{
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Count:      len(rows),
	}

	for _, r := range rows {
		e := jsonEntry{
			Project:     r.Project,
			Task:        r.Task,
			Category:    r.Category,
			StartTime:   r.Start.Local().Format(time.RFC3339),
			Running:     r.End == nil,
			DurationSec: r.DurationSec,
			Duration:    formatDuration(r.DurationSec),
		}
		if r.End != nil {
			e.EndTime = r.End.Local().Format(time.RFC3339)
		}
		export.Intervals = append(export.Intervals, e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return nil
}

func ToJSON(rows []Row, exportedAt time.Time, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, rows, exportedAt); err != nil {
		return err
	}
	return f.Close()
}
