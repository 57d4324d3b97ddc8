package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"Project", "Task", "Category", "Start Time", "End Time", "Duration (seconds)"}

func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		end := "Running"
		if r.End != nil {
			end = r.End.Local().Format(time.RFC3339)
		}
		record := []string{
			r.Project,
			r.Task,
			r.Category,
			r.Start.Local().Format(time.RFC3339),
			end,
			strconv.FormatInt(r.DurationSec, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ToCSV(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
