package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/planwiz/planwiz/internal/model"
)

// ExportTimetable writes a solved timetable to a CSV file, one row per
// scheduled meeting in the timetable's day/time order.
func ExportTimetable(path string, timetable []model.Placement) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&timetable, file); err != nil {
		return fmt.Errorf("cannot write timetable to %s: %w", path, err)
	}
	return nil
}
