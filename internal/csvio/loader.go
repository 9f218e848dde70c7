// Package csvio loads section catalogs from CSV files and exports solved
// timetables back to CSV. It is boundary I/O only: extraction of section
// records from source documents happens upstream, and the core consumes the
// loaded catalog as an in-memory slice.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/planwiz/planwiz/internal/model"
)

type sectionRow struct {
	CourseName string `csv:"course_name"`
	CourseCode string `csv:"course_code"`
	Credits    int    `csv:"credits"`
	Faculty    string `csv:"faculty"`
	Slot       string `csv:"slot"`
	Day        string `csv:"day"`
	StartTime  string `csv:"start_time"`
	EndTime    string `csv:"end_time"`
}

// LoadCatalog reads a section catalog from a CSV file, preserving row order.
// Rows that do not form a valid section (unknown day, malformed clock,
// empty time window) are skipped, matching the core's tolerance for noisy
// extraction output.
func LoadCatalog(path string) ([]model.Section, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %s: %w", path, err)
	}
	defer file.Close()

	rows := []*sectionRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse catalog %s: %w", path, err)
	}

	sections := []model.Section{}
	for _, row := range rows {
		day, err := model.ParseDay(row.Day)
		if err != nil {
			continue
		}
		start, err := model.ParseClock(row.StartTime)
		if err != nil {
			continue
		}
		end, err := model.ParseClock(row.EndTime)
		if err != nil || start >= end || row.CourseName == "" {
			continue
		}

		sections = append(sections, model.Section{
			Course:     row.CourseName,
			Code:       row.CourseCode,
			Credits:    row.Credits,
			Instructor: row.Faculty,
			Slot:       row.Slot,
			Day:        day,
			Start:      start,
			End:        end,
		})
	}
	return sections, nil
}
