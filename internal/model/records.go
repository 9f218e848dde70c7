package model

import (
	"github.com/mitchellh/mapstructure"
)

// sectionRecord is the loosely-typed wire shape of one extracted section, as
// produced by the document-extraction collaborator.
type sectionRecord struct {
	CourseName string `mapstructure:"course_name"`
	CourseCode string `mapstructure:"course_code"`
	Credits    int    `mapstructure:"credits"`
	Faculty    string `mapstructure:"faculty"`
	Slot       string `mapstructure:"slot"`
	Day        string `mapstructure:"day"`
	StartTime  string `mapstructure:"start_time"`
	EndTime    string `mapstructure:"end_time"`
}

// SectionsFromRecords decodes raw extraction records into sections. Malformed
// records (unknown day, bad clock, empty window) are skipped rather than
// failing the whole catalog: upstream extraction is noisy and a partial
// catalog still yields a useful solve.
func SectionsFromRecords(records []map[string]any) []Section {
	sections := []Section{}
	for _, raw := range records {
		var record sectionRecord
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &record,
		})
		if err != nil {
			continue
		}
		if err := decoder.Decode(raw); err != nil {
			continue
		}

		section, ok := record.toSection()
		if !ok {
			continue
		}
		sections = append(sections, section)
	}
	return sections
}

func (record sectionRecord) toSection() (Section, bool) {
	day, err := ParseDay(record.Day)
	if err != nil {
		return Section{}, false
	}
	start, err := ParseClock(record.StartTime)
	if err != nil {
		return Section{}, false
	}
	end, err := ParseClock(record.EndTime)
	if err != nil {
		return Section{}, false
	}
	if record.CourseName == "" || start >= end {
		return Section{}, false
	}

	return Section{
		Course:     record.CourseName,
		Code:       record.CourseCode,
		Credits:    record.Credits,
		Instructor: record.Faculty,
		Slot:       record.Slot,
		Day:        day,
		Start:      start,
		End:        end,
	}, true
}
