package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Status tags the outcome of a solve.
type Status string

const (
	// StatusStrict is a success honoring the leave day and every stated
	// instructor preference.
	StatusStrict Status = "success"
	// StatusAdjusted is a success that loosened something: an instructor
	// preference was swapped, or classes were placed on the leave day.
	StatusAdjusted Status = "success_with_adjustment"
	// StatusConflict means no assignment exists even after relaxation.
	StatusConflict Status = "conflict"
)

// ConflictKind classifies one diagnosed conflict.
type ConflictKind string

const (
	// ConflictNoSections: the catalog has no sections at all for a course.
	ConflictNoSections ConflictKind = "no_sections"
	// ConflictLeaveDayOnly: a course's sections all fall on the leave day.
	ConflictLeaveDayOnly ConflictKind = "leave_day_only"
	// ConflictHardOverlap: every option combination of a course pair clashes.
	ConflictHardOverlap ConflictKind = "hard_overlap"
	// ConflictHigherOrder: no single pair is unconditionally incompatible;
	// the failure is a combination effect of three or more courses.
	ConflictHigherOrder ConflictKind = "higher_order"
)

// Placement is one scheduled meeting in a produced timetable.
type Placement struct {
	Course     string `json:"course_name" csv:"course_name"`
	Code       string `json:"course_code" csv:"course_code"`
	Instructor string `json:"faculty" csv:"faculty"`
	Day        string `json:"day" csv:"day"`
	Start      string `json:"start_time" csv:"start_time"`
	End        string `json:"end_time" csv:"end_time"`
	Venue      string `json:"venue" csv:"venue"`
}

// Clash is one concrete example of two overlapping segments.
type Clash struct {
	Course      string `json:"course"`
	OtherCourse string `json:"other_course"`
	Day         string `json:"day"`
	Time        string `json:"time"`
}

// ConflictDetail is one diagnosed reason the selection cannot be scheduled.
type ConflictDetail struct {
	Kind         ConflictKind `json:"type"`
	Courses      []string     `json:"courses"`
	Message      string       `json:"message"`
	ExampleClash *Clash       `json:"example_clash,omitempty"`
}

// SlotView is one admissible meeting of a course, flattened for display.
type SlotView struct {
	Day        string `json:"day"`
	Time       string `json:"time"`
	Slot       string `json:"slot"`
	Instructor string `json:"faculty"`
}

// Result is the tagged outcome of a solve: a timetable on success, a
// diagnosis and a suggestion on conflict.
type Result struct {
	Status         Status                `json:"status"`
	Timetable      []Placement           `json:"timetable,omitempty"`
	Note           string                `json:"message,omitempty"`
	Conflicts      []ConflictDetail      `json:"conflict_details,omitempty"`
	Suggestion     string                `json:"suggestion,omitempty"`
	AvailableSlots map[string][]SlotView `json:"all_possible_slots,omitempty"`
}

// formatAssignment flattens a complete assignment into placement rows sorted
// by day, start time and course name.
func formatAssignment(assignment map[string]Option) []Placement {
	segments := []Section{}
	for _, option := range assignment {
		segments = append(segments, option...)
	}
	slices.SortFunc(segments, func(a, b Section) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		} else if a.Start != b.Start {
			return a.Start - b.Start
		}
		return strings.Compare(a.Course, b.Course)
	})

	return lo.Map(segments, func(segment Section, _ int) Placement {
		return Placement{
			Course:     segment.Course,
			Code:       segment.Code,
			Instructor: segment.Instructor,
			Day:        segment.Day.String(),
			Start:      Clock(segment.Start),
			End:        Clock(segment.End),
			Venue:      segment.Slot,
		}
	})
}

// availableSlots flattens a domain into the unique per-course slot views
// shown to the user alongside any outcome.
func availableSlots(courseDomain domain) map[string][]SlotView {
	views := map[string][]SlotView{}
	for course, options := range courseDomain {
		seen := map[SlotView]struct{}{}
		flat := []SlotView{}
		for _, segment := range lo.Flatten(lo.Map(options, func(option Option, _ int) []Section { return option })) {
			view := SlotView{
				Day:        segment.Day.String(),
				Time:       Clock(segment.Start) + " - " + Clock(segment.End),
				Slot:       segment.Slot,
				Instructor: segment.Instructor,
			}
			if _, ok := seen[view]; ok {
				continue
			}
			seen[view] = struct{}{}
			flat = append(flat, view)
		}
		views[course] = flat
	}
	return views
}
