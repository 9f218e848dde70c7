package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Day is a teaching day of the week. Sunday is not a teaching day.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (day Day) String() string {
	if day < Monday || day > Saturday {
		return fmt.Sprintf("Day(%d)", int(day))
	}
	return dayNames[day]
}

func ParseDay(name string) (Day, error) {
	for i, dayName := range dayNames {
		if strings.EqualFold(name, dayName) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", name)
}

// Section is one scheduled meeting of a course: one time window on one day,
// under one instructor and slot label. Start and End are minutes of the day,
// compared as half-open [Start, End) intervals.
type Section struct {
	Course     string
	Code       string
	Credits    int
	Instructor string
	Slot       string
	Day        Day
	Start      int
	End        int
}

// overlaps reports whether two sections collide on the same day.
func (section Section) overlaps(other Section) bool {
	return section.Day == other.Day && section.Start < other.End && other.Start < section.End
}

// Option is an atomic choice for a course: every segment belongs to the same
// (course, slot, instructor) group, and the whole list is assigned or
// rejected as one unit.
type Option []Section

func (option Option) Course() string {
	return option[0].Course
}

func (option Option) Instructor() string {
	return option[0].Instructor
}

func (option Option) Slot() string {
	return option[0].Slot
}

func (option Option) meetsOn(day Day) bool {
	return lo.SomeBy(option, func(segment Section) bool { return segment.Day == day })
}

// clashesWith reports whether the two options cannot coexist, returning the
// first clashing segment pair. A same-day time overlap is a clash no matter
// who teaches; the same interval test also rejects an instructor
// double-booked across two different courses, since that is again a same-day
// overlap between the instructor's sections.
func (option Option) clashesWith(other Option) (Section, Section, bool) {
	for _, segment := range option {
		for _, otherSegment := range other {
			if segment.overlaps(otherSegment) {
				return segment, otherSegment, true
			}
		}
	}
	return Section{}, Section{}, false
}

// Clock formats a minute of the day as HH:MM.
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock parses an HH:MM clock string into a minute of the day.
func ParseClock(clock string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(strings.TrimSpace(clock), "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock %q", clock)
	}
	return hours*60 + minutes, nil
}
