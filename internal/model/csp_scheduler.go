package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type cspScheduler struct {
	fanOut int
}

func (scheduler *cspScheduler) Solve(request Request) Result {
	strict := buildDomain(request.Catalog, request.Courses, request.LeaveDay, request.Preferences)

	//** Validate every course has at least one admissible option, telling a
	//** course missing from the catalog apart from one eaten by the leave day
	missing := []ConflictDetail{}
	leaveDayOnly := []string{}
	for _, course := range request.Courses {
		if len(strict[course]) > 0 {
			continue
		}
		if !sectionsExist(request.Catalog, course) {
			missing = append(missing, ConflictDetail{
				Kind:    ConflictNoSections,
				Courses: []string{course},
				Message: fmt.Sprintf("No sections found for '%s'.", course),
			})
		} else {
			leaveDayOnly = append(leaveDayOnly, course)
		}
	}
	if len(missing) > 0 {
		return Result{
			Status:     StatusConflict,
			Conflicts:  missing,
			Suggestion: "Check the catalog data or remove the missing subjects.",
		}
	}

	//** Strict pass, skipped when the leave day already emptied a domain
	if len(leaveDayOnly) == 0 {
		if assignment, ok := solve(request.Courses, strict); ok {
			return scheduler.successResult(request, assignment, strict)
		}
	}

	//** Relaxed pass: same search over the unfiltered domain
	if request.LeaveDay != nil {
		relaxed := buildDomain(request.Catalog, request.Courses, nil, request.Preferences)
		if assignment, ok := solve(request.Courses, relaxed); ok {
			note := fmt.Sprintf("Couldn't fit all classes off your leave day (%s). Adjusted the schedule.", *request.LeaveDay)
			if len(leaveDayOnly) > 0 {
				note = fmt.Sprintf(
					"%s available only on your leave day (%s). Adjusted the schedule.",
					strings.Join(leaveDayOnly, ", "), *request.LeaveDay,
				)
			}
			return Result{
				Status:         StatusAdjusted,
				Timetable:      formatAssignment(assignment),
				Note:           note,
				AvailableSlots: availableSlots(relaxed),
			}
		}
	}

	//** Both passes failed: diagnose pairs over the strict domain; courses
	//** emptied by the leave day are reported separately
	details := lo.Map(leaveDayOnly, func(course string, _ int) ConflictDetail {
		return ConflictDetail{
			Kind:    ConflictLeaveDayOnly,
			Courses: []string{course},
			Message: fmt.Sprintf("'%s' is only available on your requested leave day (%s).", course, *request.LeaveDay),
		}
	})
	details = append(details, diagnose(request.Courses, strict)...)
	if len(details) == 0 {
		details = append(details, higherOrderDetail(request.Courses))
	}
	return Result{
		Status:         StatusConflict,
		Conflicts:      details,
		Suggestion:     suggestRemedy(request, strict),
		AvailableSlots: availableSlots(strict),
	}
}

func (scheduler *cspScheduler) IsSolvable(request Request) bool {
	strict := buildDomain(request.Catalog, request.Courses, request.LeaveDay, request.Preferences)
	for _, course := range request.Courses {
		if len(strict[course]) == 0 {
			return false
		}
	}
	_, ok := solve(request.Courses, strict)
	return ok
}

// successResult classifies a strict-pass success: strict when every stated
// instructor preference was honored, adjusted with a note otherwise.
func (scheduler *cspScheduler) successResult(request Request, assignment map[string]Option, strict domain) Result {
	swapped := []string{}
	for _, course := range request.Courses {
		preferred := request.Preferences[course]
		if preferred == "" {
			continue
		}
		if assigned := assignment[course].Instructor(); assigned != preferred {
			swapped = append(swapped, fmt.Sprintf("%s (%s)", course, assigned))
		}
	}

	result := Result{
		Status:         StatusStrict,
		Timetable:      formatAssignment(assignment),
		AvailableSlots: availableSlots(strict),
	}
	if len(swapped) > 0 {
		result.Status = StatusAdjusted
		result.Note = fmt.Sprintf("Auto-adjusted instructors to fit the schedule: %s.", strings.Join(swapped, ", "))
	}
	return result
}

// search holds the state of one backtracking invocation. It is owned by a
// single solve call and discarded afterwards.
type search struct {
	courses    []string
	domain     domain
	assignment map[string]Option
}

// solve runs an exhaustive depth-first backtracking search over the domain
// and returns a complete assignment, or false when no consistent combination
// of options exists.
func solve(courses []string, courseDomain domain) (map[string]Option, bool) {
	state := &search{
		courses:    courses,
		domain:     courseDomain,
		assignment: map[string]Option{},
	}
	if !state.backtrack() {
		return nil, false
	}
	return state.assignment, true
}

func (state *search) backtrack() bool {
	if len(state.assignment) == len(state.courses) {
		return true
	}

	course := state.nextCourse()
	for _, option := range state.domain[course] {
		if !state.consistent(option) {
			continue
		}
		state.assignment[course] = option
		if state.backtrack() {
			return true
		}
		delete(state.assignment, course)
	}
	return false
}

// nextCourse picks the unassigned course with the fewest remaining options
// (most-constrained-variable), breaking ties by selection order. Failing on
// the most restrictive course first prunes the search tree earliest.
func (state *search) nextCourse() string {
	unassigned := lo.Filter(state.courses, func(course string, _ int) bool {
		_, assigned := state.assignment[course]
		return !assigned
	})
	return lo.MinBy(unassigned, func(course, minimum string) bool {
		return len(state.domain[course]) < len(state.domain[minimum])
	})
}

// consistent checks a candidate option against every committed option: a
// same-day time overlap rejects it, and so does a same-day overlap between
// segments sharing an instructor, which also catches one instructor
// double-booked across two different courses.
func (state *search) consistent(candidate Option) bool {
	for _, committed := range state.assignment {
		if _, _, clash := candidate.clashesWith(committed); clash {
			return false
		}
	}
	return true
}
