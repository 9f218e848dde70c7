package model

import (
	"fmt"

	"github.com/samber/lo"
)

// diagnose inspects every unordered pair of selected courses and reports the
// pairs that are unconditionally incompatible: every combination of one
// option from each clashes. The example clash attached to a pair is the
// first one found, not necessarily minimal. An empty report means no single
// pair explains the failure.
func diagnose(courses []string, courseDomain domain) []ConflictDetail {
	details := []ConflictDetail{}

	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			first, second := courses[i], courses[j]
			if len(courseDomain[first]) == 0 || len(courseDomain[second]) == 0 {
				continue
			}

			clash, unconditional := pairAlwaysClashes(courseDomain[first], courseDomain[second])
			if !unconditional {
				continue
			}
			details = append(details, ConflictDetail{
				Kind:    ConflictHardOverlap,
				Courses: []string{first, second},
				Message: fmt.Sprintf("'%s' and '%s' always overlap.", first, second),
				ExampleClash: &Clash{
					Course:      first,
					OtherCourse: second,
					Day:         clash.day.String(),
					Time:        Clock(clash.start) + " - " + Clock(clash.end),
				},
			})
		}
	}

	return details
}

// higherOrderDetail is the fallback narrative for a failure with no
// unconditionally conflicting pair: the infeasibility is a combination
// effect of three or more courses. Best-effort text, not a minimal
// conflict-set computation.
func higherOrderDetail(courses []string) ConflictDetail {
	return ConflictDetail{
		Kind:    ConflictHigherOrder,
		Courses: courses,
		Message: "No single pair of subjects always overlaps; the selection fails only in combination.",
	}
}

type clashExample struct {
	day   Day
	start int
	end   int
}

// pairAlwaysClashes is exhaustive over the two option lists: it reports true
// only when no option pair can coexist.
func pairAlwaysClashes(options []Option, otherOptions []Option) (clashExample, bool) {
	var example *clashExample
	for _, option := range options {
		for _, other := range otherOptions {
			segment, _, clash := option.clashesWith(other)
			if !clash {
				return clashExample{}, false
			}
			if example == nil {
				example = &clashExample{day: segment.Day, start: segment.Start, end: segment.End}
			}
		}
	}
	return *example, true
}

// suggestRemedy proposes the first fix that makes the selection solvable:
// attending on the leave day, then dropping one course at a time in
// selection order. These are best-effort suggestions, not a minimal
// conflict-set computation.
func suggestRemedy(request Request, strict domain) string {
	if request.LeaveDay != nil {
		relaxed := buildDomain(request.Catalog, request.Courses, nil, request.Preferences)
		if _, ok := solve(request.Courses, relaxed); ok {
			return fmt.Sprintf(
				"A valid timetable exists if you are willing to attend classes on %s (your requested leave day).",
				*request.LeaveDay,
			)
		}
	}

	for _, dropped := range request.Courses {
		remaining := lo.Filter(request.Courses, func(course string, _ int) bool { return course != dropped })
		if _, ok := solve(remaining, strict); ok {
			return fmt.Sprintf("The conflict resolves if you remove '%s'.", dropped)
		}
	}

	return "The selected subjects are heavily conflicted. Try selecting fewer subjects."
}
