package model

import "context"

// Request is one self-contained solve problem: the read-only catalog, the
// chosen courses, an optional leave day and optional per-course instructor
// preferences. Requests share no state, so any number of them may be solved
// concurrently.
type Request struct {
	Courses     []string
	Catalog     []Section
	LeaveDay    *Day
	Preferences map[string]string
}

type Scheduler interface {
	// Solve runs the strict pass, the leave-day-relaxed pass and, when both
	// fail, the conflict diagnosis. It never returns a bare failure: a
	// conflict outcome always carries details and a suggestion.
	Solve(request Request) Result

	// IsSolvable is the cheap strict-only check: no relaxation, no
	// diagnosis. Used to screen one candidate course against an existing
	// selection.
	IsSolvable(request Request) bool

	// FilterAddable reports which candidate courses can still be added to
	// the request's selection, screening each candidate concurrently with
	// bounded fan-out. The returned courses keep the candidates' order.
	FilterAddable(ctx context.Context, request Request, candidates []string) []string
}

func NewScheduler() Scheduler {
	return &cspScheduler{fanOut: defaultFanOut}
}
