package model

import (
	"context"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// defaultFanOut bounds the goroutines screening candidate courses so a
// pathological candidate list cannot explode into unbounded tasks.
const defaultFanOut = 8

// FilterAddable screens every candidate course against the current selection
// with the strict-only check. Each screening is an independent solve over the
// shared read-only catalog, so candidates run concurrently with no locking.
func (scheduler *cspScheduler) FilterAddable(ctx context.Context, request Request, candidates []string) []string {
	addable := make([]bool, len(candidates))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(scheduler.fanOut)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			extended := Request{
				Courses:     append(append([]string{}, request.Courses...), candidate),
				Catalog:     request.Catalog,
				LeaveDay:    request.LeaveDay,
				Preferences: request.Preferences,
			}
			addable[i] = scheduler.IsSolvable(extended)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return []string{}
	}

	return lo.Filter(candidates, func(_ string, i int) bool { return addable[i] })
}
