package model

import (
	"slices"

	"github.com/samber/lo"
)

// domain maps each selected course to its ordered list of admissible options.
type domain map[string][]Option

type optionKey struct {
	course     string
	slot       string
	instructor string
}

// buildDomain groups the catalog into options and filters them against the
// hard leave-day constraint. Passing a nil leaveDay (or running the relaxed
// pass) skips the filter. The result is a pure function of its inputs:
// grouping preserves first-seen catalog order, and the preference sort is
// stable, so identical inputs always yield identical ordered domains.
func buildDomain(catalog []Section, selection []string, leaveDay *Day, preferences map[string]string) domain {
	selected := lo.SliceToMap(selection, func(course string) (string, struct{}) { return course, struct{}{} })

	//** Group sections into atomic options by (course, slot, instructor)
	order := []optionKey{}
	groups := map[optionKey]Option{}
	for _, section := range catalog {
		if _, ok := selected[section.Course]; !ok {
			continue
		}
		key := optionKey{section.Course, section.Slot, section.Instructor}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], section)
	}

	//** Apply the leave-day filter: an option with any segment on the leave
	//** day is dropped whole, never truncated
	courseDomain := domain{}
	for _, course := range selection {
		courseDomain[course] = []Option{}
	}
	for _, key := range order {
		option := groups[key]
		if leaveDay != nil && option.meetsOn(*leaveDay) {
			continue
		}
		courseDomain[key.course] = append(courseDomain[key.course], option)
	}

	//** Sort each course's options so preferred-instructor matches come first
	for course, options := range courseDomain {
		preferred := preferences[course]
		if preferred == "" {
			continue
		}
		slices.SortStableFunc(options, func(a, b Option) int {
			return preferenceRank(a, preferred) - preferenceRank(b, preferred)
		})
	}

	return courseDomain
}

func preferenceRank(option Option, preferred string) int {
	if option.Instructor() == preferred {
		return 0
	}
	return 1
}

// sectionsExist reports whether the catalog contains any section at all for
// the given course, regardless of day. Used to tell "course absent from the
// catalog" apart from "course filtered out by the leave day".
func sectionsExist(catalog []Section, course string) bool {
	return lo.SomeBy(catalog, func(section Section) bool { return section.Course == course })
}
