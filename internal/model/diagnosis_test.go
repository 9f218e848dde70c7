package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	t.Run("Unconditionally incompatible pair is reported with an example", func(t *testing.T) {
		//** Arrange: every Physics option overlaps every Math option
		catalog := []Section{
			section("Physics", "A1", "Dr. Rao", Monday, "09:00", "10:00"),
			section("Physics", "A2", "Dr. Rao", Monday, "09:30", "10:30"),
			section("Math", "B1", "Dr. Iyer", Monday, "09:45", "10:15"),
			section("French", "F1", "Dr. Blanc", Friday, "09:00", "10:00"),
		}
		courses := []string{"Physics", "Math", "French"}
		courseDomain := buildDomain(catalog, courses, nil, nil)

		//** Act
		details := diagnose(courses, courseDomain)

		//** Assert: French conflicts with nobody
		require.Len(t, details, 1)
		assert.Equal(t, ConflictHardOverlap, details[0].Kind)
		assert.Equal(t, []string{"Physics", "Math"}, details[0].Courses)
		require.NotNil(t, details[0].ExampleClash)
		assert.Equal(t, "Monday", details[0].ExampleClash.Day)
	})

	t.Run("A conditionally compatible pair is not reported", func(t *testing.T) {
		catalog := []Section{
			section("Physics", "A1", "Dr. Rao", Monday, "09:00", "10:00"),
			section("Physics", "A2", "Dr. Sen", Tuesday, "09:00", "10:00"),
			section("Math", "B1", "Dr. Iyer", Monday, "09:00", "10:00"),
		}
		courses := []string{"Physics", "Math"}

		details := diagnose(courses, buildDomain(catalog, courses, nil, nil))

		assert.Empty(t, details)
	})

	t.Run("Three pairwise-compatible courses failing jointly yield a higher-order report", func(t *testing.T) {
		//** Arrange: two time slots, three courses; any pair fits, all three cannot
		catalog := []Section{}
		for _, course := range []string{"A", "B", "C"} {
			catalog = append(catalog,
				section(course, course+"1", "Dr. "+course+"1", Monday, "09:00", "10:00"),
				section(course, course+"2", "Dr. "+course+"2", Monday, "10:00", "11:00"),
			)
		}
		courses := []string{"A", "B", "C"}
		courseDomain := buildDomain(catalog, courses, nil, nil)

		//** Act
		_, solvable := solve(courses, courseDomain)
		details := diagnose(courses, courseDomain)

		//** Assert: no pair explains it, so the scheduler falls back to the narrative
		assert.False(t, solvable)
		assert.Empty(t, details)

		fallback := higherOrderDetail(courses)
		assert.Equal(t, ConflictHigherOrder, fallback.Kind)
		assert.Equal(t, courses, fallback.Courses)
	})
}

func TestSuggestRemedy(t *testing.T) {
	t.Run("Suggests attending on the leave day when that resolves the conflict", func(t *testing.T) {
		catalog := []Section{
			section("Physics", "A1", "Dr. Rao", Monday, "09:00", "10:00"),
			section("Math", "B1", "Dr. Iyer", Monday, "09:30", "10:30"),
			section("Math", "B2", "Dr. Iyer", Saturday, "09:00", "10:00"),
		}
		request := Request{
			Courses:  []string{"Physics", "Math"},
			Catalog:  catalog,
			LeaveDay: day(Saturday),
		}
		strict := buildDomain(catalog, request.Courses, request.LeaveDay, nil)

		suggestion := suggestRemedy(request, strict)

		assert.Contains(t, suggestion, "Saturday")
	})

	t.Run("Suggests dropping the first course whose removal unblocks the rest", func(t *testing.T) {
		catalog := []Section{
			section("Physics", "A1", "Dr. Rao", Monday, "09:00", "10:00"),
			section("Math", "B1", "Dr. Iyer", Monday, "09:30", "10:30"),
		}
		request := Request{Courses: []string{"Physics", "Math"}, Catalog: catalog}
		strict := buildDomain(catalog, request.Courses, nil, nil)

		suggestion := suggestRemedy(request, strict)

		assert.Contains(t, suggestion, "remove 'Physics'")
	})

	t.Run("Falls back to a narrative when no single removal helps", func(t *testing.T) {
		// Four courses pinned to two slots: removing one still leaves three
		catalog := []Section{}
		courses := []string{"A", "B", "C", "D"}
		for _, course := range courses {
			catalog = append(catalog,
				section(course, course+"1", "Dr. "+course+"1", Monday, "09:00", "10:00"),
				section(course, course+"2", "Dr. "+course+"2", Monday, "10:00", "11:00"),
			)
		}
		request := Request{Courses: courses, Catalog: catalog}
		strict := buildDomain(catalog, courses, nil, nil)

		suggestion := suggestRemedy(request, strict)

		assert.Contains(t, suggestion, "fewer subjects")
	})
}
