package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func day(value Day) *Day {
	return &value
}

func TestBuildDomain(t *testing.T) {
	catalog := []Section{
		section("Physics", "A1", "Dr. Rao", Monday, "09:00", "10:00"),
		section("Physics", "A1", "Dr. Rao", Wednesday, "09:00", "10:00"),
		section("Physics", "B2", "Dr. Sen", Tuesday, "11:00", "12:00"),
		section("Math", "C1", "Dr. Iyer", Thursday, "08:00", "09:00"),
		section("History", "D1", "Dr. Bose", Friday, "10:00", "11:00"),
	}

	t.Run("Groups segments into atomic options preserving catalog order", func(t *testing.T) {
		//** Act
		courseDomain := buildDomain(catalog, []string{"Physics", "Math"}, nil, nil)

		//** Assert
		assert.Len(t, courseDomain["Physics"], 2)
		assert.Len(t, courseDomain["Physics"][0], 2) // Monday + Wednesday segments of slot A1
		assert.Equal(t, "A1", courseDomain["Physics"][0].Slot())
		assert.Equal(t, "B2", courseDomain["Physics"][1].Slot())
		assert.Len(t, courseDomain["Math"], 1)

		// Unselected courses are filtered out entirely
		_, present := courseDomain["History"]
		assert.False(t, present)
	})

	t.Run("A partially excluded option is dropped whole", func(t *testing.T) {
		//** Act: slot A1 meets Monday and Wednesday, so excluding Wednesday kills it
		courseDomain := buildDomain(catalog, []string{"Physics"}, day(Wednesday), nil)

		//** Assert
		assert.Len(t, courseDomain["Physics"], 1)
		assert.Equal(t, "B2", courseDomain["Physics"][0].Slot())
	})

	t.Run("A course whose every option is excluded yields an empty entry", func(t *testing.T) {
		courseDomain := buildDomain(catalog, []string{"Math"}, day(Thursday), nil)

		assert.Contains(t, courseDomain, "Math")
		assert.Empty(t, courseDomain["Math"])
	})

	t.Run("Preferred instructor sorts first, ties keep catalog order", func(t *testing.T) {
		courseDomain := buildDomain(catalog, []string{"Physics"}, nil, map[string]string{"Physics": "Dr. Sen"})

		assert.Equal(t, "Dr. Sen", courseDomain["Physics"][0].Instructor())
		assert.Equal(t, "Dr. Rao", courseDomain["Physics"][1].Instructor())
	})

	t.Run("Unknown preference leaves catalog order untouched", func(t *testing.T) {
		courseDomain := buildDomain(catalog, []string{"Physics"}, nil, map[string]string{"Physics": "Dr. Nobody"})

		assert.Equal(t, "Dr. Rao", courseDomain["Physics"][0].Instructor())
		assert.Equal(t, "Dr. Sen", courseDomain["Physics"][1].Instructor())
	})

	t.Run("Idempotent for identical inputs", func(t *testing.T) {
		preferences := map[string]string{"Physics": "Dr. Sen"}

		first := buildDomain(catalog, []string{"Physics", "Math"}, day(Wednesday), preferences)
		second := buildDomain(catalog, []string{"Physics", "Math"}, day(Wednesday), preferences)

		assert.Equal(t, first, second)
	})

	t.Run("Relaxing the leave day only enlarges domains", func(t *testing.T) {
		strict := buildDomain(catalog, []string{"Physics", "Math"}, day(Wednesday), nil)
		relaxed := buildDomain(catalog, []string{"Physics", "Math"}, nil, nil)

		for course := range strict {
			assert.GreaterOrEqual(t, len(relaxed[course]), len(strict[course]))
			for _, option := range strict[course] {
				assert.Contains(t, relaxed[course], option)
			}
		}
	})
}
