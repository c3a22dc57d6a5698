// Package school holds the fixed CBC reference data every other domain
// package leans on: the grade ladder, the subject catalogs per grade band
// and the performance-level bands.
package school

import (
	"strconv"
	"strings"
)

// Grade is a learner's year-level: two pre-primary levels followed by
// nine numbered grades.
type Grade string

const (
	GradePP1 Grade = "PP1"
	GradePP2 Grade = "PP2"
	Grade1   Grade = "Grade 1"
	Grade2   Grade = "Grade 2"
	Grade3   Grade = "Grade 3"
	Grade4   Grade = "Grade 4"
	Grade5   Grade = "Grade 5"
	Grade6   Grade = "Grade 6"
	Grade7   Grade = "Grade 7"
	Grade8   Grade = "Grade 8"
	Grade9   Grade = "Grade 9"
)

// Grades lists all grades in ladder order.
var Grades = []Grade{
	GradePP1, GradePP2,
	Grade1, Grade2, Grade3, Grade4, Grade5, Grade6,
	Grade7, Grade8, Grade9,
}

// Academic year bounds.
const (
	MinYear = 2001
	MaxYear = 2040
)

func (g Grade) String() string { return string(g) }

// IsValid reports whether g is one of the known grades.
func (g Grade) IsValid() bool {
	for _, known := range Grades {
		if g == known {
			return true
		}
	}
	return false
}

// Level returns the numeric level of a numbered grade, or 0 for the
// pre-primary grades (which carry no digits).
func (g Grade) Level() int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, string(g))
	if strings.HasPrefix(string(g), "PP") {
		return 0
	}
	n, _ := strconv.Atoi(digits)
	return n
}

// IsEarlyYears reports whether g belongs to the early-years band
// (PP1/PP2 and Grade 1-6). Grade 7-9 form the junior band.
func (g Grade) IsEarlyYears() bool {
	return strings.HasPrefix(string(g), "PP") || g.Level() <= 6
}

// ValidTerm reports whether term is one of the three school terms.
func ValidTerm(term int) bool { return term >= 1 && term <= 3 }

// ValidYear reports whether year is within the supported academic range.
func ValidYear(year int) bool { return year >= MinYear && year <= MaxYear }
