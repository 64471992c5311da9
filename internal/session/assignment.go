// Package session tracks one user's department and semester selection and
// the grades entered for it.
//
// A Session is owned by a single caller and is not safe for concurrent use.
package session

import (
	"maps"

	"github.com/garyellow/sgpa-go/internal/grade"
)

// Assignment maps course names to the grade entered for them.
type Assignment struct {
	grades map[string]grade.Symbol
}

// NewAssignment creates an empty assignment.
func NewAssignment() *Assignment {
	return &Assignment{grades: make(map[string]grade.Symbol)}
}

// Set assigns or overwrites the grade of a course.
func (a *Assignment) Set(course string, symbol grade.Symbol) {
	a.grades[course] = symbol
}

// Get returns the grade of a course.
func (a *Assignment) Get(course string) (grade.Symbol, bool) {
	s, ok := a.grades[course]
	return s, ok
}

// All returns a copy of every entered grade.
func (a *Assignment) All() map[string]grade.Symbol {
	return maps.Clone(a.grades)
}

// Len returns the number of graded courses.
func (a *Assignment) Len() int {
	return len(a.grades)
}

// Reset clears every grade.
func (a *Assignment) Reset() {
	clear(a.grades)
}
