// Package catalog holds the department -> semester -> course credit table.
//
// The catalog is immutable once loaded. Every semester listed for a
// department is either Available with a non-empty course list or
// Unavailable; there is no placeholder course.
package catalog

import (
	"fmt"
	"strings"

	domerrors "github.com/garyellow/sgpa-go/internal/errors"
)

// Course is one graded course of a semester.
type Course struct {
	Name    string `yaml:"name"`
	Credits int    `yaml:"credits"`
}

// PassFail reports whether the course carries no credit and never weighs into the SGPA.
func (c Course) PassFail() bool {
	return c.Credits == 0
}

// Status tells whether a listed semester has published courses.
type Status int

const (
	// Unavailable marks a semester that is listed but not yet published.
	Unavailable Status = iota
	// Available marks a semester with a published course list.
	Available
)

func (s Status) String() string {
	if s == Available {
		return "available"
	}
	return "unavailable"
}

// Slice is the catalog content for one department and semester.
type Slice struct {
	Department string
	Semester   int
	Status     Status
	Courses    []Course
}

// Available reports whether the slice has courses to grade.
func (s Slice) Available() bool {
	return s.Status == Available
}

// Department describes a department in display order.
type Department struct {
	ID   string
	Name string

	offerings map[int][]Course
}

// SemesterInfo summarises one semester of a department.
type SemesterInfo struct {
	Number  int
	Status  Status
	Courses int
	Credits int
}

// Catalog is the full, read-only course table.
type Catalog struct {
	semesters   []int
	departments []Department
	byID        map[string]int
}

// Departments returns department metadata in display order.
func (c *Catalog) Departments() []Department {
	out := make([]Department, len(c.departments))
	for i, d := range c.departments {
		out[i] = Department{ID: d.ID, Name: d.Name}
	}
	return out
}

// Department returns the department with the given id.
func (c *Catalog) Department(id string) (Department, error) {
	d, ok := c.department(id)
	if !ok {
		return Department{}, fmt.Errorf("department %q: %w", id, domerrors.ErrUnknownDepartment)
	}
	return Department{ID: d.ID, Name: d.Name}, nil
}

// Semesters lists every semester of a department with its availability.
func (c *Catalog) Semesters(departmentID string) ([]SemesterInfo, error) {
	d, ok := c.department(departmentID)
	if !ok {
		return nil, fmt.Errorf("department %q: %w", departmentID, domerrors.ErrUnknownDepartment)
	}

	out := make([]SemesterInfo, 0, len(c.semesters))
	for _, n := range c.semesters {
		info := SemesterInfo{Number: n, Status: Unavailable}
		if courses, ok := d.offerings[n]; ok {
			info.Status = Available
			info.Courses = len(courses)
			info.Credits = TotalCredits(courses)
		}
		out = append(out, info)
	}
	return out, nil
}

// Lookup returns the courses of a department and semester.
//
// An unknown department yields ErrUnknownDepartment and a semester outside
// the semester list yields ErrUnknownSemester. A listed semester without
// published courses is not an error: the returned slice is Unavailable.
func (c *Catalog) Lookup(departmentID string, semester int) (Slice, error) {
	d, ok := c.department(departmentID)
	if !ok {
		return Slice{}, fmt.Errorf("department %q: %w", departmentID, domerrors.ErrUnknownDepartment)
	}
	if !c.listed(semester) {
		return Slice{}, fmt.Errorf("semester %d of %s: %w", semester, d.ID, domerrors.ErrUnknownSemester)
	}

	slice := Slice{Department: d.ID, Semester: semester, Status: Unavailable}
	if courses, ok := d.offerings[semester]; ok {
		slice.Status = Available
		slice.Courses = make([]Course, len(courses))
		copy(slice.Courses, courses)
	}
	return slice, nil
}

// TotalCredits sums the credits of every course, pass/fail included.
func TotalCredits(courses []Course) int {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	return total
}

func (c *Catalog) department(id string) (*Department, bool) {
	i, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, false
	}
	return &c.departments[i], true
}

func (c *Catalog) listed(semester int) bool {
	for _, n := range c.semesters {
		if n == semester {
			return true
		}
	}
	return false
}
