package catalog

import (
	"errors"
	"fmt"

	"github.com/garyellow/sgpa-go/internal/sliceutil"
)

func identity[T any](v T) T { return v }

// Validate checks the catalog invariants and reports every violation at once.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.semesters) == 0 {
		errs = append(errs, errors.New("semester list is empty"))
	}
	seenSem := make(map[int]bool, len(c.semesters))
	for _, n := range c.semesters {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("semester %d must be positive", n))
		}
		seenSem[n] = true
	}
	for _, n := range sliceutil.Duplicates(c.semesters, identity[int]) {
		errs = append(errs, fmt.Errorf("semester %d listed twice", n))
	}

	if len(c.departments) == 0 {
		errs = append(errs, errors.New("no departments"))
	}
	seenDept := make(map[string]bool, len(c.departments))
	for _, d := range c.departments {
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("department %q has an empty id", d.Name))
			continue
		}
		if seenDept[d.ID] {
			errs = append(errs, fmt.Errorf("department %s listed twice", d.ID))
		}
		seenDept[d.ID] = true
		if d.Name == "" {
			errs = append(errs, fmt.Errorf("department %s has an empty name", d.ID))
		}

		for n, courses := range d.offerings {
			if !seenSem[n] {
				errs = append(errs, fmt.Errorf("%s semester %d is not in the semester list", d.ID, n))
			}
			errs = append(errs, validateCourses(d.ID, n, courses)...)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateCourses(dept string, semester int, courses []Course) []error {
	if len(courses) == 0 {
		return []error{fmt.Errorf("%s semester %d is published without courses", dept, semester)}
	}

	var errs []error
	for _, name := range sliceutil.Duplicates(courses, func(c Course) string { return c.Name }) {
		errs = append(errs, fmt.Errorf("%s semester %d lists %q twice", dept, semester, name))
	}

	credited := false
	for _, course := range courses {
		if course.Name == "" {
			errs = append(errs, fmt.Errorf("%s semester %d has a course without a name", dept, semester))
		}
		if course.Credits < 0 {
			errs = append(errs, fmt.Errorf("%s semester %d: %q has negative credits %d", dept, semester, course.Name, course.Credits))
		}
		if course.Credits > 0 {
			credited = true
		}
	}
	if !credited {
		errs = append(errs, fmt.Errorf("%s semester %d has no credit-bearing course", dept, semester))
	}
	return errs
}
