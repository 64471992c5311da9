package session

import (
	"errors"
	"strconv"

	"github.com/garyellow/sgpa-go/internal/catalog"
	domerrors "github.com/garyellow/sgpa-go/internal/errors"
	"github.com/garyellow/sgpa-go/internal/grade"
	"github.com/garyellow/sgpa-go/internal/sgpa"
	"github.com/google/uuid"
)

// Session is the transient grade-entry state of one user.
type Session struct {
	id      string
	catalog *catalog.Catalog
	policy  sgpa.GatePolicy

	department catalog.Department
	slice      catalog.Slice // zero value until an available semester is selected
	grades     *Assignment
}

// New creates a session with nothing selected.
func New(c *catalog.Catalog, policy sgpa.GatePolicy) *Session {
	return &Session{
		id:      uuid.NewString(),
		catalog: c,
		policy:  policy,
		grades:  NewAssignment(),
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// Policy returns the gate policy of the compute action.
func (s *Session) Policy() sgpa.GatePolicy { return s.policy }

// Catalog returns the catalog the session reads from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Department returns the selected department; ok is false when none is selected.
func (s *Session) Department() (catalog.Department, bool) {
	return s.department, s.department.ID != ""
}

// Semester returns the selected semester, or 0.
func (s *Session) Semester() int { return s.slice.Semester }

// Courses returns the courses of the selected semester.
func (s *Session) Courses() []catalog.Course {
	out := make([]catalog.Course, len(s.slice.Courses))
	copy(out, s.slice.Courses)
	return out
}

// SelectDepartment switches department and clears the semester and grades.
// The state is left unchanged on error.
func (s *Session) SelectDepartment(id string) (catalog.Department, error) {
	w := domerrors.NewWrapper("session", "select_department")

	d, err := s.catalog.Department(id)
	if err != nil {
		return catalog.Department{}, w.Wrapf(err, "no department %q", id)
	}

	s.department = d
	s.slice = catalog.Slice{}
	s.grades.Reset()
	return d, nil
}

// SelectSemester switches semester and clears the grades.
//
// Selecting a listed but unpublished semester clears the current semester
// and returns an error matching ErrUnavailable. An unknown semester leaves
// the state unchanged.
func (s *Session) SelectSemester(n int) (catalog.Slice, error) {
	w := domerrors.NewWrapper("session", "select_semester")

	if s.department.ID == "" {
		return catalog.Slice{}, w.Wrap(domerrors.ErrNoSelection, "select a department first")
	}

	slice, err := s.catalog.Lookup(s.department.ID, n)
	if err != nil {
		return catalog.Slice{}, w.Wrapf(err, "%s has no semester %d", s.department.Name, n)
	}

	s.grades.Reset()
	if !slice.Available() {
		s.slice = catalog.Slice{}
		return slice, w.Wrapf(domerrors.ErrUnavailable, "semester %d of %s is coming soon", n, s.department.Name)
	}
	s.slice = slice
	return slice, nil
}

// SetGrade assigns a grade to a course of the selected semester.
//
// The course may be given by index, name or unique name prefix. Unlike the
// SGPA engine, this boundary rejects unknown symbols.
func (s *Session) SetGrade(courseRef, symbolInput string) (catalog.Course, grade.Symbol, error) {
	w := domerrors.NewWrapper("session", "set_grade")

	if !s.slice.Available() {
		return catalog.Course{}, "", w.Wrap(domerrors.ErrNoSelection, "select a department and semester first")
	}

	course, err := catalog.FindCourse(s.slice.Courses, courseRef)
	if err != nil {
		return catalog.Course{}, "", w.Wrap(err, validationMessage(err))
	}

	symbol, ok := grade.Parse(symbolInput)
	if !ok {
		err := domerrors.NewValidationErrorFor(domerrors.ErrUnknownGrade, "grade", "unknown grade symbol "+strconv.Quote(symbolInput))
		return catalog.Course{}, "", w.Wrap(err, err.Message)
	}

	s.grades.Set(course.Name, symbol)
	return course, symbol, nil
}

// Grades returns a copy of the entered grades.
func (s *Session) Grades() map[string]grade.Symbol {
	return s.grades.All()
}

// Missing lists the courses the gate policy still waits for.
func (s *Session) Missing() []string {
	return sgpa.Missing(s.policy, s.slice.Courses, s.grades.All())
}

// Ready reports whether Calculate is enabled.
func (s *Session) Ready() bool {
	return sgpa.Ready(s.policy, s.slice.Courses, s.grades.All())
}

// Reset clears the grades and keeps the selection.
func (s *Session) Reset() {
	s.grades.Reset()
}

// Calculate computes the SGPA once the gate policy is satisfied.
//
// Errors match ErrNoSelection, ErrIncomplete (as *IncompleteError) or
// ErrNoResult when nothing credit-bearing could be counted.
func (s *Session) Calculate() (sgpa.Result, error) {
	w := domerrors.NewWrapper("session", "calculate")

	if !s.slice.Available() {
		return sgpa.Result{}, w.Wrap(domerrors.ErrNoSelection, "select a department and semester first")
	}

	assignment := s.grades.All()
	if missing := sgpa.Missing(s.policy, s.slice.Courses, assignment); len(missing) > 0 {
		return sgpa.Result{}, w.Wrapf(domerrors.NewIncompleteError(missing), "%d course(s) still need a grade", len(missing))
	}

	res := sgpa.Evaluate(s.slice.Courses, assignment)
	if !res.OK {
		return res, w.Wrap(domerrors.ErrNoResult, "no credit-bearing course has a grade")
	}
	return res, nil
}

func validationMessage(err error) string {
	var ve *domerrors.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
