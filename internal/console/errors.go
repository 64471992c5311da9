package console

import (
	"errors"

	domerrors "github.com/garyellow/sgpa-go/internal/errors"
)

// ErrQuit is returned by the quit command to end Run.
var ErrQuit = errors.New("quit")

var errPanic = errors.New("command panicked")

// rejection maps user-facing failures to their metrics reason.
var rejections = []struct {
	err    error
	reason string
}{
	{ErrUnknownCommand, "unknown_command"},
	{domerrors.ErrUnknownDepartment, "unknown_department"},
	{domerrors.ErrUnknownSemester, "unknown_semester"},
	{domerrors.ErrUnavailable, "unavailable"},
	{domerrors.ErrUnknownCourse, "unknown_course"},
	{domerrors.ErrAmbiguousCourse, "ambiguous_course"},
	{domerrors.ErrUnknownGrade, "unknown_grade"},
	{domerrors.ErrNoSelection, "no_selection"},
	{domerrors.ErrIncomplete, "incomplete"},
	{domerrors.ErrNoResult, "no_result"},
	{domerrors.ErrInvalidInput, "invalid_input"},
}

// rejectReason returns the reason label of a user error, or "" for
// anything unexpected.
func rejectReason(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

func isUserError(err error) bool {
	return rejectReason(err) != ""
}
