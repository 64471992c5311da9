package catalog

import (
	"fmt"
	"strconv"
	"strings"

	domerrors "github.com/garyellow/sgpa-go/internal/errors"
	"github.com/garyellow/sgpa-go/internal/stringutil"
	"golang.org/x/text/cases"
)

// FindCourse resolves a typed course reference against a course list.
//
// Resolution order: 1-based index, case-folded exact name, then a unique
// case-folded name prefix. Several prefix matches are reported as
// ErrAmbiguousCourse listing the candidates.
func FindCourse(courses []Course, query string) (Course, error) {
	q := stringutil.NormalizeSpaces(query)
	if q == "" {
		return Course{}, domerrors.NewValidationErrorFor(domerrors.ErrUnknownCourse, "course", "course name is empty")
	}

	if stringutil.IsNumeric(q) {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > len(courses) {
			return Course{}, domerrors.NewValidationErrorFor(domerrors.ErrUnknownCourse, "course",
				fmt.Sprintf("index %s is out of range 1-%d", q, len(courses)))
		}
		return courses[n-1], nil
	}

	fold := cases.Fold()
	fq := fold.String(q)

	var prefixed []Course
	for _, c := range courses {
		name := fold.String(c.Name)
		if name == fq {
			return c, nil
		}
		if strings.HasPrefix(name, fq) {
			prefixed = append(prefixed, c)
		}
	}

	switch len(prefixed) {
	case 0:
		return Course{}, domerrors.NewValidationErrorFor(domerrors.ErrUnknownCourse, "course",
			fmt.Sprintf("no course matches %q", q))
	case 1:
		return prefixed[0], nil
	}

	names := make([]string, len(prefixed))
	for i, c := range prefixed {
		names[i] = c.Name
	}
	return Course{}, domerrors.NewValidationErrorFor(domerrors.ErrAmbiguousCourse, "course",
		fmt.Sprintf("%q matches %s", q, strings.Join(names, ", ")))
}
