// Package sgpa computes the credit-weighted Semester Grade Point Average.
//
// Compute is pure: it never fails and never divides by zero. Pass/fail
// courses and unrecognised grade symbols are left out of both the weighted
// sum and the credit total. Whether enough grades have been entered to
// compute at all is the caller's decision, see GatePolicy.
package sgpa

import (
	"github.com/garyellow/sgpa-go/internal/catalog"
	"github.com/garyellow/sgpa-go/internal/grade"
)

// Compute returns the SGPA of the graded, credit-bearing courses.
// ok is false when no credit-bearing course has a recognised grade.
func Compute(courses []catalog.Course, assignment map[string]grade.Symbol) (value float64, ok bool) {
	var weighted float64
	credits := 0
	for _, c := range courses {
		if c.Credits <= 0 {
			continue
		}
		symbol, graded := assignment[c.Name]
		if !graded {
			continue
		}
		pts, known := grade.Lookup(symbol)
		if !known {
			continue
		}
		weighted += float64(c.Credits) * pts
		credits += c.Credits
	}

	if credits == 0 {
		return 0, false
	}
	return weighted / float64(credits), true
}

// Line is one row of the grade summary.
type Line struct {
	Course   string
	Credits  int
	Symbol   grade.Symbol // empty when ungraded
	Counted  bool         // contributed to the average
	PassFail bool
}

// Result is a computed SGPA together with the figures shown next to it.
type Result struct {
	Value          float64
	OK             bool
	Band           Band
	CountedCredits int // credits that entered the denominator
	TotalCredits   int // every catalog credit of the semester, pass/fail included
	Lines          []Line
}

// Evaluate computes the SGPA and builds the grade summary in catalog order.
// Band is only set when OK is true.
func Evaluate(courses []catalog.Course, assignment map[string]grade.Symbol) Result {
	res := Result{
		TotalCredits: catalog.TotalCredits(courses),
		Lines:        make([]Line, 0, len(courses)),
	}

	for _, c := range courses {
		line := Line{Course: c.Name, Credits: c.Credits, PassFail: c.PassFail()}
		if symbol, graded := assignment[c.Name]; graded {
			line.Symbol = symbol
			if _, known := grade.Lookup(symbol); known && c.Credits > 0 {
				line.Counted = true
				res.CountedCredits += c.Credits
			}
		}
		res.Lines = append(res.Lines, line)
	}

	res.Value, res.OK = Compute(courses, assignment)
	if res.OK {
		res.Band = BandFor(res.Value)
	}
	return res
}
