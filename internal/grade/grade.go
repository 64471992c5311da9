// Package grade holds the letter grade to grade point table.
//
// The table is a closed set: any symbol outside it is invalid input. Callers
// that need to reject bad input use Parse; the SGPA engine uses Lookup and
// skips what it does not recognise.
package grade

import "strings"

// Symbol is a letter grade as printed on a grade card.
type Symbol string

// Grade symbols in display order.
const (
	S     Symbol = "S"
	APlus Symbol = "A+"
	A     Symbol = "A"
	BPlus Symbol = "B+"
	B     Symbol = "B"
	CPlus Symbol = "C+"
	C     Symbol = "C"
	D     Symbol = "D"
	P     Symbol = "P"
	F     Symbol = "F"
	FE    Symbol = "FE"
	I     Symbol = "I"
	AB    Symbol = "AB"
)

// MaxPoints is the highest grade point any symbol maps to.
const MaxPoints = 10.0

// Entry pairs a symbol with its grade point.
type Entry struct {
	Symbol Symbol
	Points float64
}

var table = []Entry{
	{S, 10.0},
	{APlus, 9.0},
	{A, 8.5},
	{BPlus, 8.0},
	{B, 7.5},
	{CPlus, 7.0},
	{C, 6.5},
	{D, 6.0},
	{P, 5.5},
	{F, 0.0},
	{FE, 0.0},
	{I, 0.0},
	{AB, 0.0},
}

var points = func() map[Symbol]float64 {
	m := make(map[Symbol]float64, len(table))
	for _, e := range table {
		m[e.Symbol] = e.Points
	}
	return m
}()

// Table returns a copy of the grade point table in display order.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Symbols returns every valid symbol in display order.
func Symbols() []Symbol {
	out := make([]Symbol, len(table))
	for i, e := range table {
		out[i] = e.Symbol
	}
	return out
}

// Lookup returns the grade point for s. ok is false for unknown symbols.
func Lookup(s Symbol) (pts float64, ok bool) {
	pts, ok = points[s]
	return pts, ok
}

// Valid reports whether s is in the table.
func Valid(s Symbol) bool {
	_, ok := points[s]
	return ok
}

// Parse normalises user input ("a+", " s ") into a table symbol.
func Parse(input string) (Symbol, bool) {
	s := Symbol(strings.ToUpper(strings.TrimSpace(input)))
	if !Valid(s) {
		return "", false
	}
	return s, true
}

func (s Symbol) String() string {
	return string(s)
}
