// Package main checks the grade point table and course catalog for consistency.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/garyellow/sgpa-go/internal/catalog"
	"github.com/garyellow/sgpa-go/internal/grade"
	"github.com/garyellow/sgpa-go/internal/sgpa"
)

var catalogFlag = flag.String("catalog", "", "Path to a catalog YAML file (default: embedded catalog)")

// Verification results
type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	flag.Parse()

	fmt.Println("🔍 SGPA Calculator - Data Consistency Verification Tool")
	fmt.Println("=======================================================")

	results := []verifyResult{}

	// 1. Verify the grade point table
	results = append(results, verifyGradeTable()...)

	// 2. Verify band thresholds
	results = append(results, verifyBands()...)

	// 3. Verify the catalog loads and validates
	cat, err := catalog.Load(*catalogFlag)
	results = append(results, verifyResult{
		name:    "Catalog Loads",
		passed:  err == nil,
		message: loadMessage(err),
	})

	// 4. Verify every published semester against the SGPA engine
	if cat != nil {
		results = append(results, verifyCatalog(cat)...)
	}

	// Print results
	fmt.Println("\n📊 Verification Results:")
	fmt.Println("========================")

	passedCount := 0
	failedCount := 0

	for _, result := range results {
		status := "❌"
		if result.passed {
			status = "✅"
			passedCount++
		} else {
			failedCount++
		}
		fmt.Printf("%s %s: %s\n", status, result.name, result.message)
	}

	fmt.Printf("\n📈 Summary: %d passed, %d failed\n", passedCount, failedCount)

	if failedCount > 0 {
		os.Exit(1)
	}
}

func loadMessage(err error) string {
	if err != nil {
		return err.Error()
	}
	if *catalogFlag != "" {
		return "Loaded " + *catalogFlag
	}
	return "Loaded embedded catalog"
}

// verifyGradeTable checks the symbol set, point range and display order
func verifyGradeTable() []verifyResult {
	results := []verifyResult{}
	table := grade.Table()

	expectedSymbols := 13
	results = append(results, verifyResult{
		name:    "Grade Symbol Count",
		passed:  len(table) == expectedSymbols,
		message: fmt.Sprintf("Expected %d, got %d", expectedSymbols, len(table)),
	})

	outOfRange := []string{}
	for _, e := range table {
		if e.Points < 0 || e.Points > grade.MaxPoints {
			outOfRange = append(outOfRange, e.Symbol.String())
		}
	}
	results = append(results, verifyResult{
		name:    "Grade Points In Range",
		passed:  len(outOfRange) == 0,
		message: rangeMessage(outOfRange),
	})

	ordered := slices.IsSortedFunc(table, func(a, b grade.Entry) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		}
		return 0
	})
	results = append(results, verifyResult{
		name:    "Grade Table Order",
		passed:  ordered,
		message: "Symbols listed from highest to lowest grade point",
	})

	top, ok := grade.Lookup(grade.S)
	results = append(results, verifyResult{
		name:    "Top Grade",
		passed:  ok && top == grade.MaxPoints,
		message: fmt.Sprintf("S = %.1f", top),
	})

	return results
}

func rangeMessage(bad []string) string {
	if len(bad) == 0 {
		return fmt.Sprintf("All points within [0, %.0f]", grade.MaxPoints)
	}
	return fmt.Sprintf("Out of range: %v", bad)
}

// verifyBands checks the label boundaries
func verifyBands() []verifyResult {
	cases := []struct {
		value float64
		label string
		color string
	}{
		{10, "Outstanding", "green"},
		{9.0, "Outstanding", "green"},
		{8.99999, "Excellent", "blue"},
		{8.0, "Excellent", "blue"},
		{7.0, "Good", "yellow"},
		{6.0, "Average", "red"},
		{5.99, "Below Average", "red"},
		{0, "Below Average", "red"},
	}

	mismatches := []string{}
	for _, c := range cases {
		b := sgpa.BandFor(c.value)
		if b.Label != c.label || b.ColorName != c.color {
			mismatches = append(mismatches, fmt.Sprintf("%g → %s/%s", c.value, b.Label, b.ColorName))
		}
	}

	message := fmt.Sprintf("%d boundary values checked", len(cases))
	if len(mismatches) > 0 {
		message = fmt.Sprintf("Mismatches: %v", mismatches)
	}
	return []verifyResult{{
		name:    "Band Boundaries",
		passed:  len(mismatches) == 0,
		message: message,
	}}
}

// verifyCatalog runs the engine over every published semester with uniform
// grades: all S must give 10.0 and all F must give 0.0.
func verifyCatalog(cat *catalog.Catalog) []verifyResult {
	results := []verifyResult{}
	published := 0

	for _, d := range cat.Departments() {
		infos, err := cat.Semesters(d.ID)
		if err != nil {
			results = append(results, verifyResult{name: "Semesters of " + d.ID, passed: false, message: err.Error()})
			continue
		}

		for _, info := range infos {
			if info.Status != catalog.Available {
				continue
			}
			published++
			slice, err := cat.Lookup(d.ID, info.Number)
			name := fmt.Sprintf("%s Semester %d", d.ID, info.Number)
			if err != nil {
				results = append(results, verifyResult{name: name, passed: false, message: err.Error()})
				continue
			}

			best, okBest := sgpa.Compute(slice.Courses, uniform(slice.Courses, grade.S))
			worst, okWorst := sgpa.Compute(slice.Courses, uniform(slice.Courses, grade.F))
			passed := okBest && okWorst && math.Abs(best-grade.MaxPoints) < 1e-9 && worst == 0
			results = append(results, verifyResult{
				name:    name,
				passed:  passed,
				message: fmt.Sprintf("%d courses, %d credits, all S = %.2f, all F = %.2f", info.Courses, info.Credits, best, worst),
			})
		}
	}

	results = append(results, verifyResult{
		name:    "Published Semesters",
		passed:  published > 0,
		message: fmt.Sprintf("%d published across %d departments", published, len(cat.Departments())),
	})
	return results
}

func uniform(courses []catalog.Course, symbol grade.Symbol) map[string]grade.Symbol {
	out := make(map[string]grade.Symbol, len(courses))
	for _, c := range courses {
		out[c.Name] = symbol
	}
	return out
}
