// Package stringutil provides common string manipulation utilities.
package stringutil

import "strings"

// IsNumeric checks if a string contains only digits.
// Returns false for empty strings.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeSpaces trims s and collapses every run of whitespace into a single space.
//
// Example:
//
//	NormalizeSpaces("  Logic   System\tDesign ") returns "Logic System Design"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitCommand splits a console line into a lower-cased verb and its arguments.
// Returns an empty verb for blank lines.
func SplitCommand(line string) (verb string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// SplitLast separates the last field from the rest, joined back with single spaces.
// "Logic System Design A+" becomes ("Logic System Design", "A+").
func SplitLast(fields []string) (head, last string) {
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return "", fields[0]
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}
