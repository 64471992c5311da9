// Package sliceutil provides generic slice manipulation utilities.
package sliceutil

// Duplicates returns every key that occurs more than once in items, in the
// order of its second occurrence. Each key is reported once.
//
// Example:
//
//	courses := []catalog.Course{{Name: "Lab"}, {Name: "Physics"}, {Name: "Lab"}}
//	dups := sliceutil.Duplicates(courses, func(c catalog.Course) string { return c.Name })
//	// Result: ["Lab"]
func Duplicates[T any, K comparable](items []T, keyFunc func(T) K) []K {
	if len(items) < 2 {
		return nil
	}

	seen := make(map[K]int, len(items))
	var result []K

	for _, item := range items {
		key := keyFunc(item)
		seen[key]++
		if seen[key] == 2 {
			result = append(result, key)
		}
	}

	return result
}
