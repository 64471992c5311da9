package sgpa

import (
	"fmt"
	"strings"

	"github.com/garyellow/sgpa-go/internal/catalog"
	"github.com/garyellow/sgpa-go/internal/grade"
)

// GatePolicy decides which courses need a grade before computing is allowed.
type GatePolicy int

const (
	// GateAllCourses requires every course, pass/fail included.
	GateAllCourses GatePolicy = iota
	// GateCreditedCourses requires only credit-bearing courses.
	GateCreditedCourses
)

// DefaultGatePolicy is GateAllCourses.
const DefaultGatePolicy = GateAllCourses

// ParseGatePolicy accepts "all" or "credited"; empty means the default.
func ParseGatePolicy(s string) (GatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return GateAllCourses, nil
	case "credited":
		return GateCreditedCourses, nil
	}
	return 0, fmt.Errorf("unknown gate policy %q (want all or credited)", s)
}

func (p GatePolicy) String() string {
	if p == GateCreditedCourses {
		return "credited"
	}
	return "all"
}

// Missing lists, in catalog order, the courses the policy still needs a grade for.
// Any assigned symbol counts, recognised or not.
func Missing(policy GatePolicy, courses []catalog.Course, assignment map[string]grade.Symbol) []string {
	var missing []string
	for _, c := range courses {
		if policy == GateCreditedCourses && c.Credits <= 0 {
			continue
		}
		if s, ok := assignment[c.Name]; !ok || s == "" {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// Ready reports whether the compute action is enabled under policy.
func Ready(policy GatePolicy, courses []catalog.Course, assignment map[string]grade.Symbol) bool {
	return len(courses) > 0 && len(Missing(policy, courses, assignment)) == 0
}
