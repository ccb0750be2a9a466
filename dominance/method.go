package dominance

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when a method name cannot be parsed or an
// analyzer is constructed with no valid methods. Unknown methods fail at
// construction; they are never skipped silently.
var ErrUnknownMethod = errors.New("dominance: unknown analysis method")

// Method identifies one dominance analysis output.
type Method int

const (
	// MethodComplexityIndex emits the per-column complexity indices.
	MethodComplexityIndex Method = iota
	// MethodDominanceScore emits per-column scores in [0, 1], where lower
	// complexity maps to a higher score.
	MethodDominanceScore
	// MethodLeaderIdentification emits the index and complexity of the
	// column with the minimum complexity index.
	MethodLeaderIdentification

	numMethods
)

var methodNames = [numMethods]string{
	MethodComplexityIndex:      "complexity_index",
	MethodDominanceScore:       "dominance_score",
	MethodLeaderIdentification: "leader_identification",
}

// String returns the canonical snake_case name of the method.
func (m Method) String() string {
	if m < 0 || m >= numMethods {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod maps a canonical method name to its Method value.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
