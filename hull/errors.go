package hull

import "fmt"

// ErrorKind enumerates spec §7's two fatal-to-the-call HullBuilder error
// kinds. CoplanarSkip, TopologyViolation and NonManifoldEdge are locally
// recovered and are reported through a diag.Sink instead (spec §7's
// propagation policy).
type ErrorKind int

const (
	InsufficientPoints ErrorKind = iota
	DegenerateInput
)

func (k ErrorKind) String() string {
	switch k {
	case InsufficientPoints:
		return "InsufficientPoints"
	case DegenerateInput:
		return "DegenerateInput"
	default:
		return "Unknown"
	}
}

// HullError is returned by Build when construction cannot proceed at all.
type HullError struct {
	Kind ErrorKind
	// N is the input point count, set for InsufficientPoints.
	N int
}

func (e *HullError) Error() string {
	switch e.Kind {
	case InsufficientPoints:
		return fmt.Sprintf("hull: insufficient points: need at least 4, got %d", e.N)
	case DegenerateInput:
		return "hull: seed tetrahedron is coplanar (degenerate input)"
	default:
		return "hull: build failed"
	}
}
