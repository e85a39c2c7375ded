// Package diag carries the locally-recovered diagnostics spec §7 names
// (CoplanarSkip, TopologyViolation, NonManifoldEdge): conditions that do
// not abort construction but are worth surfacing to the caller.
//
// SlogSink logs through log/slog, grounded on the pack's
// structured-logging convention (gazed-vu uses log/slog throughout its
// physics package); NopSink (what hull.Build uses when no sink is
// configured) and CollectingSink exist for callers that want silence or
// in-test assertions respectively.
package diag

import "log/slog"

// Kind identifies which spec §7 diagnostic a Notice carries.
type Kind int

const (
	CoplanarSkip Kind = iota
	TopologyViolation
	NonManifoldEdge
	// Progress is not one of spec §7's error taxonomy kinds; it carries
	// the showProgress side-channel instrumentation from spec §6.
	Progress
)

func (k Kind) String() string {
	switch k {
	case CoplanarSkip:
		return "CoplanarSkip"
	case TopologyViolation:
		return "TopologyViolation"
	case NonManifoldEdge:
		return "NonManifoldEdge"
	case Progress:
		return "Progress"
	default:
		return "Unknown"
	}
}

// Notice is a single locally-recovered diagnostic event.
type Notice struct {
	Kind    Kind
	Message string
	// VertexIndex is set for CoplanarSkip, the index of the skipped point.
	VertexIndex int
	// EdgeKey, as a (p, q) pair, is set for TopologyViolation and
	// NonManifoldEdge notices.
	EdgeP, EdgeQ int
}

// Sink receives diagnostic notices emitted during hull construction.
type Sink interface {
	Notify(n Notice)
}

// NopSink discards every notice. Use it for strict silence.
type NopSink struct{}

func (NopSink) Notify(Notice) {}

// SlogSink logs notices through a *slog.Logger. CoplanarSkip and
// TopologyViolation are logged at Warn level (spec §7 marks
// TopologyViolation as a bug signal); NonManifoldEdge is logged at Info
// level since it is an expected outcome on inputs that round to
// non-manifold edges.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink wraps logger, or slog.Default() if logger is nil.
func NewSlogSink(logger *slog.Logger) SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogSink{Logger: logger}
}

func (s SlogSink) Notify(n Notice) {
	attrs := []any{"kind", n.Kind.String()}
	switch n.Kind {
	case CoplanarSkip, Progress:
		attrs = append(attrs, "vertex", n.VertexIndex)
	default:
		attrs = append(attrs, "edge_p", n.EdgeP, "edge_q", n.EdgeQ)
	}
	if n.Message != "" {
		attrs = append(attrs, "message", n.Message)
	}

	switch n.Kind {
	case NonManifoldEdge, Progress:
		s.Logger.Info("halfspace diagnostic", attrs...)
	default:
		s.Logger.Warn("halfspace diagnostic", attrs...)
	}
}

// CollectingSink records every notice it receives, in order. It is meant
// for tests that need to assert a specific diagnostic fired.
type CollectingSink struct {
	Notices []Notice
}

func (s *CollectingSink) Notify(n Notice) {
	s.Notices = append(s.Notices, n)
}

// Count returns how many notices of the given kind were recorded.
func (s *CollectingSink) Count(kind Kind) int {
	n := 0
	for _, notice := range s.Notices {
		if notice.Kind == kind {
			n++
		}
	}
	return n
}
