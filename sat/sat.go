package sat

import (
	"sync/atomic"

	"github.com/akmonengine/halfspace/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Tester runs spec §4.2's SAT predicate against a fixed pair of bodies.
// Building a Tester precomputes the axis set and chunk boundaries once;
// HitTest can then be called repeatedly as either body translates (spec
// §4.3, translation is the only supported post-build transform).
type Tester struct {
	a, b      *mesh.Topology
	axes      []mgl64.Vec3
	chunkSize int
	workers   int
}

// New builds a Tester for bodies a and b, applying opts over
// config.Default's NumChunks and Workers knobs (spec §6, SPEC_FULL §5).
// Neither knob affects the returned boolean of HitTest (spec §4.2
// property 7); they only tune how the axis set is batched and whether
// batches run concurrently.
func New(a, b *mesh.Topology, opts ...Option) *Tester {
	cfg := resolveOptions(opts)
	axes := buildAxes(a, b)

	numChunks := cfg.NumChunks
	if numChunks == 0 {
		numChunks = 1
	}
	chunkSize := (len(axes) + int(numChunks) - 1) / int(numChunks)
	if chunkSize == 0 {
		chunkSize = 1
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Tester{a: a, b: b, axes: axes, chunkSize: chunkSize, workers: workers}
}

// HitTest reports whether bodies a and b, in their current (possibly
// translated) vertex positions, overlap: true unless some axis in the
// precomputed set separates them (spec §4.2).
//
// An empty axis set (both bodies degenerate to a single point, or more
// realistically a malformed topology) reports true: spec §4.2's
// vacuous-intersection default, since no axis can witness separation.
func (t *Tester) HitTest() bool {
	if len(t.axes) == 0 {
		return true
	}

	verticesA, verticesB := t.a.Vertices(), t.b.Vertices()
	var separated atomic.Bool

	numChunks := (len(t.axes) + t.chunkSize - 1) / t.chunkSize

	runChunked(t.workers, numChunks, func(startChunk, endChunk int) {
		for c := startChunk; c < endChunk; c++ {
			if separated.Load() {
				return
			}

			lo := c * t.chunkSize
			hi := lo + t.chunkSize
			if hi > len(t.axes) {
				hi = len(t.axes)
			}

			if chunkSeparates(t.axes[lo:hi], verticesA, verticesB) {
				separated.Store(true)
				return
			}
		}
	})

	return !separated.Load()
}

// chunkSeparates reports whether any axis in the chunk separates the two
// vertex sets: their projected intervals onto that axis fail to overlap.
func chunkSeparates(chunk []mgl64.Vec3, verticesA, verticesB []mgl64.Vec3) bool {
	for _, axis := range chunk {
		aMin, aMax := projectExtent(axis, verticesA)
		bMin, bMax := projectExtent(axis, verticesB)

		lo := aMin
		if bMin < lo {
			lo = bMin
		}
		hi := aMax
		if bMax > hi {
			hi = bMax
		}

		if (aMax-aMin)+(bMax-bMin) < hi-lo {
			return true
		}
	}
	return false
}

// projectExtent returns the [min, max] projection of vertices onto axis.
func projectExtent(axis mgl64.Vec3, vertices []mgl64.Vec3) (min, max float64) {
	min = axis.Dot(vertices[0])
	max = min
	for _, v := range vertices[1:] {
		p := axis.Dot(v)
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max
}
