// Package mesh provides the indexed triangle-mesh representation shared by
// the hull builder and the SAT tester: an immutable vertex array plus
// canonical-keyed face and edge tables.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// FaceKey canonically identifies a face independent of vertex insertion
// order: the triple of vertex indices sorted ascending.
type FaceKey [3]int

// EdgeKey canonically identifies an edge: the pair of vertex indices
// sorted ascending.
type EdgeKey [2]int

// NewFaceKey sorts (a, b, c) ascending into a canonical FaceKey.
func NewFaceKey(a, b, c int) FaceKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return FaceKey{a, b, c}
}

// NewEdgeKey sorts (p, q) ascending into a canonical EdgeKey.
func NewEdgeKey(p, q int) EdgeKey {
	if p > q {
		p, q = q, p
	}
	return EdgeKey{p, q}
}

// Face is an oriented triangle. Vertices is ordered (a, b, c); orientation
// is recorded only here, never in the canonical FaceKey. Normal is the
// cached outward unit normal.
type Face struct {
	Vertices [3]int
	Normal   mgl64.Vec3
}

// Edge is an unordered pair of vertex indices plus its adjacent faces.
// Faces has length 1 while the hull is under construction and length 2
// once the edge is closed and manifold.
type Edge struct {
	P, Q  int
	Faces []FaceKey
}

// GaussPair is the Gauss-map entry of a 2-manifold edge: the outward unit
// normals of its two adjacent faces.
type GaussPair struct {
	A, B mgl64.Vec3
}
