// Package sat implements spec §4.2's Separating Axis Theorem test for two
// convex polyhedra (mesh.Topology values produced by hull.Build): face
// normal axes from both bodies, plus Gauss-map-pruned edge-pair axes
// (spec §4.2 step 2, the Minkowski-face test).
package sat

import (
	"github.com/akmonengine/halfspace/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// buildAxes returns every candidate separating axis for the pair (a, b):
// both bodies' face normals, followed by the edge-pair cross products
// that survive the Minkowski-face pruning test.
func buildAxes(a, b *mesh.Topology) []mgl64.Vec3 {
	axes := make([]mgl64.Vec3, 0, a.FaceCount()+b.FaceCount())
	axes = append(axes, a.FaceNormals()...)
	axes = append(axes, b.FaceNormals()...)
	axes = append(axes, edgeEdgeAxes(a, b)...)
	return axes
}

// edgeEdgeAxes returns cross(eA, eB) for every edge pair (eA from a, eB
// from b) whose Gauss-map arcs intersect on the unit sphere, with b's arc
// taken antipodally (spec §4.2 step 2): the pair forms a face of the
// Minkowski difference only when a's arc crosses the negated arc of b, so
// pairs that fail the test can never be a separating axis and are skipped.
func edgeEdgeAxes(a, b *mesh.Topology) []mgl64.Vec3 {
	aEdges, aGauss := a.Edges(), a.EdgeGaussMap()
	bEdges, bGauss := b.Edges(), b.EdgeGaussMap()
	verticesA, verticesB := a.Vertices(), b.Vertices()

	var axes []mgl64.Vec3

	for i, eA := range aEdges {
		dirA := verticesA[eA.P].Sub(verticesA[eA.Q])
		gA, gB := aGauss[i].A, aGauss[i].B

		for j, eB := range bEdges {
			gC, gD := bGauss[j].A.Mul(-1), bGauss[j].B.Mul(-1)

			if !isMinkowskiFace(gA, gB, gC, gD) {
				continue
			}

			dirB := verticesB[eB.P].Sub(verticesB[eB.Q])
			cross := dirA.Cross(dirB)
			if cross.LenSqr() == 0 {
				continue
			}
			axes = append(axes, cross)
		}
	}

	return axes
}

// isMinkowskiFace reports whether the edge pair whose adjacent-face
// normals are (a, b) and, negated, (c, d) spans a face of the Minkowski
// difference, following the three-sign test of the original
// collision_detection.py SAT3D._build_proj_axes: the Gauss-map arc (a, b)
// and arc (c, d) must cross on the unit sphere, which holds iff c and d
// fall on opposite sides of the plane with normal (b x a), a and b do
// the same relative to (d x c), and the two great-circle planes agree in
// orientation.
func isMinkowskiFace(a, b, c, d mgl64.Vec3) bool {
	bxa := b.Cross(a)
	dxc := d.Cross(c)

	cba := c.Dot(bxa)
	dba := d.Dot(bxa)
	adc := a.Dot(dxc)
	bdc := b.Dot(dxc)

	return cba*dba < 0 && adc*bdc < 0 && cba*bdc > 0
}
