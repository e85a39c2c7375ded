// Package hull implements spec §4.1's incremental, Quickhull-style
// construction of a convex polytope from an unordered point set: seed
// tetrahedron, then per-vertex visibility classification, horizon
// identification, and cone construction, maintained as canonical-keyed
// face/edge tables (mesh.Topology).
package hull

import (
	"github.com/akmonengine/halfspace/config"
	"github.com/akmonengine/halfspace/diag"
	"github.com/akmonengine/halfspace/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// Build constructs the convex hull of vertices: a closed, triangulated,
// 2-manifold MeshTopology whose vertex set is a subset of vertices and
// whose convex hull equals conv(vertices). A vertex whose signed volume
// against any current face is exactly zero (or within CoplanarEpsilon) is
// skipped even when it lies outside the hull, so on such inputs the
// result can be smaller than conv(vertices).
//
// Fails with a *HullError carrying InsufficientPoints if len(vertices) <
// 4, or DegenerateInput if the first four vertices are exactly coplanar.
// All other edge cases (spec §4.1's edge-case policies) are recovered
// locally and reported through the configured diag.Sink, never returned.
func Build(vertices []mgl64.Vec3, opts ...Option) (*mesh.Topology, error) {
	o := resolveOptions(opts)

	n := len(vertices)
	if n < 4 {
		return nil, &HullError{Kind: InsufficientPoints, N: n}
	}

	topo := mesh.NewTopology(vertices)

	if err := seedTetrahedron(topo); err != nil {
		return nil, err
	}

	for i := 4; i < n; i++ {
		insertVertex(topo, i, o.cfg, o.sink)

		if o.cfg.ShowProgress {
			o.sink.Notify(diag.Notice{Kind: diag.Progress, VertexIndex: i})
		}
	}

	nonManifold := topo.Finalize()
	for _, key := range nonManifold {
		o.sink.Notify(diag.Notice{Kind: diag.NonManifoldEdge, EdgeP: key[0], EdgeQ: key[1]})
	}

	return topo, nil
}

// seedTetrahedron builds the four faces of the initial tetrahedron from
// input vertex indices 0..3, fixing orientation per face so every
// apex-to-face signed volume is positive (interior), per spec §4.1.
func seedTetrahedron(topo *mesh.Topology) error {
	v := topo.Vertices()

	type seedFace struct{ a, b, c, d int }
	faces := [4]seedFace{
		{1, 2, 3, 0},
		{0, 2, 3, 1},
		{0, 1, 3, 2},
		{0, 1, 2, 3},
	}

	for _, sf := range faces {
		vol := signedVolume(v[sf.a], v[sf.b], v[sf.c], v[sf.d])
		if vol == 0 {
			return &HullError{Kind: DegenerateInput}
		}

		a, b, c := sf.a, sf.b, sf.c
		if vol < 0 {
			b, c = c, b
		}

		topo.AddFace(a, b, c, faceNormal(v[a], v[b], v[c]))
	}

	return nil
}

// horizonEdge is a border edge between the visible region swept away by
// vertex p and the remaining invisible hull (spec §4.1 step 2). apex is
// the vertex of the surviving invisible face that is not on the edge,
// kept only as an orientation reference for the new cone face (it lies
// strictly behind the new face's plane).
type horizonEdge struct {
	q1, q2 int
	apex   int
}

// insertVertex performs one incremental step of spec §4.1 for input
// vertex index p: visibility classification, horizon identification,
// cone construction, and garbage collection.
func insertVertex(topo *mesh.Topology, p int, cfg config.Config, sink diag.Sink) {
	vertices := topo.Vertices()
	pv := vertices[p]

	faceKeys := topo.FaceKeys()
	visible := make(map[mesh.FaceKey]bool, len(faceKeys))
	anyVisible := false

	for _, key := range faceKeys {
		f, _ := topo.Face(key)
		a, b, c := vertices[f.Vertices[0]], vertices[f.Vertices[1]], vertices[f.Vertices[2]]
		s := signedVolume(a, b, c, pv)

		if isCoplanar(s, cfg.CoplanarEpsilon) {
			sink.Notify(diag.Notice{Kind: diag.CoplanarSkip, VertexIndex: p})
			return
		}

		vis := s < 0
		visible[key] = vis
		anyVisible = anyVisible || vis
	}

	if !anyVisible {
		// Strictly interior point: no face visible, nothing to do.
		return
	}

	horizon := identifyHorizon(topo, visible)

	for key, vis := range visible {
		if vis {
			topo.RemoveFace(key)
		}
	}

	for _, h := range horizon {
		buildConeFace(topo, h, p, pv, vertices, sink)
	}
}

// identifyHorizon partitions every current edge by the visibility of its
// adjacent faces (spec §4.1 step 2): interior edges are deleted outright,
// untouched edges are left alone, and horizon edges have their visible
// face detached and are returned for cone construction.
func identifyHorizon(topo *mesh.Topology, visible map[mesh.FaceKey]bool) []horizonEdge {
	var horizon []horizonEdge

	for _, ek := range topo.EdgeKeys() {
		e, ok := topo.Edge(ek[0], ek[1])
		if !ok || len(e.Faces) < 2 {
			continue
		}

		f0Vis, f1Vis := visible[e.Faces[0]], visible[e.Faces[1]]

		switch {
		case f0Vis && f1Vis:
			topo.RemoveEdge(e.P, e.Q)
		case !f0Vis && !f1Vis:
			// Untouched.
		default:
			visibleKey, invisibleKey := e.Faces[0], e.Faces[1]
			if !f0Vis {
				visibleKey, invisibleKey = e.Faces[1], e.Faces[0]
			}

			visFace, _ := topo.Face(visibleKey)
			invFace, _ := topo.Face(invisibleKey)
			apex := apexVertex(invFace, visFace)

			topo.UnlinkEdgeFace(e.P, e.Q, visibleKey)
			horizon = append(horizon, horizonEdge{q1: e.P, q2: e.Q, apex: apex})
		}
	}

	return horizon
}

// buildConeFace creates the new triangle joining horizon edge h to the
// newly inserted vertex p, oriented per spec §4.1 step 3 using h.apex
// as the reference point known to lie on the interior side.
func buildConeFace(topo *mesh.Topology, h horizonEdge, p int, pv mgl64.Vec3, vertices []mgl64.Vec3, sink diag.Sink) {
	q1v, q2v, apexV := vertices[h.q1], vertices[h.q2], vertices[h.apex]

	var a, b, c int
	if signedVolume(q1v, q2v, pv, apexV) > 0 {
		a, b, c = h.q1, h.q2, p
	} else {
		a, b, c = h.q1, p, h.q2
	}

	topo.AddFace(a, b, c, faceNormal(vertices[a], vertices[b], vertices[c]))

	for _, pair := range [3][2]int{{a, b}, {b, c}, {c, a}} {
		if e, ok := topo.Edge(pair[0], pair[1]); ok && len(e.Faces) > 2 {
			sink.Notify(diag.Notice{Kind: diag.TopologyViolation, EdgeP: pair[0], EdgeQ: pair[1], Message: "edge gained a third adjacent face"})
		}
	}
}

// apexVertex returns the vertex of face that is not a vertex of neighbor
// (the face across the shared edge): called with the invisible face
// first, it yields the point used to orient the new cone face.
func apexVertex(face, neighbor mesh.Face) int {
	for _, v := range face.Vertices {
		if v != neighbor.Vertices[0] && v != neighbor.Vertices[1] && v != neighbor.Vertices[2] {
			return v
		}
	}
	return face.Vertices[0]
}
