package mesh

import "github.com/go-gl/mathgl/mgl64"

// Topology is the aggregate described in spec §3: an immutable vertex
// array, a face table, and an edge table, keyed canonically so that
// identity never depends on insertion order.
//
// Topology is born inside hull.Build and mutated only through the
// exported mutation methods below, which exist for hull.Build's use.
// Once Build returns, treat the value as frozen: sat.Tester consumes it
// read-only, and Translate is the only mutation a caller should make
// thereafter (see spec §9, "translation as the only transform").
type Topology struct {
	vertices []mgl64.Vec3
	faces    map[FaceKey]Face
	edges    map[EdgeKey]Edge

	finalized     bool
	manifoldEdges []Edge
	gaussMap      []GaussPair
}

// NewTopology allocates an empty topology over the given vertex slice.
// The slice is retained, not copied; callers must not alias it elsewhere.
func NewTopology(vertices []mgl64.Vec3) *Topology {
	return &Topology{
		vertices: vertices,
		faces:    make(map[FaceKey]Face),
		edges:    make(map[EdgeKey]Edge),
	}
}

// Vertices returns the input vertex array. Indices into it are the stable
// vertex identities used throughout Face and Edge.
func (t *Topology) Vertices() []mgl64.Vec3 {
	return t.vertices
}

// VertexCount reports len(Vertices()).
func (t *Topology) VertexCount() int {
	return len(t.vertices)
}

// AddFace inserts an oriented face (a, b, c) with the given outward
// normal, keyed canonically, and records it as adjacent to each of its
// three edges (creating edges that don't exist yet).
func (t *Topology) AddFace(a, b, c int, normal mgl64.Vec3) FaceKey {
	key := NewFaceKey(a, b, c)
	t.faces[key] = Face{Vertices: [3]int{a, b, c}, Normal: normal}

	t.linkEdge(a, b, key)
	t.linkEdge(b, c, key)
	t.linkEdge(c, a, key)

	return key
}

// linkEdge appends faceKey to the adjacency list of edge (p, q), creating
// the edge if it doesn't already exist.
func (t *Topology) linkEdge(p, q int, faceKey FaceKey) {
	key := NewEdgeKey(p, q)
	e, ok := t.edges[key]
	if !ok {
		e = Edge{P: key[0], Q: key[1]}
	}
	e.Faces = append(e.Faces, faceKey)
	t.edges[key] = e
}

// UnlinkEdgeFace removes faceKey from edge (p, q)'s adjacency list,
// leaving the edge itself in place. Used by the horizon step (spec §4.1
// step 2) to detach a visible face from a horizon edge while keeping the
// edge alive for its new, invisible-side face.
func (t *Topology) UnlinkEdgeFace(p, q int, faceKey FaceKey) {
	key := NewEdgeKey(p, q)
	e, ok := t.edges[key]
	if !ok {
		return
	}
	for i, fk := range e.Faces {
		if fk == faceKey {
			e.Faces = append(e.Faces[:i], e.Faces[i+1:]...)
			break
		}
	}
	t.edges[key] = e
}

// RemoveFace deletes a face from the topology. It does not touch edge
// adjacency; callers must unlink the face from its edges first (or
// delete the edges outright, as the interior-edge garbage-collection
// step does).
func (t *Topology) RemoveFace(key FaceKey) {
	delete(t.faces, key)
}

// RemoveEdge deletes an edge outright. Used for edges interior to the
// visible region during a hull insertion step (spec §4.1 step 2, "both
// visible").
func (t *Topology) RemoveEdge(p, q int) {
	delete(t.edges, NewEdgeKey(p, q))
}

// Face looks up a face by its canonical key.
func (t *Topology) Face(key FaceKey) (Face, bool) {
	f, ok := t.faces[key]
	return f, ok
}

// Edge looks up an edge by its canonical key.
func (t *Topology) Edge(p, q int) (Edge, bool) {
	e, ok := t.edges[NewEdgeKey(p, q)]
	return e, ok
}

// FaceKeys returns a snapshot of every current face key. The order is the
// map's iteration order and is not meaningful; the face *set* is the
// deterministic quantity (spec §5, ordering guarantees).
func (t *Topology) FaceKeys() []FaceKey {
	keys := make([]FaceKey, 0, len(t.faces))
	for k := range t.faces {
		keys = append(keys, k)
	}
	return keys
}

// EdgeKeys returns a snapshot of every current edge key.
func (t *Topology) EdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(t.edges))
	for k := range t.edges {
		keys = append(keys, k)
	}
	return keys
}

// FaceCount and EdgeCount report the current table sizes.
func (t *Topology) FaceCount() int { return len(t.faces) }
func (t *Topology) EdgeCount() int { return len(t.edges) }

// Finalize computes the derived Gauss-map arrays SatTester consumes: the
// per-edge pair of adjacent outward face normals, restricted to edges
// that are 2-manifold (spec §4.1 termination, §7 NonManifoldEdge).
//
// Per spec §9 and the original_source supplement: a non-manifold edge is
// excluded from Edges()/EdgeGaussMap() but its faces remain in the face
// table untouched. Finalize returns the keys of excluded edges so the
// caller (hull.Build) can report them through a diagnostic sink.
func (t *Topology) Finalize() (nonManifold []EdgeKey) {
	t.manifoldEdges = t.manifoldEdges[:0]
	t.gaussMap = t.gaussMap[:0]

	for key, e := range t.edges {
		if len(e.Faces) != 2 {
			nonManifold = append(nonManifold, key)
			continue
		}
		fa, okA := t.faces[e.Faces[0]]
		fb, okB := t.faces[e.Faces[1]]
		if !okA || !okB {
			nonManifold = append(nonManifold, key)
			continue
		}
		t.manifoldEdges = append(t.manifoldEdges, e)
		t.gaussMap = append(t.gaussMap, GaussPair{A: fa.Normal, B: fb.Normal})
	}

	t.finalized = true
	return nonManifold
}

// Finalized reports whether Finalize has been called.
func (t *Topology) Finalized() bool { return t.finalized }

// FaceNormals returns the outward unit normal of every current face.
func (t *Topology) FaceNormals() []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, 0, len(t.faces))
	for _, f := range t.faces {
		normals = append(normals, f.Normal)
	}
	return normals
}

// Edges returns the 2-manifold edges computed by Finalize. Calling it
// before Finalize returns an empty slice.
func (t *Topology) Edges() []Edge {
	return t.manifoldEdges
}

// EdgeGaussMap returns the Gauss-map pair for each edge in Edges(), at
// matching indices.
func (t *Topology) EdgeGaussMap() []GaussPair {
	return t.gaussMap
}

// Translate adds t to every vertex in place. Normals and edge/face
// connectivity are translation-invariant and are left untouched (spec
// §4.3, §9).
func (t *Topology) Translate(delta mgl64.Vec3) {
	for i := range t.vertices {
		t.vertices[i] = t.vertices[i].Add(delta)
	}
}
