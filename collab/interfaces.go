// Package collab declares the handoff points a caller wires halfspace
// into, without implementing any of them: mesh I/O and rendering are
// collaborator concerns, explicitly out of this module's scope.
package collab

import (
	"github.com/akmonengine/halfspace/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// MeshSource is implemented by a mesh loader. File formats, parsing, and
// I/O belong to the collaborator, not to halfspace.
type MeshSource interface {
	Load(path string) (vertices []mgl64.Vec3, triangles [][3]uint32, err error)
}

// MeshSink is implemented by a mesh writer, the dual of MeshSource.
type MeshSink interface {
	Save(path string, vertices []mgl64.Vec3, triangles [][3]uint32) error
}

// Visualizer renders a built hull's triangles and wireframe with a
// per-body color. halfspace never draws anything itself.
type Visualizer interface {
	Draw(topology *mesh.Topology, color [3]float32) error
}
