package main

import (
	"fmt"
	"log/slog"

	"github.com/akmonengine/halfspace/collab"
	"github.com/akmonengine/halfspace/diag"
	"github.com/akmonengine/halfspace/hull"
	"github.com/akmonengine/halfspace/sat"
	"github.com/go-gl/mathgl/mgl64"
)

// inMemorySource is a trivial collab.MeshSource that hands back a fixed
// vertex cloud instead of reading a file. Real loaders are a collaborator
// concern (SPEC_FULL §6); this exists only to give the demo something to
// call through the interface.
type inMemorySource struct {
	clouds map[string][]mgl64.Vec3
}

func (s inMemorySource) Load(path string) ([]mgl64.Vec3, [][3]uint32, error) {
	cloud, ok := s.clouds[path]
	if !ok {
		return nil, nil, fmt.Errorf("basichull: unknown source %q", path)
	}
	return cloud, nil, nil
}

var _ collab.MeshSource = inMemorySource{}

func main() {
	source := inMemorySource{clouds: map[string][]mgl64.Vec3{
		"cube-a": {
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
			{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		},
		"cube-b": {
			{0.5, 0.5, 0.5}, {1.5, 0.5, 0.5}, {0.5, 1.5, 0.5}, {0.5, 0.5, 1.5},
			{1.5, 1.5, 0.5}, {1.5, 0.5, 1.5}, {0.5, 1.5, 1.5}, {1.5, 1.5, 1.5},
		},
	}}

	verticesA, _, err := source.Load("cube-a")
	if err != nil {
		slog.Error("load failed", "error", err)
		return
	}
	verticesB, _, err := source.Load("cube-b")
	if err != nil {
		slog.Error("load failed", "error", err)
		return
	}

	sink := diag.NewSlogSink(slog.Default())

	bodyA, err := hull.Build(verticesA, hull.WithSink(sink))
	if err != nil {
		slog.Error("hull build failed", "body", "A", "error", err)
		return
	}
	bodyB, err := hull.Build(verticesB, hull.WithSink(sink))
	if err != nil {
		slog.Error("hull build failed", "body", "B", "error", err)
		return
	}

	bodyA.Finalize()
	bodyB.Finalize()

	tester := sat.New(bodyA, bodyB, sat.WithNumChunks(80))
	fmt.Printf("cube-a faces=%d edges=%d\n", bodyA.FaceCount(), bodyA.EdgeCount())
	fmt.Printf("cube-b faces=%d edges=%d\n", bodyB.FaceCount(), bodyB.EdgeCount())
	fmt.Printf("overlapping: %v\n", tester.HitTest())

	bodyB.Translate(mgl64.Vec3{10, 10, 10})
	fmt.Printf("after translating cube-b away, overlapping: %v\n", tester.HitTest())
}
