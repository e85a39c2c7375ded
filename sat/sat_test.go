package sat

import (
	"testing"

	"github.com/akmonengine/halfspace/hull"
	"github.com/akmonengine/halfspace/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitCube returns a near-unit cube translated by offset. The three corners
// that would otherwise be exactly coplanar with a seed-tetrahedron
// coordinate-plane face ({1,1,0}, {1,0,1}, {0,1,1}) are nudged off that
// plane, and the far corner {1,1,1} is pulled slightly inward so it is not
// coplanar with the faces those nudged corners form, matching hull.cube's
// fixture: hull.Build would otherwise discard them under the exact-==0
// coplanar-skip policy and hand SAT a partial hull instead of an
// 8-vertex box. The nudges keep the [0,1] extent on every axis, so two
// unitCube hulls at different offsets still touch on the plane where
// their extents meet (needed by the touching-cubes scenarios below).
func unitCube(offset mgl64.Vec3) []mgl64.Vec3 {
	pts := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0.013}, {1, 0.029, 1}, {0.007, 1, 1}, {0.991, 0.983, 0.997},
	}
	for i, p := range pts {
		pts[i] = p.Add(offset)
	}
	return pts
}

func TestHitTest(t *testing.T) {
	t.Run("OverlappingCubes", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{0.5, 0.5, 0.5}))
		require.NoError(t, errB)
		b.Finalize()

		tester := New(a, b)
		assert.True(t, tester.HitTest())
	})

	t.Run("SeparatedCubes", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{5, 5, 5}))
		require.NoError(t, errB)
		b.Finalize()

		tester := New(a, b)
		assert.False(t, tester.HitTest())
	})

	t.Run("TouchingCubesAreConsideredOverlapping", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{1, 0, 0}))
		require.NoError(t, errB)
		b.Finalize()

		tester := New(a, b)
		assert.True(t, tester.HitTest(), "closed intervals touching at a boundary count as overlap (spec property 6)")
	})

	t.Run("ResultIndependentOfNumChunks", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{0.3, 0.3, 0.3}))
		require.NoError(t, errB)
		b.Finalize()

		for _, n := range []uint32{1, 2, 8, 80, 1000} {
			tester := New(a, b, WithNumChunks(n))
			assert.True(t, tester.HitTest(), "NumChunks=%d must not change the result", n)
		}
	})

	t.Run("ResultIndependentOfWorkerCount", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{5, 5, 5}))
		require.NoError(t, errB)
		b.Finalize()

		for _, w := range []int{1, 2, 4, 16} {
			tester := New(a, b, WithWorkers(w))
			assert.False(t, tester.HitTest(), "Workers=%d must not change the result", w)
		}
	})

	t.Run("TranslationUpdatesResult", func(t *testing.T) {
		a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
		require.NoError(t, errA)
		a.Finalize()

		b, errB := hull.Build(unitCube(mgl64.Vec3{5, 5, 5}))
		require.NoError(t, errB)
		b.Finalize()

		tester := New(a, b)
		require.False(t, tester.HitTest())

		b.Translate(mgl64.Vec3{-5, -5, -5})
		assert.True(t, tester.HitTest(), "HitTest must reflect the body's current translated position")
	})
}

func TestBuildAxesIncludesFaceNormalsOfBoth(t *testing.T) {
	a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
	require.NoError(t, errA)
	a.Finalize()

	b, errB := hull.Build(unitCube(mgl64.Vec3{3, 0, 0}))
	require.NoError(t, errB)
	b.Finalize()

	axes := buildAxes(a, b)
	assert.GreaterOrEqual(t, len(axes), a.FaceCount()+b.FaceCount())
}

// bruteForceOverlap is the ground-truth oracle for S6: it tests every
// face normal of both bodies plus every edge-pair cross product with no
// Gauss-map pruning, unlike buildAxes. It exists only to cross-check
// HitTest's pruned axis set against the unpruned one and is never
// called from the production path.
func bruteForceOverlap(a, b *mesh.Topology) bool {
	axes := append([]mgl64.Vec3{}, a.FaceNormals()...)
	axes = append(axes, b.FaceNormals()...)

	verticesA, verticesB := a.Vertices(), b.Vertices()
	for _, eA := range a.Edges() {
		dirA := verticesA[eA.P].Sub(verticesA[eA.Q])
		for _, eB := range b.Edges() {
			dirB := verticesB[eB.P].Sub(verticesB[eB.Q])
			cross := dirA.Cross(dirB)
			if cross.LenSqr() > 0 {
				axes = append(axes, cross)
			}
		}
	}

	return !chunkSeparates(axes, verticesA, verticesB)
}

func TestHitTestMatchesBruteForceOracle(t *testing.T) {
	cases := []struct {
		name   string
		offset mgl64.Vec3
	}{
		{"Overlapping", mgl64.Vec3{0.5, 0.5, 0.5}},
		{"Separated", mgl64.Vec3{5, 5, 5}},
		{"EdgeOnEdgeNearMiss", mgl64.Vec3{1, 1, 0.99}},
		{"Touching", mgl64.Vec3{1, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, errA := hull.Build(unitCube(mgl64.Vec3{0, 0, 0}))
			require.NoError(t, errA)
			a.Finalize()

			b, errB := hull.Build(unitCube(tc.offset))
			require.NoError(t, errB)
			b.Finalize()

			want := bruteForceOverlap(a, b)
			got := New(a, b).HitTest()
			assert.Equal(t, want, got, "Gauss-map-pruned HitTest must agree with the unpruned brute-force oracle")
		})
	}
}
