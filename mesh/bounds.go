package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds computes the axis-aligned bounding box over the topology's
// vertex coordinates (spec §4.3). With no vertices, min is +Inf and max is
// -Inf on every axis.
func (t *Topology) Bounds() (min, max mgl64.Vec3) {
	min = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}

	for _, v := range t.vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < min[axis] {
				min[axis] = v[axis]
			}
			if v[axis] > max[axis] {
				max[axis] = v[axis]
			}
		}
	}

	return min, max
}
