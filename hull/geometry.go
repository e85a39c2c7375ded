package hull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// signedVolume is the determinant of the 4x4 homogeneous matrix
// [[a,1],[b,1],[c,1],[p,1]], computed as the scalar triple product
// (a-p)·((b-p)×(c-p)). It equals the outward-normal-invariant
// determinant of spec §3 when p is an interior reference point, and
// spec §4.1's s(f,p) visibility test when p is a candidate vertex:
// negative means p is on the outward side of the oriented face (a,b,c).
//
// No tolerance is applied (spec §4.1): exact zero is the only
// coplanarity signal unless a caller opts into config.CoplanarEpsilon.
func signedVolume(a, b, c, p mgl64.Vec3) float64 {
	return a.Sub(p).Dot(b.Sub(p).Cross(c.Sub(p)))
}

// faceNormal is the standard cross-product normal of oriented triangle
// (a,b,c), normalized. Combined with signedVolume's sign convention,
// n·(a-p0) has the sign of signedVolume(a,b,c,p0) (it is that volume
// divided by |(b-a)×(c-a)|), so a face oriented per §4.1 automatically
// satisfies the outward-normal invariant of §3/§8 property 4.
func faceNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// isCoplanar reports whether s should be treated as the §4.1 coplanar
// signal. With epsilon <= 0 (the default, spec §9) this is the fragile
// exact-zero test; with epsilon > 0 it is a symmetric tolerance band.
func isCoplanar(s, epsilon float64) bool {
	if epsilon <= 0 {
		return s == 0
	}
	return math.Abs(s) <= epsilon
}
