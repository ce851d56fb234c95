package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// Plane is a unit normal plus the signed distance d, with d = -dot(p, normal)
// for any point p on the plane.
type Plane struct {
	Normal rl.Vector3
	D      float32
}

func NewPlane(normal rl.Vector3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromPoints derives the plane through a, b and c from the cross
// product of the two edge vectors.
func NewPlaneFromPoints(a, b, c rl.Vector3) Plane {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)

	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(ab, ac))
	d := -rl.Vector3DotProduct(a, normal)

	return Plane{Normal: normal, D: d}
}

func (p Plane) SignedDist(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(point, p.Normal) - p.D
}
