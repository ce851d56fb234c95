package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned bounding box defined by its min/max corners.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func NewAABB(min, max rl.Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// UpdateMinMax grows the box so it contains point.
func (a *AABB) UpdateMinMax(point rl.Vector3) {
	a.Min.X = min(a.Min.X, point.X)
	a.Min.Y = min(a.Min.Y, point.Y)
	a.Min.Z = min(a.Min.Z, point.Z)
	a.Max.X = max(a.Max.X, point.X)
	a.Max.Y = max(a.Max.Y, point.Y)
	a.Max.Z = max(a.Max.Z, point.Z)
}

// Rotate rotates the 8 corners of the box by q and re-derives the
// axis-aligned min/max envelope. The result is a conservative box, not a
// tight rotated one.
func (a *AABB) Rotate(q rl.Quaternion) {
	corners := [8]rl.Vector3{
		// Min point is always a corner
		a.Min,
		// Permutations with 2 min and 1 max
		{X: a.Min.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Min.Z},
		// Permutations with 2 max and 1 min
		{X: a.Max.X, Y: a.Max.Y, Z: a.Min.Z},
		{X: a.Max.X, Y: a.Min.Y, Z: a.Max.Z},
		{X: a.Min.X, Y: a.Max.Y, Z: a.Max.Z},
		// Max point corner
		a.Max,
	}

	p := rl.Vector3RotateByQuaternion(corners[0], q)
	a.Min = p
	a.Max = p
	for _, corner := range corners[1:] {
		a.UpdateMinMax(rl.Vector3RotateByQuaternion(corner, q))
	}
}

func (a AABB) Contains(point rl.Vector3) bool {
	outside := point.X < a.Min.X ||
		point.Y < a.Min.Y ||
		point.Z < a.Min.Z ||
		point.X > a.Max.X ||
		point.Y > a.Max.Y ||
		point.Z > a.Max.Z
	return !outside
}

// Intersects is three interval-overlap tests, one per axis.
func (a AABB) Intersects(b AABB) bool {
	no := a.Max.X < b.Min.X ||
		a.Max.Y < b.Min.Y ||
		a.Max.Z < b.Min.Z ||
		b.Max.X < a.Min.X ||
		b.Max.Y < a.Min.Y ||
		b.Max.Z < a.Min.Z
	return !no
}

// MinDistSq returns the squared distance from point to the box, zero if the
// point is inside.
func (a AABB) MinDistSq(point rl.Vector3) float32 {
	dx := max(a.Min.X-point.X, 0, point.X-a.Max.X)
	dy := max(a.Min.Y-point.Y, 0, point.Y-a.Max.Y)
	dz := max(a.Min.Z-point.Z, 0, point.Z-a.Max.Z)
	return dx*dx + dy*dy + dz*dz
}
