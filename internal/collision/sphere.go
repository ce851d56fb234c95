package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// Sphere is a center point and a radius.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) Contains(point rl.Vector3) bool {
	d := rl.Vector3Subtract(s.Center, point)
	return rl.Vector3DotProduct(d, d) <= s.Radius*s.Radius
}

func (s Sphere) Intersects(other Sphere) bool {
	d := rl.Vector3Subtract(s.Center, other.Center)
	sum := s.Radius + other.Radius
	return rl.Vector3DotProduct(d, d) <= sum*sum
}

// IntersectsAABB compares the squared distance from the center to the box
// against the squared radius.
func (s Sphere) IntersectsAABB(b AABB) bool {
	return b.MinDistSq(s.Center) <= s.Radius*s.Radius
}
