package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// Capsule is a line segment swept by a radius.
type Capsule struct {
	Segment LineSegment
	Radius  float32
}

func NewCapsule(start, end rl.Vector3, radius float32) Capsule {
	return Capsule{Segment: NewLineSegment(start, end), Radius: radius}
}

// PointAt returns the point at parameter t along the capsule's core segment.
func (c Capsule) PointAt(t float32) rl.Vector3 {
	return c.Segment.PointAt(t)
}

func (c Capsule) Contains(point rl.Vector3) bool {
	return c.Segment.MinDistSq(point) <= c.Radius*c.Radius
}

// Intersects reduces capsule-capsule to the segment-segment minimum distance
// compared against the summed radii, squared.
func (c Capsule) Intersects(other Capsule) bool {
	distSq := c.Segment.MinDistSqSegment(other.Segment)
	sum := c.Radius + other.Radius
	return distSq <= sum*sum
}
