package collision

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func unitBox() AABB {
	return NewAABB(v(-1, -1, -1), v(1, 1, 1))
}

func TestAABBContains(t *testing.T) {
	b := unitBox()

	assert.True(t, b.Contains(v(0.8, 0.8, 0.8)))
	assert.True(t, b.Contains(v(1, 1, 1)), "boundary points are inside")
	assert.True(t, b.Contains(v(0, 0, 0)))
	assert.False(t, b.Contains(v(2, 0, 0)))
	assert.False(t, b.Contains(v(0, 0, -1.5)))
}

func TestAABBUpdateMinMax(t *testing.T) {
	b := NewAABB(v(0, 0, 0), v(0, 0, 0))
	b.UpdateMinMax(v(2, -3, 1))
	b.UpdateMinMax(v(-1, 4, 0))

	assert.Equal(t, v(-1, -3, 0), b.Min)
	assert.Equal(t, v(2, 4, 1), b.Max)
}

func TestAABBRotateEnvelope(t *testing.T) {
	b := unitBox()
	b.Rotate(rl.QuaternionFromAxisAngle(v(0, 0, 1), math.Pi/4))

	// A 45 degree spin about Z grows the XY envelope to sqrt(2)
	root2 := float32(math.Sqrt2)
	assert.InDelta(t, -root2, b.Min.X, 1e-4)
	assert.InDelta(t, -root2, b.Min.Y, 1e-4)
	assert.InDelta(t, root2, b.Max.X, 1e-4)
	assert.InDelta(t, root2, b.Max.Y, 1e-4)
	assert.InDelta(t, -1, b.Min.Z, 1e-4)
	assert.InDelta(t, 1, b.Max.Z, 1e-4)
}

func TestAABBIntersects(t *testing.T) {
	a := unitBox()
	overlapping := NewAABB(v(0.5, 0.5, 0.5), v(3, 3, 3))
	touching := NewAABB(v(1, -1, -1), v(2, 1, 1))
	apart := NewAABB(v(5, 5, 5), v(6, 6, 6))

	assert.True(t, a.Intersects(overlapping))
	assert.True(t, overlapping.Intersects(a), "intersection is symmetric")
	assert.True(t, a.Intersects(touching), "shared faces count as intersecting")
	assert.False(t, a.Intersects(apart))
}

func TestAABBMinDistSq(t *testing.T) {
	b := NewAABB(v(1, 1, 1), v(2, 2, 2))

	assert.InDelta(t, 2, b.MinDistSq(v(3, 3, 2)), 1e-4)
	assert.InDelta(t, 0, b.MinDistSq(v(1.5, 1.5, 1.5)), 1e-4, "inside points are at distance zero")
	assert.InDelta(t, 1, b.MinDistSq(v(0, 1.5, 1.5)), 1e-4)
}

func TestSegmentPointAt(t *testing.T) {
	l := NewLineSegment(v(0, 0, 0), v(10, 0, 0))

	assert.Equal(t, v(0, 0, 0), l.PointAt(0))
	assert.Equal(t, v(10, 0, 0), l.PointAt(1))
	assert.Equal(t, v(5, 0, 0), l.PointAt(0.5))
}

func TestSegmentMinDistSqPoint(t *testing.T) {
	l := NewLineSegment(v(0, 0, 0), v(10, 0, 0))

	assert.InDelta(t, 25, l.MinDistSq(v(-5, 0, 0)), 1e-4, "projects before start")
	assert.InDelta(t, 25, l.MinDistSq(v(15, 0, 0)), 1e-4, "projects past end")
	assert.InDelta(t, 25, l.MinDistSq(v(5, 5, 0)), 1e-4, "projects onto the middle")
	assert.InDelta(t, 0, l.MinDistSq(v(3, 0, 0)), 1e-4)
}

func TestSegmentMinDistSqSegment(t *testing.T) {
	l := NewLineSegment(v(0, 0, 0), v(1, 0, 0))

	parallel := NewLineSegment(v(0, 0, 1), v(1, 0, 1))
	assert.InDelta(t, 1, l.MinDistSqSegment(parallel), 1e-4)

	crossing := NewLineSegment(v(0.5, -1, 0), v(0.5, 1, 0))
	assert.InDelta(t, 0, l.MinDistSqSegment(crossing), 1e-4)

	skew := NewLineSegment(v(0.5, -1, 2), v(0.5, 1, 2))
	assert.InDelta(t, 4, l.MinDistSqSegment(skew), 1e-4)

	// Closest approach between endpoint regions
	offEnd := NewLineSegment(v(3, 0, 0), v(4, 0, 0))
	assert.InDelta(t, 4, l.MinDistSqSegment(offEnd), 1e-4)
}

func TestSegmentIntersectPlane(t *testing.T) {
	ground := NewPlane(v(0, 0, 1), 0)

	tHit, ok := NewLineSegment(v(0, 0, -1), v(0, 0, 1)).IntersectPlane(ground)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tHit, 1e-4)

	// Parallel above the plane
	_, ok = NewLineSegment(v(0, 0, 1), v(1, 0, 1)).IntersectPlane(ground)
	assert.False(t, ok)

	// Parallel lying on the plane hits at its start
	tHit, ok = NewLineSegment(v(0, 0, 0), v(1, 0, 0)).IntersectPlane(ground)
	require.True(t, ok)
	assert.Zero(t, tHit)

	// Crossing beyond the segment's extent
	_, ok = NewLineSegment(v(0, 0, 1), v(0, 0, 3)).IntersectPlane(ground)
	assert.False(t, ok)
}

func TestSegmentIntersectSphere(t *testing.T) {
	s := NewSphere(v(0, 0, 0), 1)

	tHit, ok := NewLineSegment(v(-2, 0, 0), v(2, 0, 0)).IntersectSphere(s)
	require.True(t, ok)
	assert.InDelta(t, 0.25, tHit, 1e-4)

	// Starting inside: the exit point is the hit
	tHit, ok = NewLineSegment(v(0, 0, 0), v(3, 0, 0)).IntersectSphere(s)
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, tHit, 1e-4)

	_, ok = NewLineSegment(v(-2, 5, 0), v(2, 5, 0)).IntersectSphere(s)
	assert.False(t, ok)
}

func TestSegmentIntersectAABB(t *testing.T) {
	b := unitBox()

	tHit, normal, ok := NewLineSegment(v(0, -2, 0), v(0, 2, 0)).IntersectAABB(b)
	require.True(t, ok)
	assert.InDelta(t, 0.25, tHit, 1e-4)
	assert.Equal(t, v(0, -1, 0), normal, "entry face normal points back at the segment")

	// Starting inside the box: the exit face is the hit
	tHit, normal, ok = NewLineSegment(v(0, 0, 0), v(0, 2, 0)).IntersectAABB(b)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tHit, 1e-4)
	assert.Equal(t, v(0, 1, 0), normal)

	// Crossing a slab plane off to the side of the box is not a hit
	_, _, ok = NewLineSegment(v(5, -2, 0), v(5, 2, 0)).IntersectAABB(b)
	assert.False(t, ok)

	// Diagonal entry through the min X face
	tHit, normal, ok = NewLineSegment(v(-3, 0, 0), v(1, 0.5, 0)).IntersectAABB(b)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tHit, 1e-4)
	assert.Equal(t, v(-1, 0, 0), normal)
}

func TestSphere(t *testing.T) {
	s := NewSphere(v(0, 0, 0), 5)

	assert.True(t, s.Contains(v(3, 0, 0)))
	assert.True(t, s.Contains(v(5, 0, 0)), "surface points are inside")
	assert.False(t, s.Contains(v(5.1, 0, 0)))

	near := NewSphere(v(4, 0, 0), 1)
	assert.True(t, s.Intersects(near))
	far := NewSphere(v(math.Sqrt2*2, 2, 2), 1)
	// Centers sqrt(12) apart, radii sum 6
	assert.True(t, s.Intersects(far))
	assert.False(t, NewSphere(v(2, 2, 2), 1).Intersects(NewSphere(v(4, 4, 4), 1)))
}

func TestSphereIntersectsAABB(t *testing.T) {
	b := unitBox()

	assert.True(t, NewSphere(v(3, 0, 0), 2).IntersectsAABB(b), "touching counts")
	assert.False(t, NewSphere(v(3, 0, 0), 1.9).IntersectsAABB(b))
	assert.True(t, NewSphere(v(0, 0, 0), 0.1).IntersectsAABB(b), "center inside the box")
}

func TestCapsule(t *testing.T) {
	c := NewCapsule(v(0, 0, 0), v(0, 0, 5), 1)

	assert.Equal(t, v(0, 0, 2.5), c.PointAt(0.5))
	assert.True(t, c.Contains(v(0, 1, 2.5)))
	assert.False(t, c.Contains(v(0, 1.5, 2.5)))

	touching := NewCapsule(v(2, 0, 0), v(2, 0, 5), 1)
	assert.True(t, c.Intersects(touching))
	apart := NewCapsule(v(3, 0, 0), v(3, 0, 5), 1)
	assert.False(t, c.Intersects(apart))
}

func TestPlaneFromPoints(t *testing.T) {
	p := NewPlaneFromPoints(v(0, 0, 0), v(1, 0, 0), v(0, 1, 0))

	assert.InDelta(t, 0, p.Normal.X, 1e-4)
	assert.InDelta(t, 0, p.Normal.Y, 1e-4)
	assert.InDelta(t, 1, p.Normal.Z, 1e-4)
	assert.InDelta(t, 0, p.D, 1e-4)

	assert.InDelta(t, 5, p.SignedDist(v(0, 0, 5)), 1e-4)
	assert.InDelta(t, -3, p.SignedDist(v(7, 7, -3)), 1e-4)
}
