package collision

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineSegment runs from Start to End; points on it are parameterized by
// t in [0, 1].
type LineSegment struct {
	Start rl.Vector3
	End   rl.Vector3
}

func NewLineSegment(start, end rl.Vector3) LineSegment {
	return LineSegment{Start: start, End: end}
}

// PointAt returns Start + (End-Start)*t.
func (l LineSegment) PointAt(t float32) rl.Vector3 {
	return rl.Vector3Add(l.Start, rl.Vector3Scale(rl.Vector3Subtract(l.End, l.Start), t))
}

// MinDistSq returns the squared distance from point to the segment.
func (l LineSegment) MinDistSq(point rl.Vector3) float32 {
	ab := rl.Vector3Subtract(l.End, l.Start)
	ba := rl.Vector3Scale(ab, -1)
	ac := rl.Vector3Subtract(point, l.Start)
	bc := rl.Vector3Subtract(point, l.End)

	// Case 1: point projects before Start
	if rl.Vector3DotProduct(ab, ac) < 0 {
		return rl.Vector3DotProduct(ac, ac)
	}
	// Case 2: point projects past End
	if rl.Vector3DotProduct(ba, bc) < 0 {
		return rl.Vector3DotProduct(bc, bc)
	}
	// Case 3: point projects onto the segment
	scalar := rl.Vector3DotProduct(ac, ab) / rl.Vector3DotProduct(ab, ab)
	p := rl.Vector3Scale(ab, scalar)
	d := rl.Vector3Subtract(ac, p)
	return rl.Vector3DotProduct(d, d)
}

// MinDistSqSegment returns the squared distance between the closest points of
// two segments, clamping both parameters into [0, 1]. Near-parallel segments
// take a guarded branch instead of dividing by the vanishing denominator.
func (l LineSegment) MinDistSqSegment(other LineSegment) float32 {
	u := rl.Vector3Subtract(l.End, l.Start)
	v := rl.Vector3Subtract(other.End, other.Start)
	w := rl.Vector3Subtract(l.Start, other.Start)

	a := rl.Vector3DotProduct(u, u) // always >= 0
	b := rl.Vector3DotProduct(u, v)
	c := rl.Vector3DotProduct(v, v) // always >= 0
	d := rl.Vector3DotProduct(u, w)
	e := rl.Vector3DotProduct(v, w)

	denom := a*c - b*b // always >= 0
	sn, sd := denom, denom
	tn, td := denom, denom

	if nearZero(denom) {
		// Segments almost parallel: pin s to 0 on the first segment to
		// avoid dividing by the degenerate denominator.
		sn = 0
		sd = 1
		tn = e
		td = c
	} else {
		// Closest points on the infinite lines
		sn = b*e - c*d
		tn = a*e - b*d
		if sn < 0 {
			// s < 0, the s=0 edge is visible
			sn = 0
			tn = e
			td = c
		} else if sn > sd {
			// s > 1, the s=1 edge is visible
			sn = sd
			tn = e + b
			td = c
		}
	}

	if tn < 0 {
		// t < 0, the t=0 edge is visible; recompute s
		tn = 0
		if -d < 0 {
			sn = 0
		} else if -d > a {
			sn = sd
		} else {
			sn = -d
			sd = a
		}
	} else if tn > td {
		// t > 1, the t=1 edge is visible; recompute s
		tn = td
		if -d+b < 0 {
			sn = 0
		} else if -d+b > a {
			sn = sd
		} else {
			sn = -d + b
			sd = a
		}
	}

	var sc, tc float32
	if !nearZero(sn) {
		sc = sn / sd
	}
	if !nearZero(tn) {
		tc = tn / td
	}

	// Difference of the two closest points
	dp := rl.Vector3Add(w, rl.Vector3Subtract(rl.Vector3Scale(u, sc), rl.Vector3Scale(v, tc)))
	return rl.Vector3DotProduct(dp, dp)
}

// IntersectPlane returns the parameter where the segment crosses the plane.
func (l LineSegment) IntersectPlane(p Plane) (float32, bool) {
	dir := rl.Vector3Subtract(l.End, l.Start)
	denom := rl.Vector3DotProduct(dir, p.Normal)
	if nearZero(denom) {
		// Segment parallel to the plane: hit only if Start already lies on it
		if nearZero(p.SignedDist(l.Start)) {
			return 0, true
		}
		return 0, false
	}
	numer := -rl.Vector3DotProduct(l.Start, p.Normal) - p.D
	t := numer / denom
	if t >= 0 && t <= 1 {
		return t, true
	}
	return 0, false
}

// IntersectSphere solves |Start + dir*t - Center|^2 = r^2 for the first
// t in [0, 1].
func (l LineSegment) IntersectSphere(s Sphere) (float32, bool) {
	x := rl.Vector3Subtract(l.Start, s.Center)
	y := rl.Vector3Subtract(l.End, l.Start)

	a := rl.Vector3DotProduct(y, y)
	b := 2 * rl.Vector3DotProduct(x, y)
	c := rl.Vector3DotProduct(x, x) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	disc = float32(math.Sqrt(float64(disc)))

	// Min of the two roots first; fall back to max for segments starting
	// inside the sphere.
	tMin := (-b - disc) / (2 * a)
	tMax := (-b + disc) / (2 * a)
	if tMin >= 0 && tMin <= 1 {
		return tMin, true
	}
	if tMax >= 0 && tMax <= 1 {
		return tMax, true
	}
	return 0, false
}

// testSidePlane tests the segment's 1D motion on one axis against a single
// slab plane, appending (t, normal) when the crossing lies within [0, 1].
func testSidePlane(start, end, negd float32, normal rl.Vector3, out *[]planeHit) {
	denom := end - start
	if nearZero(denom) {
		return
	}
	t := (-start + negd) / denom
	if t >= 0 && t <= 1 {
		*out = append(*out, planeHit{t: t, normal: normal})
	}
}

type planeHit struct {
	t      float32
	normal rl.Vector3
}

// IntersectAABB runs the 6-plane slab test: every axis contributes its min
// and max side plane. Candidate crossings are sorted ascending and the first
// one whose point actually lies within the box wins; entering through one
// slab can still miss the box on another axis.
func (l LineSegment) IntersectAABB(b AABB) (float32, rl.Vector3, bool) {
	hits := make([]planeHit, 0, 6)

	testSidePlane(l.Start.X, l.End.X, b.Min.X, rl.Vector3{X: -1}, &hits)
	testSidePlane(l.Start.X, l.End.X, b.Max.X, rl.Vector3{X: 1}, &hits)
	testSidePlane(l.Start.Y, l.End.Y, b.Min.Y, rl.Vector3{Y: -1}, &hits)
	testSidePlane(l.Start.Y, l.End.Y, b.Max.Y, rl.Vector3{Y: 1}, &hits)
	testSidePlane(l.Start.Z, l.End.Z, b.Min.Z, rl.Vector3{Z: -1}, &hits)
	testSidePlane(l.Start.Z, l.End.Z, b.Max.Z, rl.Vector3{Z: 1}, &hits)

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	for _, hit := range hits {
		if b.Contains(l.PointAt(hit.t)) {
			return hit.t, hit.normal, true
		}
	}
	return 0, rl.Vector3{}, false
}
