// Package collision provides the geometric value types used by the physics
// world: axis-aligned boxes, spheres, capsules, planes and line segments.
// Everything here is a plain value with no identity or lifecycle.
package collision

const epsilon = 0.001

// nearZero reports whether v is close enough to zero to be treated as zero.
func nearZero(v float32) bool {
	if v < 0 {
		v = -v
	}
	return v <= epsilon
}
