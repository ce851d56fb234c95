// Package physics owns the non-owning registry of bounding-volume components
// and answers the spatial queries built on it: segment casts and broad-phase
// pair pruning. Queries never mutate the registry, so components may issue
// them from inside their own Update.
package physics

import (
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"simcore/internal/collision"
	"simcore/internal/engine"
)

// CollisionInfo describes the closest box a segment cast struck.
type CollisionInfo struct {
	Point  rl.Vector3
	Normal rl.Vector3
	Box    *BoxComponent
	Actor  *engine.Actor
}

type World struct {
	log   *zap.Logger
	boxes []*BoxComponent
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{log: log}
}

// AddBox registers a box component. Registering the same component twice is
// a programming error.
func (w *World) AddBox(b *BoxComponent) {
	for _, existing := range w.boxes {
		if existing.ID() == b.ID() {
			panic(fmt.Sprintf("physics: box component %d registered twice", b.ID()))
		}
	}
	w.boxes = append(w.boxes, b)
}

func (w *World) RemoveBox(b *BoxComponent) {
	for i, existing := range w.boxes {
		if existing.ID() == b.ID() {
			w.boxes = append(w.boxes[:i], w.boxes[i+1:]...)
			return
		}
	}
}

func (w *World) Boxes() []*BoxComponent {
	return w.boxes
}

// Flush drops every box whose component is Dead. Called once per tick by the
// driver, after the entity manager's own flush.
func (w *World) Flush() {
	alive := w.boxes[:0]
	removed := 0
	for _, b := range w.boxes {
		if b.State() == engine.StateActive {
			alive = append(alive, b)
			continue
		}
		removed++
	}
	for i := len(alive); i < len(w.boxes); i++ {
		w.boxes[i] = nil
	}
	w.boxes = alive

	if removed > 0 {
		w.log.Debug("flushed dead boxes",
			zap.Int("removed", removed),
			zap.Int("registered", len(w.boxes)))
	}
}

// SegmentCast returns the collision closest to the segment start across all
// registered boxes. On an exact tie the box scanned first wins; downstream
// hit reactions depend on that, so the tie-break must stay scan-order.
func (w *World) SegmentCast(l collision.LineSegment) (CollisionInfo, bool) {
	closestT := float32(math.Inf(1))
	var info CollisionInfo
	found := false

	for _, b := range w.boxes {
		t, normal, ok := l.IntersectAABB(b.WorldBox())
		if ok && t < closestT {
			closestT = t
			info = CollisionInfo{
				Point:  l.PointAt(t),
				Normal: normal,
				Box:    b,
				Actor:  b.Owner(),
			}
			found = true
		}
	}
	return info, found
}

// SweepAndPrune reports every overlapping pair of boxes to f. A copy of the
// registry is sorted by min x, leaving registration order (and with it the
// segment-cast tie-break) untouched; the inner scan stops as soon as a
// candidate's min x passes the current box's max x, which is what keeps this
// under the naive O(n^2) full scan. Survivors still get the exact 3-axis
// overlap test.
func (w *World) SweepAndPrune(f func(a, b *engine.Actor)) {
	sorted := make([]*BoxComponent, len(w.boxes))
	copy(sorted, w.boxes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].worldBox.Min.X < sorted[j].worldBox.Min.X
	})

	for i, box := range sorted {
		maxX := box.worldBox.Max.X
		for _, other := range sorted[i+1:] {
			if other.worldBox.Min.X > maxX {
				break
			}
			if box.worldBox.Intersects(other.worldBox) {
				f(box.Owner(), other.Owner())
			}
		}
	}
}

// TestPairwise is the naive quadratic variant, kept for small counts and as
// the parity reference for SweepAndPrune.
func (w *World) TestPairwise(f func(a, b *engine.Actor)) {
	for i, box := range w.boxes {
		for _, other := range w.boxes[i+1:] {
			if box.worldBox.Intersects(other.worldBox) {
				f(box.Owner(), other.Owner())
			}
		}
	}
}
