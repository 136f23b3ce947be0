package lsystem

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Segment is one drawn branch section, from the turtle position before a
// move to the position after it.
type Segment struct {
	From rl.Vector3
	To   rl.Vector3
}

// Result holds the geometry of one generation run: branch segments and leaf
// points in emission order, and the axis-aligned bounds of every emitted
// point. Treat it as read-only once returned.
type Result struct {
	Segments []Segment
	Leaves   []rl.Vector3
	Bounds   rl.BoundingBox

	bounded bool
}

func (r *Result) addSegment(from, to rl.Vector3) {
	r.Segments = append(r.Segments, Segment{From: from, To: to})
	r.include(from)
	r.include(to)
}

func (r *Result) addLeaf(p rl.Vector3) {
	r.Leaves = append(r.Leaves, p)
	r.include(p)
}

func (r *Result) include(p rl.Vector3) {
	if !r.bounded {
		r.Bounds = rl.NewBoundingBox(p, p)
		r.bounded = true
		return
	}
	r.Bounds.Min = rl.Vector3Min(r.Bounds.Min, p)
	r.Bounds.Max = rl.Vector3Max(r.Bounds.Max, p)
}
