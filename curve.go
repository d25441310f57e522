package bezier

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Validity is the freshness of a segment's samples.
//
// Segments start out Uninitialized, become Valid when sampled, and become
// Invalidated when an edit changes one of their control points. A segment
// never returns to Uninitialized.
type Validity uint8

const (
	Uninitialized Validity = iota
	Invalidated
	Valid
)

func (v Validity) String() string {
	switch v {
	case Uninitialized:
		return "Uninitialized"
	case Invalidated:
		return "Invalidated"
	case Valid:
		return "Valid"
	default:
		return fmt.Sprintf("Validity(%d)", v)
	}
}

type segment struct {
	validity Validity
	// present reports whether the segment's samples currently occupy
	// detail slots of the point buffer.
	present bool
}

// Curve is a piecewise cubic Bézier curve controlled by a sequence of
// [Handle] values. Segment i runs from handle i to handle i+1.
//
// Each visible segment is sampled at a fixed number of points, its detail.
// Samples are cached: [Curve.Calculate] only recomputes segments whose
// control points changed since the previous call. Segments hidden by a
// detached handle contribute no points at all.
//
// All edits go through the curve's methods, which keep track of the segments
// they affect. Edits that address handles or segments that don't exist return
// an error wrapping [ErrIndexOutOfRange] and leave the curve unchanged.
//
// A Curve is not safe for concurrent use.
type Curve[F constraints.Float] struct {
	handles []Handle[F]
	// segs has one entry per segment, len(handles)-1 of them.
	segs   []segment
	detail int

	// numIgnored counts the empty segments seen so far by the current
	// Calculate.
	numIgnored int
	points     []Point[F]
}

// New returns an empty curve that samples each visible segment at detail
// points. expectedHandles is a capacity hint and may be zero.
func New[F constraints.Float](detail, expectedHandles int) *Curve[F] {
	if detail < 0 {
		panic(fmt.Sprintf("bezier: negative detail %d", detail))
	}
	expectedHandles = max(expectedHandles, 0)
	return &Curve[F]{
		handles: make([]Handle[F], 0, expectedHandles),
		segs:    make([]segment, 0, max(expectedHandles-1, 0)),
		detail:  detail,
		points:  make([]Point[F], 0, max(expectedHandles-1, 0)*detail),
	}
}

// Detail returns the number of points sampled per visible segment.
func (c *Curve[F]) Detail() int { return c.detail }

// Len returns the number of handles.
func (c *Curve[F]) Len() int { return len(c.handles) }

// NumSegments returns the number of segments, visible or not.
func (c *Curve[F]) NumSegments() int { return len(c.segs) }

// VisibleSegments returns the number of segments that aren't hidden by a
// detached handle. After [Curve.Calculate], the curve holds Detail() times
// this many points.
func (c *Curve[F]) VisibleSegments() int {
	n := 0
	for i := range c.segs {
		if !c.segmentIsEmpty(i) {
			n++
		}
	}
	return n
}

func (c *Curve[F]) checkHandle(i int) error {
	if i < 0 || i >= len(c.handles) {
		return fmt.Errorf("%w: handle %d of %d", ErrIndexOutOfRange, i, len(c.handles))
	}
	return nil
}

func (c *Curve[F]) checkSegment(i int) error {
	if i < 0 || i >= len(c.segs) {
		return fmt.Errorf("%w: segment %d of %d", ErrIndexOutOfRange, i, len(c.segs))
	}
	return nil
}

func (c *Curve[F]) checkRange(lo, hi int) error {
	if lo < 0 || hi < lo || hi > len(c.handles) {
		return fmt.Errorf("%w: range [%d, %d) of %d handles", ErrIndexOutOfRange, lo, hi, len(c.handles))
	}
	return nil
}

// Push appends a handle to the end of the curve.
func (c *Curve[F]) Push(h Handle[F]) {
	n := len(c.handles)
	c.splice(n, n, []Handle[F]{h})
}

// Insert inserts a handle at index i, shifting later handles up. i may be
// equal to Len, which is the same as calling Push.
func (c *Curve[F]) Insert(i int, h Handle[F]) error {
	if i < 0 || i > len(c.handles) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(c.handles))
	}
	c.splice(i, i, []Handle[F]{h})
	return nil
}

// Splice replaces the handles in [lo, hi) with hs.
func (c *Curve[F]) Splice(lo, hi int, hs ...Handle[F]) error {
	if err := c.checkRange(lo, hi); err != nil {
		return err
	}
	c.splice(lo, hi, hs)
	return nil
}

// Remove removes the handle at index i.
func (c *Curve[F]) Remove(i int) error {
	if len(c.handles) == 0 {
		return fmt.Errorf("%w: remove at %d", ErrEmptyCollection, i)
	}
	if err := c.checkHandle(i); err != nil {
		return err
	}
	c.splice(i, i+1, nil)
	return nil
}

// Drain removes the handles in [lo, hi).
func (c *Curve[F]) Drain(lo, hi int) error {
	if len(c.handles) == 0 && hi > lo {
		return fmt.Errorf("%w: drain [%d, %d)", ErrEmptyCollection, lo, hi)
	}
	if err := c.checkRange(lo, hi); err != nil {
		return err
	}
	c.splice(lo, hi, nil)
	return nil
}

// splice replaces handles[lo:hi] with hs and updates the segment table and
// the point buffer to match. The arguments must already be validated.
func (c *Curve[F]) splice(lo, hi int, hs []Handle[F]) {
	oldSegs := len(c.segs)
	newSegs := max(len(c.handles)-(hi-lo)+len(hs)-1, 0)

	// Old segments starting at a removed handle go away. So does the segment
	// starting at lo-1 if its right handle no longer exists.
	first := min(lo, oldSegs)
	end := max(min(hi, oldSegs), first)
	keepLeft := false
	if lo > 0 && lo-1 < oldSegs {
		if lo-1 < newSegs {
			keepLeft = true
		} else {
			first = lo - 1
		}
	}

	// New segments are those starting at an inserted handle, plus the one
	// starting at lo-1 if it didn't exist before.
	newFirst := lo
	if lo > 0 && lo-1 >= oldSegs && lo-1 < newSegs {
		newFirst = lo - 1
	}
	added := max(min(lo+len(hs), newSegs)-newFirst, 0)

	off, n := 0, 0
	for _, seg := range c.segs[:first] {
		if seg.present {
			off++
		}
	}
	for _, seg := range c.segs[first:end] {
		if seg.present {
			n++
		}
	}
	c.points = slices.Delete(c.points, off*c.detail, (off+n)*c.detail)
	c.segs = slices.Replace(c.segs, first, end, make([]segment, added)...)
	c.handles = slices.Replace(c.handles, lo, hi, hs...)

	if len(c.segs) != newSegs {
		panic(fmt.Sprintf("bezier: have %d segments for %d handles", len(c.segs), len(c.handles)))
	}
	if keepLeft {
		// its right control points changed
		c.invalidate(lo - 1)
	}
}

func (c *Curve[F]) invalidate(seg int) {
	if seg < 0 || seg >= len(c.segs) {
		return
	}
	if c.segs[seg].validity == Valid {
		c.segs[seg].validity = Invalidated
	}
}

// Handle returns a copy of the handle at index i.
func (c *Curve[F]) Handle(i int) (Handle[F], error) {
	if err := c.checkHandle(i); err != nil {
		return Handle[F]{}, err
	}
	return c.handles[i], nil
}

// HandleMut returns a pointer to the handle at index i, for modification in
// place. Both segments adjacent to the handle are invalidated, as the caller
// may change any field.
//
// The pointer is only valid until the next call to any other method of c.
// Prefer [Curve.Update], which only invalidates what actually changed.
func (c *Curve[F]) HandleMut(i int) (*Handle[F], error) {
	if err := c.checkHandle(i); err != nil {
		return nil, err
	}
	c.invalidate(i - 1)
	c.invalidate(i)
	return &c.handles[i], nil
}

// Handles returns an iterator over the handles and their indices.
func (c *Curve[F]) Handles() iter.Seq2[int, Handle[F]] {
	return func(yield func(int, Handle[F]) bool) {
		for i, h := range c.handles {
			if !yield(i, h) {
				return
			}
		}
	}
}

// Update calls fn with a copy of the handle at index i and stores the result.
// Only the segments whose control points changed are invalidated.
func (c *Curve[F]) Update(i int, fn func(h *Handle[F])) error {
	if err := c.checkHandle(i); err != nil {
		return err
	}
	c.update(i, fn)
	return nil
}

func (c *Curve[F]) update(i int, fn func(h *Handle[F])) {
	old := c.handles[i]
	h := old
	fn(&h)
	c.handles[i] = h
	if h.Before != old.Before || h.Position != old.Position {
		c.invalidate(i - 1)
	}
	if h.Position != old.Position || h.After != old.After {
		c.invalidate(i)
	}
	// Continuity changes are picked up by Calculate, which moves samples in
	// and out of the buffer as segments become visible or hidden.
}

// SetHandle replaces the handle at index i.
func (c *Curve[F]) SetHandle(i int, h Handle[F]) error {
	return c.Update(i, func(old *Handle[F]) { *old = h })
}

// SetPosition moves the anchor of handle i, leaving its tangent points where
// they are.
func (c *Curve[F]) SetPosition(i int, p Point[F]) error {
	return c.Update(i, func(h *Handle[F]) { h.Position = p })
}

// Move translates handle i, together with its tangent points, by v.
func (c *Curve[F]) Move(i int, v Vec2[F]) error {
	return c.Update(i, func(h *Handle[F]) { *h = h.Translate(v) })
}

// SetBefore sets the Before point of handle i. After is adjusted according to
// the handle's continuity, see [Handle.WithBefore].
func (c *Curve[F]) SetBefore(i int, p Point[F]) error {
	return c.Update(i, func(h *Handle[F]) { *h = h.WithBefore(p) })
}

// SetAfter sets the After point of handle i. Before is adjusted according to
// the handle's continuity, see [Handle.WithAfter].
func (c *Curve[F]) SetAfter(i int, p Point[F]) error {
	return c.Update(i, func(h *Handle[F]) { *h = h.WithAfter(p) })
}

// SetContinuity changes the continuity of handle i without moving any of its
// points.
func (c *Curve[F]) SetContinuity(i int, cont Continuity) error {
	return c.Update(i, func(h *Handle[F]) { h.Continuity = cont })
}

// Transform applies aff to every handle.
func (c *Curve[F]) Transform(aff Affine[F]) {
	for i := range c.handles {
		c.update(i, func(h *Handle[F]) { *h = h.Transform(aff) })
	}
}

// Bounds returns the bounding box of all handles, including their tangent
// points. It encloses every segment. It returns false if the curve has no
// handles.
func (c *Curve[F]) Bounds() (Rect[F], bool) {
	if len(c.handles) == 0 {
		return Rect[F]{}, false
	}
	h := c.handles[0]
	r := NewRectFromPoints(h.Before, h.After).UnionPoint(h.Position)
	for _, h := range c.handles[1:] {
		r = r.UnionPoint(h.Before).UnionPoint(h.Position).UnionPoint(h.After)
	}
	return r, true
}

// Validity returns the cache state of segment i.
func (c *Curve[F]) Validity(i int) (Validity, error) {
	if err := c.checkSegment(i); err != nil {
		return 0, err
	}
	return c.segs[i].validity, nil
}

// Segment returns the cubic Bézier of segment i.
func (c *Curve[F]) Segment(i int) (CubicBez[F], error) {
	if err := c.checkSegment(i); err != nil {
		return CubicBez[F]{}, err
	}
	return c.segment(i), nil
}

func (c *Curve[F]) segment(i int) CubicBez[F] {
	return CubicBez[F]{
		P0: c.handles[i].Position,
		P1: c.handles[i].After,
		P2: c.handles[i+1].Before,
		P3: c.handles[i+1].Position,
	}
}

// IsEmptySegment reports whether segment i is hidden by a detached handle.
func (c *Curve[F]) IsEmptySegment(i int) (bool, error) {
	if err := c.checkSegment(i); err != nil {
		return false, err
	}
	return c.segmentIsEmpty(i), nil
}

func (c *Curve[F]) segmentIsEmpty(i int) bool {
	return c.handles[i].Continuity.hidesForward() || c.handles[i+1].Continuity.hidesBackward()
}

// ControlPoints returns the four control points of every segment, in order,
// including hidden segments. It is intended for debugging and for drawing the
// control polygon.
func (c *Curve[F]) ControlPoints() []Point[F] {
	out := make([]Point[F], 0, 4*len(c.segs))
	for i := range c.segs {
		s := c.segment(i)
		out = append(out, s.P0, s.P1, s.P2, s.P3)
	}
	return out
}

// Calculate samples all visible segments and returns the points, detail per
// visible segment, in segment order. Segments that haven't changed since the
// last call are not recomputed.
//
// The returned slice is owned by the curve. It must not be modified and is
// only valid until the next edit.
func (c *Curve[F]) Calculate() []Point[F] {
	c.numIgnored = 0
	recomputed := 0
	for i := range c.segs {
		if c.calculateSegment(i) {
			recomputed++
		}
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("calculated curve",
			"segments", len(c.segs),
			"ignored", c.numIgnored,
			"recomputed", recomputed,
			"points", len(c.points))
	}
	return c.points[:len(c.points):len(c.points)]
}

// calculateSegment brings segment i's samples up to date and reports whether
// it had to sample it.
func (c *Curve[F]) calculateSegment(i int) bool {
	seg := &c.segs[i]
	start := c.detail * (i - c.numIgnored)
	if c.segmentIsEmpty(i) {
		c.numIgnored++
		if seg.present {
			// Hidden since the last call.
			c.points = slices.Delete(c.points, start, start+c.detail)
			seg.present = false
			c.invalidate(i)
		}
		return false
	}
	if seg.present && seg.validity == Valid {
		return false
	}
	if !seg.present {
		c.points = slices.Insert(c.points, start, make([]Point[F], c.detail)...)
		seg.present = true
	}
	c.segment(i).Coefficients().Sample(c.points[start : start+c.detail])
	seg.validity = Valid
	return true
}

// KnotInsert inserts a handle without changing the shape of the curve.
//
// The integer part of time selects the segment, the fractional part is the
// parameter at which it is split. For example, 1.5 splits segment 1 in the
// middle. The handles on both sides of the segment have their tangents
// shortened to match, and otherwise keep their continuity. The exception is
// a mirrored handle: after the split its tangents no longer have equal
// length, so it becomes aligned instead of silently violating the mirror
// constraint. The new handle is broken, or detached on both sides if the
// segment was hidden.
func (c *Curve[F]) KnotInsert(time F) error {
	ft := float64(time)
	if math.IsNaN(ft) || math.IsInf(ft, 0) || ft < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTime, time)
	}
	idx := math.Floor(ft)
	if idx >= float64(len(c.segs)) {
		return fmt.Errorf("%w: knot time %v on %d segments", ErrIndexOutOfRange, time, len(c.segs))
	}
	i := int(idx)
	t := time - F(idx)

	empty := c.segmentIsEmpty(i)
	left, right := c.segment(i).SplitAt(t)
	c.update(i, func(h *Handle[F]) {
		if h.After != left.P1 {
			h.After = left.P1
			relaxMirrored(h)
		}
	})
	c.update(i+1, func(h *Handle[F]) {
		if h.Before != right.P2 {
			h.Before = right.P2
			relaxMirrored(h)
		}
	})
	knot := NewHandle(left.P2, left.P3, right.P1)
	if empty {
		knot.Continuity = Detached(Both)
	}
	c.splice(i+1, i+1, []Handle[F]{knot})

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("inserted knot", "segment", i, "t", float64(t), "position", knot.Position.String())
	}
	return nil
}

func relaxMirrored[F constraints.Float](h *Handle[F]) {
	if h.Continuity.Kind == MirroredKind {
		h.Continuity = Aligned()
	}
}
