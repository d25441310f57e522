package bezier

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Direction selects the side(s) of a detached handle that are not drawn.
type Direction uint8

const (
	// Forward detaches the segment starting at the handle.
	Forward Direction = iota + 1
	// Backward detaches the segment ending at the handle.
	Backward
	// Both detaches both adjacent segments.
	Both
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// ContinuityKind is the kind of constraint a handle places on its tangents.
type ContinuityKind uint8

const (
	// Broken handles don't constrain their tangents. The curve is only
	// positionally continuous at the handle.
	BrokenKind ContinuityKind = iota
	// Detached handles hide the segment(s) on the side given by the
	// continuity's Direction.
	DetachedKind
	// Aligned handles keep both tangents on one line through the position,
	// with independent lengths.
	AlignedKind
	// Mirrored handles keep both tangents on one line and of equal length,
	// that is After = 2·Position − Before.
	MirroredKind
)

// Continuity is the smoothness contract at a handle's position.
//
// The zero value is a broken continuity.
type Continuity struct {
	Kind ContinuityKind
	// Direction is only meaningful for DetachedKind.
	Direction Direction
}

// Detached returns a continuity that hides the segment(s) on side dir.
func Detached(dir Direction) Continuity { return Continuity{Kind: DetachedKind, Direction: dir} }

// Broken returns a continuity without tangent constraints.
func Broken() Continuity { return Continuity{Kind: BrokenKind} }

// Aligned returns a continuity keeping both tangents on one line.
func Aligned() Continuity { return Continuity{Kind: AlignedKind} }

// Mirrored returns a continuity keeping both tangents on one line and of
// equal length.
func Mirrored() Continuity { return Continuity{Kind: MirroredKind} }

func (c Continuity) String() string {
	switch c.Kind {
	case BrokenKind:
		return "Broken"
	case DetachedKind:
		return fmt.Sprintf("Detached(%s)", c.Direction)
	case AlignedKind:
		return "Aligned"
	case MirroredKind:
		return "Mirrored"
	default:
		return fmt.Sprintf("Continuity(%d)", c.Kind)
	}
}

// hidesForward reports whether the segment starting at the handle is hidden.
func (c Continuity) hidesForward() bool {
	return c.Kind == DetachedKind && (c.Direction == Forward || c.Direction == Both)
}

// hidesBackward reports whether the segment ending at the handle is hidden.
func (c Continuity) hidesBackward() bool {
	return c.Kind == DetachedKind && (c.Direction == Backward || c.Direction == Both)
}

// Handle is a control point of a [Curve]: an on-curve anchor with its
// incoming and outgoing Bézier control points.
type Handle[F constraints.Float] struct {
	// Before is the control point of the segment ending at this handle.
	Before Point[F]
	// Position is the point the curve passes through.
	Position Point[F]
	// After is the control point of the segment starting at this handle.
	After Point[F]

	Continuity Continuity
}

// NewDetached returns a handle that isn't attached to the rest of the curve on
// the side(s) given by dir. After is the reflection of before through
// position.
func NewDetached[F constraints.Float](before, position Point[F], dir Direction) Handle[F] {
	return Handle[F]{
		Before:     before,
		Position:   position,
		After:      before.Reflect(position),
		Continuity: Detached(dir),
	}
}

// NewHandle returns a broken handle. The curve is positionally continuous at
// position, with no constraint on the tangents.
func NewHandle[F constraints.Float](before, position, after Point[F]) Handle[F] {
	return Handle[F]{
		Before:     before,
		Position:   position,
		After:      after,
		Continuity: Broken(),
	}
}

// NewAligned returns an aligned handle. After lies on the line through before
// and position, at afterScale times the distance of before.
func NewAligned[F constraints.Float](before, position Point[F], afterScale F) Handle[F] {
	return Handle[F]{
		Before:     before,
		Position:   position,
		After:      position.Translate(position.Sub(before).Mul(afterScale)),
		Continuity: Aligned(),
	}
}

// NewMirrored returns a mirrored handle, with After the reflection of before
// through position.
func NewMirrored[F constraints.Float](before, position Point[F]) Handle[F] {
	return Handle[F]{
		Before:     before,
		Position:   position,
		After:      before.Reflect(position),
		Continuity: Mirrored(),
	}
}

func (h Handle[F]) String() string {
	return fmt.Sprintf("%s{%s, %s, %s}", h.Continuity, h.Before, h.Position, h.After)
}

// Translate returns the handle moved by v, keeping its tangents.
func (h Handle[F]) Translate(v Vec2[F]) Handle[F] {
	h.Before = h.Before.Translate(v)
	h.Position = h.Position.Translate(v)
	h.After = h.After.Translate(v)
	return h
}

func (h Handle[F]) Transform(aff Affine[F]) Handle[F] {
	h.Before = h.Before.Transform(aff)
	h.Position = h.Position.Transform(aff)
	h.After = h.After.Transform(aff)
	return h
}

// WithBefore returns the handle with a new Before point, adjusting After so
// that the handle's continuity still holds.
func (h Handle[F]) WithBefore(before Point[F]) Handle[F] {
	h.Before = before
	h.After = h.opposite(h.After, before)
	return h
}

// WithAfter returns the handle with a new After point, adjusting Before so
// that the handle's continuity still holds.
func (h Handle[F]) WithAfter(after Point[F]) Handle[F] {
	h.After = after
	h.Before = h.opposite(h.Before, after)
	return h
}

// opposite returns the tangent point across from moved, given that it
// currently is old.
func (h Handle[F]) opposite(old, moved Point[F]) Point[F] {
	switch h.Continuity.Kind {
	case MirroredKind:
		return moved.Reflect(h.Position)
	case AlignedKind:
		d := h.Position.Sub(moved)
		l := d.Hypot()
		if l == 0 {
			// no direction to align to
			return old
		}
		return h.Position.Translate(d.Mul(old.Sub(h.Position).Hypot() / l))
	default:
		return old
	}
}
