package fixed

import "golang.org/x/exp/constraints"

// Rect is a box described by four bounds. For hit bounds the values are
// extents measured outward from the entity anchor, so Left and Right are both
// positive distances.
type Rect[T constraints.Integer] struct {
	Left   T
	Top    T
	Right  T
	Bottom T
}

// NewRect builds a rect from its four bounds.
func NewRect[T constraints.Integer](left, top, right, bottom T) Rect[T] {
	return Rect[T]{Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewRectSize builds a rect from an origin and a size.
func NewRectSize[T constraints.Integer](x, y, width, height T) Rect[T] {
	return Rect[T]{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

func (r Rect[T]) Height() T {
	return r.Bottom - r.Top
}

// Extents returns the signed sub-pixel extents of a hit box (left, top, right,
// bottom) for use in int32 collision arithmetic.
func Extents(r Rect[uint32]) (left, top, right, bottom int32) {
	return int32(r.Left), int32(r.Top), int32(r.Right), int32(r.Bottom)
}

// PointInX reports whether px lies strictly inside the horizontal extent of a
// hit box anchored at x.
func PointInX(r Rect[uint32], x, px int32) bool {
	return px > x-int32(r.Left) && px < x+int32(r.Right)
}

// PointInY reports whether py lies strictly inside the vertical extent of a
// hit box anchored at y.
func PointInY(r Rect[uint32], y, py int32) bool {
	return py > y-int32(r.Top) && py < y+int32(r.Bottom)
}
