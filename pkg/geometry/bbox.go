package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: NewVector3(inf, inf, inf),
		Max: NewVector3(-inf, -inf, -inf),
	}
}

// Extend grows the box to include the point
func (b *BoundingBox) Extend(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Size returns the per-axis extents as non-negative magnitudes
func (b BoundingBox) Size() Size {
	d := b.Max.Sub(b.Min)
	return Size{
		Width:  math.Abs(d.X),
		Height: math.Abs(d.Y),
		Length: math.Abs(d.Z),
	}
}
