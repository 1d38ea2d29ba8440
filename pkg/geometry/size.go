package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Size is a width (X), height (Y), length (Z) triple. It describes both the
// dimensions of an unrotated cuboid and the axis-aligned extents of a rotated one.
type Size struct {
	Width  float64
	Height float64
	Length float64
}

// NewSize creates a new size triple
func NewSize(width, height, length float64) Size {
	return Size{Width: width, Height: height, Length: length}
}

// Diagonal returns the length of the space diagonal
func (s Size) Diagonal() float64 {
	return math.Sqrt(s.Width*s.Width + s.Height*s.Height + s.Length*s.Length)
}

// String formats the size as "W x H x L"
func (s Size) String() string {
	return fmt.Sprintf("%.1f x %.1f x %.1f", s.Width, s.Height, s.Length)
}

// Corners returns the 8 corners of a cuboid of the given size centered on the
// origin. X varies fastest, then Y, then Z.
func Corners(s Size) [8]Vector3 {
	hw, hh, hl := s.Width/2, s.Height/2, s.Length/2

	var corners [8]Vector3
	for i := range corners {
		x, y, z := -hw, -hh, -hl
		if i&1 != 0 {
			x = hw
		}
		if i&2 != 0 {
			y = hh
		}
		if i&4 != 0 {
			z = hl
		}
		corners[i] = NewVector3(x, y, z)
	}
	return corners
}

// RotatedExtents rotates every corner of the centered cuboid by q and returns
// the extents of the axis-aligned box that encloses them.
//
// Extents must stay consistent with a renderer applying the same quaternion to
// the same mesh, so they come from the projected corners rather than a closed
// form. Raw min/max values are not rounded; expect noise around 1e-9.
func RotatedExtents(s Size, q mgl64.Quat) Size {
	bbox := NewBoundingBox()
	for _, corner := range Corners(s) {
		bbox.Extend(corner.Rotate(q))
	}
	return bbox.Size()
}
