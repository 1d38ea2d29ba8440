// Package orientation composes three sequential rotation angles into a single
// rotation. Fit checks and any renderer that displays the object must both use
// Compose so the collision box and the drawn mesh agree.
package orientation

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation holds intrinsic rotation angles in degrees: X is applied first about
// the object's local X axis, then Y about the reoriented Y axis, then Z about
// the twice reoriented Z axis.
type Rotation struct {
	X float64
	Y float64
	Z float64
}

// NewRotation creates a new rotation triple in degrees
func NewRotation(x, y, z float64) Rotation {
	return Rotation{X: x, Y: y, Z: z}
}

// IsZero reports whether all three angles are zero
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}

// Normalize wraps every angle into [0,360)
func (r Rotation) Normalize() Rotation {
	return Rotation{
		X: NormalizeAngle(r.X),
		Y: NormalizeAngle(r.Y),
		Z: NormalizeAngle(r.Z),
	}
}

// Quat returns the composed rotation as a unit quaternion
func (r Rotation) Quat() mgl64.Quat {
	return Compose(r)
}

// Matrix returns the composed rotation as a 4x4 transform for renderers
func (r Rotation) Matrix() mgl64.Mat4 {
	return Compose(r).Mat4()
}

// String formats the rotation as "(x°, y°, z°)"
func (r Rotation) String() string {
	return fmt.Sprintf("(%g°, %g°, %g°)", r.X, r.Y, r.Z)
}

// NormalizeAngle wraps an angle in degrees into [0,360). NaN and ±Inf have no
// meaningful wrap and become 0.
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 wraps to 360 after the addition above
	if a >= 360 {
		a = 0
	}
	return a
}
