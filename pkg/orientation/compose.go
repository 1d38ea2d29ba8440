package orientation

import "github.com/go-gl/mathgl/mgl64"

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// Compose builds one quaternion from r. Each non-zero angle rotates about the
// corresponding body axis as already reoriented by the previous steps, which
// is the same as qx*qy*qz. A zero angle is skipped instead of being applied as
// an identity rotation about a possibly denormalized axis.
func Compose(r Rotation) mgl64.Quat {
	q := mgl64.QuatIdent()

	steps := []struct {
		deg  float64
		axis mgl64.Vec3
	}{
		{r.X, unitX},
		{r.Y, unitY},
		{r.Z, unitZ},
	}

	for _, step := range steps {
		if step.deg == 0 {
			continue
		}
		local := q.Rotate(step.axis)
		q = mgl64.QuatRotate(mgl64.DegToRad(step.deg), local).Mul(q)
	}

	return q
}
