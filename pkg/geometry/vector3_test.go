package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)

	assert.Equal(t, NewVector3(4, 5, 6), v1.Sub(v2))
}

func TestVector3MinMax(t *testing.T) {
	v1 := NewVector3(1, 5, -3)
	v2 := NewVector3(2, -1, 0)

	assert.Equal(t, NewVector3(1, -1, -3), v1.Min(v2))
	assert.Equal(t, NewVector3(2, 5, 0), v1.Max(v2))
}

func TestVector3Rotate(t *testing.T) {
	// 90° about Z takes +X onto +Y
	q := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	result := NewVector3(1, 0, 0).Rotate(q)

	assert.InDelta(t, 0.0, result.X, 1e-12)
	assert.InDelta(t, 1.0, result.Y, 1e-12)
	assert.InDelta(t, 0.0, result.Z, 1e-12)
}

func TestVector3Vec3RoundTrip(t *testing.T) {
	v := NewVector3(1.5, -2, 3)

	assert.Equal(t, v, FromVec3(v.Vec3()))
}
