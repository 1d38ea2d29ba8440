package orientation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
		{359.5, 359.5},
		{-1e-15, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		assert.InDelta(t, tt.expected, got, 1e-9, "NormalizeAngle(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestRotationNormalize(t *testing.T) {
	r := NewRotation(-90, 450, 180).Normalize()

	assert.Equal(t, NewRotation(270, 90, 180), r)
}

func TestRotationIsZero(t *testing.T) {
	assert.True(t, Rotation{}.IsZero())
	assert.False(t, NewRotation(0, 0, 90).IsZero())
}

func TestRotationString(t *testing.T) {
	assert.Equal(t, "(90°, 0°, 12.5°)", NewRotation(90, 0, 12.5).String())
}
