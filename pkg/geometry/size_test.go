package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorners(t *testing.T) {
	corners := Corners(NewSize(2, 4, 6))

	bbox := NewBoundingBox()
	seen := make(map[Vector3]bool)
	for _, c := range corners {
		assert.Equal(t, 1.0, math.Abs(c.X))
		assert.Equal(t, 2.0, math.Abs(c.Y))
		assert.Equal(t, 3.0, math.Abs(c.Z))
		seen[c] = true
		bbox.Extend(c)
	}

	assert.Len(t, seen, 8, "every sign combination should appear once")
	assert.Equal(t, NewVector3(-1, -2, -3), bbox.Min)
	assert.Equal(t, NewVector3(1, 2, 3), bbox.Max)
	assert.Equal(t, NewSize(2, 4, 6), bbox.Size())
}

func TestRotatedExtentsIdentity(t *testing.T) {
	sizes := []Size{
		NewSize(80, 180, 120),
		NewSize(150, 80, 80),
		NewSize(0.5, 1000, 3),
	}

	for _, s := range sizes {
		assert.Equal(t, s, RotatedExtents(s, mgl64.QuatIdent()), "identity must not change %v", s)
	}
}

func TestRotatedExtentsQuarterTurns(t *testing.T) {
	s := NewSize(150, 80, 60)

	tests := []struct {
		name     string
		axis     mgl64.Vec3
		expected Size
	}{
		{"about X", mgl64.Vec3{1, 0, 0}, NewSize(150, 60, 80)},
		{"about Y", mgl64.Vec3{0, 1, 0}, NewSize(60, 80, 150)},
		{"about Z", mgl64.Vec3{0, 0, 1}, NewSize(80, 150, 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotatedExtents(s, mgl64.QuatRotate(math.Pi/2, tt.axis))
			assert.InDelta(t, tt.expected.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.expected.Height, got.Height, 1e-9)
			assert.InDelta(t, tt.expected.Length, got.Length, 1e-9)
		})
	}
}

func TestRotatedExtentsHalfTurnSymmetry(t *testing.T) {
	s := NewSize(80, 180, 120)

	for _, axis := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		got := RotatedExtents(s, mgl64.QuatRotate(math.Pi, axis))
		assert.InDelta(t, s.Width, got.Width, 1e-9)
		assert.InDelta(t, s.Height, got.Height, 1e-9)
		assert.InDelta(t, s.Length, got.Length, 1e-9)
	}
}

func TestRotatedExtentsBounds(t *testing.T) {
	s := NewSize(80, 180, 120)
	diagonal := s.Diagonal()
	smallest := math.Min(s.Width, math.Min(s.Height, s.Length))

	axis := mgl64.Vec3{1, 2, 3}.Normalize()
	for deg := 0; deg < 360; deg += 15 {
		got := RotatedExtents(s, mgl64.QuatRotate(mgl64.DegToRad(float64(deg)), axis))
		for _, extent := range []float64{got.Width, got.Height, got.Length} {
			require.GreaterOrEqual(t, extent, 0.0)
			assert.LessOrEqual(t, extent, diagonal+1e-9, "rotation %d°", deg)
			assert.GreaterOrEqual(t, extent, smallest-1e-9, "rotation %d°", deg)
		}
	}
}

func TestRotatedExtents45DegreesAboutZ(t *testing.T) {
	got := RotatedExtents(NewSize(100, 100, 50), mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}))

	assert.InDelta(t, 100*math.Sqrt2, got.Width, 1e-9)
	assert.InDelta(t, 100*math.Sqrt2, got.Height, 1e-9)
	assert.InDelta(t, 50.0, got.Length, 1e-9)
}

func TestSizeDiagonal(t *testing.T) {
	s := NewSize(2, 3, 6)

	assert.InDelta(t, 7.0, s.Diagonal(), 1e-12)
	assert.Equal(t, "2.0 x 3.0 x 6.0", s.String())
}
