// Package settings holds the operator-editable values the fit checks run on,
// their defaults, and the clamping a host applies before calling into the core.
package settings

import (
	"fmt"
	"math"

	"github.com/philipparndt/elevatorfit/pkg/fit"
	"github.com/philipparndt/elevatorfit/pkg/geometry"
	"github.com/philipparndt/elevatorfit/pkg/orientation"
)

// Box is a width/height/length triple in centimeters
type Box struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
	Length float64 `toml:"length" yaml:"length" json:"length"`
}

// Door is the doorway opening in centimeters
type Door struct {
	Width  float64 `toml:"width" yaml:"width" json:"width"`
	Height float64 `toml:"height" yaml:"height" json:"height"`
}

// Vector is an x/y/z triple, used for the object position (cm) and rotation (degrees)
type Vector struct {
	X float64 `toml:"x" yaml:"x" json:"x"`
	Y float64 `toml:"y" yaml:"y" json:"y"`
	Z float64 `toml:"z" yaml:"z" json:"z"`
}

// Settings is everything an operator can edit
type Settings struct {
	Elevator Box    `toml:"elevator" yaml:"elevator" json:"elevator"`
	Door     Door   `toml:"door" yaml:"door" json:"door"`
	Object   Box    `toml:"object" yaml:"object" json:"object"`
	Position Vector `toml:"position" yaml:"position" json:"position"`
	Rotation Vector `toml:"rotation" yaml:"rotation" json:"rotation"`
}

// Defaults returns a standard passenger elevator and a wardrobe-sized object
func Defaults() Settings {
	return Settings{
		Elevator: Box{Width: 150, Height: 250, Length: 200},
		Door:     Door{Width: 90, Height: 200},
		Object:   Box{Width: 80, Height: 180, Length: 120},
	}
}

// ObjectSize returns the object dimensions
func (s Settings) ObjectSize() geometry.Size {
	return geometry.NewSize(s.Object.Width, s.Object.Height, s.Object.Length)
}

// ObjectRotation returns the object rotation
func (s Settings) ObjectRotation() orientation.Rotation {
	return orientation.NewRotation(s.Rotation.X, s.Rotation.Y, s.Rotation.Z)
}

// Opening returns the door opening
func (s Settings) Opening() fit.Opening {
	return fit.Opening{Width: s.Door.Width, Height: s.Door.Height}
}

// Enclosure returns the elevator cab
func (s Settings) Enclosure() fit.Enclosure {
	return fit.Enclosure{Width: s.Elevator.Width, Height: s.Elevator.Height, Length: s.Elevator.Length}
}

// WithRotation returns a copy with the rotation replaced
func (s Settings) WithRotation(r orientation.Rotation) Settings {
	s.Rotation = Vector{X: r.X, Y: r.Y, Z: r.Z}
	return s
}

// Check runs the fit checks on the current values
func (s Settings) Check() fit.Result {
	return fit.CheckFit(s.ObjectSize(), s.ObjectRotation(), s.Opening(), s.Enclosure())
}

// Center puts the object back in the middle of the cab with no rotation
func (s Settings) Center() Settings {
	s.Position = Vector{}
	s.Rotation = Vector{}
	return s
}

// Clamp makes the values safe to pass to the fit checks: non-positive or
// non-finite dimensions fall back to their defaults, rotations are wrapped
// into [0,360) with non-finite angles reset to 0, and the position is kept
// inside the cab.
func (s Settings) Clamp() Settings {
	d := Defaults()

	s.Elevator.Width = positiveOr(s.Elevator.Width, d.Elevator.Width)
	s.Elevator.Height = positiveOr(s.Elevator.Height, d.Elevator.Height)
	s.Elevator.Length = positiveOr(s.Elevator.Length, d.Elevator.Length)
	s.Door.Width = positiveOr(s.Door.Width, d.Door.Width)
	s.Door.Height = positiveOr(s.Door.Height, d.Door.Height)
	s.Object.Width = positiveOr(s.Object.Width, d.Object.Width)
	s.Object.Height = positiveOr(s.Object.Height, d.Object.Height)
	s.Object.Length = positiveOr(s.Object.Length, d.Object.Length)

	r := s.ObjectRotation().Normalize()
	s.Rotation = Vector{X: r.X, Y: r.Y, Z: r.Z}

	s.Position.X = clampHalf(s.Position.X, s.Elevator.Width)
	s.Position.Y = clampHalf(s.Position.Y, s.Elevator.Height)
	s.Position.Z = clampHalf(s.Position.Z, s.Elevator.Length)

	return s
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return fallback
}

func clampHalf(v, extent float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-extent/2, math.Min(extent/2, v))
}

// Warning is an advisory problem with the settings. It never blocks a check.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// Validate reports values the operator probably did not intend
func (s Settings) Validate() []Warning {
	var warnings []Warning

	dims := []struct {
		field string
		value float64
	}{
		{"elevator.width", s.Elevator.Width},
		{"elevator.height", s.Elevator.Height},
		{"elevator.length", s.Elevator.Length},
		{"door.width", s.Door.Width},
		{"door.height", s.Door.Height},
		{"object.width", s.Object.Width},
		{"object.height", s.Object.Height},
		{"object.length", s.Object.Length},
	}
	for _, d := range dims {
		if !(d.value > 0) {
			warnings = append(warnings, Warning{
				Field:   d.field,
				Message: fmt.Sprintf("is %.4g, must be positive", d.value),
			})
		}
	}

	if s.Door.Height > s.Elevator.Height {
		warnings = append(warnings, Warning{
			Field:   "door.height",
			Message: "door height cannot be larger than elevator height",
		})
	}
	if s.Door.Width > s.Elevator.Width {
		warnings = append(warnings, Warning{
			Field:   "door.width",
			Message: "door width cannot be larger than elevator width",
		})
	}

	return warnings
}
