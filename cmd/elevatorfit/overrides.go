package main

import (
	"fmt"

	"github.com/philipparndt/elevatorfit/pkg/settings"
	"github.com/spf13/pflag"
)

// overrides are per-run values that take precedence over the settings file
type overrides struct {
	object   []float64
	door     []float64
	elevator []float64
	rotation []float64
}

func (o *overrides) register(flags *pflag.FlagSet, withRotation bool) {
	flags.Float64SliceVar(&o.object, "object", nil, "object size as width,height,length")
	flags.Float64SliceVar(&o.door, "door", nil, "door opening as width,height")
	flags.Float64SliceVar(&o.elevator, "elevator", nil, "elevator cab as width,height,length")
	if withRotation {
		flags.Float64SliceVar(&o.rotation, "rotation", nil, "rotation in degrees as x,y,z")
	}
}

func (o *overrides) apply(s settings.Settings) (settings.Settings, error) {
	if o.object != nil {
		if len(o.object) != 3 {
			return s, fmt.Errorf("--object needs 3 values, got %d", len(o.object))
		}
		s.Object = settings.Box{Width: o.object[0], Height: o.object[1], Length: o.object[2]}
	}
	if o.door != nil {
		if len(o.door) != 2 {
			return s, fmt.Errorf("--door needs 2 values, got %d", len(o.door))
		}
		s.Door = settings.Door{Width: o.door[0], Height: o.door[1]}
	}
	if o.elevator != nil {
		if len(o.elevator) != 3 {
			return s, fmt.Errorf("--elevator needs 3 values, got %d", len(o.elevator))
		}
		s.Elevator = settings.Box{Width: o.elevator[0], Height: o.elevator[1], Length: o.elevator[2]}
	}
	if o.rotation != nil {
		if len(o.rotation) != 3 {
			return s, fmt.Errorf("--rotation needs 3 values, got %d", len(o.rotation))
		}
		s.Rotation = settings.Vector{X: o.rotation[0], Y: o.rotation[1], Z: o.rotation[2]}
	}
	return s, nil
}

// loadSettings reads the settings file, applies flag overrides, logs any
// warnings and clamps the result so it is safe to evaluate
func (o *overrides) loadSettings() (settings.Settings, []settings.Warning, error) {
	s, err := newStore().Load()
	if err != nil {
		return settings.Settings{}, nil, err
	}

	s, err = o.apply(s)
	if err != nil {
		return settings.Settings{}, nil, err
	}

	warnings := s.Validate()
	for _, w := range warnings {
		logger.Debug("settings warning", "field", w.Field, "message", w.Message)
	}
	return s.Clamp(), warnings, nil
}
