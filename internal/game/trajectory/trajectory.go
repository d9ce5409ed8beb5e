// Package trajectory samples continuous motion into ordered point sequences
// at a fixed time step. Samplers are pure: every call returns a freshly
// allocated, fully materialized slice.
package trajectory

import (
	"errors"
	"fmt"
	"math"

	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/pkg/types"
)

const (
	// DefaultTimeStep is used when a TimeStep of zero is given.
	DefaultTimeStep = 0.1

	// MaxSamples bounds the length of any sampled sequence.
	MaxSamples = 1_000_000
)

var (
	ErrInvalidTimeStep = errors.New("time step must not be negative")
	ErrInvalidMaxTime  = errors.New("max time must not be negative")
	ErrNegativeSpeed   = errors.New("initial speed must not be negative")
	ErrNonFinite       = errors.New("value is not finite")
	ErrTooManySamples  = errors.New("time step too small for trajectory duration")
)

// TrajectoryData configures a parabolic launch. A zero TimeStep selects
// DefaultTimeStep; a zero MaxTime means the flight lasts until the
// projectile returns to launch height.
type TrajectoryData struct {
	InitialPosition types.Point `json:"initialPosition"`
	InitialSpeed    float64     `json:"initialSpeed"`
	Angle           float64     `json:"angle"`
	TimeStep        float64     `json:"timeStep,omitempty"`
	MaxTime         float64     `json:"maxTime,omitempty"`
}

// FreeFallData configures a body released with no vertical speed from
// InitialPosition, drifting at a constant horizontal speed.
type FreeFallData struct {
	InitialPosition        types.Point `json:"initialPosition"`
	InitialHorizontalSpeed float64     `json:"initialHorizontalSpeed,omitempty"`
	TimeStep               float64     `json:"timeStep,omitempty"`
}

func (d TrajectoryData) Step() float64 {
	return stepOrDefault(d.TimeStep)
}

// Duration is MaxTime when given, otherwise the closed-form flight time.
func (d TrajectoryData) Duration() float64 {
	if d.MaxTime > 0 {
		return d.MaxTime
	}
	return kinematics.FlightTime(d.InitialSpeed, d.Angle)
}

func (d TrajectoryData) Validate() error {
	if !d.InitialPosition.IsFinite() {
		return fmt.Errorf("initial position %v: %w", d.InitialPosition, ErrNonFinite)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"initial speed", d.InitialSpeed},
		{"angle", d.Angle},
		{"time step", d.TimeStep},
		{"max time", d.MaxTime},
	} {
		if !types.IsFinite(f.value) {
			return fmt.Errorf("%s %v: %w", f.name, f.value, ErrNonFinite)
		}
	}
	if d.InitialSpeed < 0 {
		return fmt.Errorf("initial speed %g: %w", d.InitialSpeed, ErrNegativeSpeed)
	}
	if d.TimeStep < 0 {
		return fmt.Errorf("time step %g: %w", d.TimeStep, ErrInvalidTimeStep)
	}
	if d.MaxTime < 0 {
		return fmt.Errorf("max time %g: %w", d.MaxTime, ErrInvalidMaxTime)
	}

	// Sampling stops at the ground crossing, which happens no later than
	// one step past the natural flight time.
	bound := math.Min(d.Duration(), kinematics.FlightTime(d.InitialSpeed, d.Angle)+d.Step())
	if bound/d.Step() >= MaxSamples {
		return fmt.Errorf("%.0f samples for %gs at %gs: %w", bound/d.Step(), bound, d.Step(), ErrTooManySamples)
	}
	return nil
}

func (d FreeFallData) Step() float64 {
	return stepOrDefault(d.TimeStep)
}

// FallTime is the time until the body reaches y = 0.
func (d FreeFallData) FallTime() float64 {
	return kinematics.FallTime(d.InitialPosition.Y)
}

func (d FreeFallData) Validate() error {
	if !d.InitialPosition.IsFinite() {
		return fmt.Errorf("initial position %v: %w", d.InitialPosition, ErrNonFinite)
	}
	if !types.IsFinite(d.InitialHorizontalSpeed) {
		return fmt.Errorf("horizontal speed %v: %w", d.InitialHorizontalSpeed, ErrNonFinite)
	}
	if !types.IsFinite(d.TimeStep) {
		return fmt.Errorf("time step %v: %w", d.TimeStep, ErrNonFinite)
	}
	if d.TimeStep < 0 {
		return fmt.Errorf("time step %g: %w", d.TimeStep, ErrInvalidTimeStep)
	}
	if n := d.FallTime() / d.Step(); n >= MaxSamples {
		return fmt.Errorf("%.0f samples for %gs at %gs: %w", n, d.FallTime(), d.Step(), ErrTooManySamples)
	}
	return nil
}

// CalculateTrajectory samples a parabolic flight starting at
// InitialPosition. The sequence never dips below launch height: the sample
// that would cross it is replaced by the interpolated crossing point and
// sampling stops there. Without MaxTime, the last point is snapped to the
// closed-form range so the endpoint carries no step quantization error.
func CalculateTrajectory(data TrajectoryData) ([]types.Point, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("parabolic trajectory: %w", err)
	}

	origin := data.InitialPosition
	dt := data.Step()
	duration := data.Duration()

	points := make([]types.Point, 0, int(duration/dt)+2)
	for i := 0; ; i++ {
		t := float64(i) * dt
		if t > duration {
			break
		}

		p := origin.Add(kinematics.Position(data.InitialSpeed, data.Angle, t))
		if p.Y < origin.Y {
			points = append(points, crossing(points[len(points)-1], p, origin.Y))
			return points, nil
		}
		points = append(points, p)
	}

	if data.MaxTime == 0 && len(points) > 1 {
		points[len(points)-1] = origin.Add(types.Point{X: kinematics.Range(data.InitialSpeed, data.Angle)})
	}
	return points, nil
}

// CalculateFreeFall samples a body dropping from InitialPosition to y = 0.
// A body that starts on or below the ground is reported as the single
// grounded point below its start. Sampling stops at the last step before
// FallTime and then appends the exact landing point, so the final point is
// reached at FallTime rather than at a multiple of the step.
func CalculateFreeFall(data FreeFallData) ([]types.Point, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("free fall: %w", err)
	}

	origin := data.InitialPosition
	if origin.Y <= 0 {
		return []types.Point{{X: origin.X, Y: 0}}, nil
	}

	dt := data.Step()
	vx := data.InitialHorizontalSpeed
	tMax := data.FallTime()

	points := make([]types.Point, 0, int(tMax/dt)+2)
	for i := 0; ; i++ {
		t := float64(i) * dt
		if t > tMax {
			break
		}

		p := types.Point{X: origin.X + vx*t, Y: origin.Y - kinematics.Drop(t)}
		if p.Y < 0 {
			points = append(points, crossing(points[len(points)-1], p, 0))
			return points, nil
		}
		points = append(points, p)
	}

	// tMax fell between two samples; finish on the ground.
	if points[len(points)-1].Y > 0 {
		points = append(points, types.Point{X: origin.X + vx*tMax, Y: 0})
	}
	return points, nil
}

// crossing interpolates the point where the segment prev→cur meets the
// horizontal line y = level. prev must be at or above level and cur below.
func crossing(prev, cur types.Point, level float64) types.Point {
	ratio := (prev.Y - level) / (prev.Y - cur.Y)
	return types.Point{
		X: prev.X + ratio*(cur.X-prev.X),
		Y: level,
	}
}

func stepOrDefault(dt float64) float64 {
	if dt == 0 {
		return DefaultTimeStep
	}
	return dt
}
