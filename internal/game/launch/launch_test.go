package launch

import (
	"errors"
	"math"
	"testing"

	"intercept-simulator/internal/game/intercept"
	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/pkg/types"

	"pgregory.net/rapid"
)

func TestCalculateInterceptionLaunch(t *testing.T) {
	p, err := CalculateInterceptionLaunch(types.NewPoint(10, 20), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Angle <= 0 || p.Speed <= 0 {
		t.Fatalf("got %+v, want positive angle and speed", p)
	}

	wantAngle := math.Atan2(20, 10) * 180 / math.Pi
	if math.Abs(p.Angle-wantAngle) > 1e-9 {
		t.Errorf("Angle = %f, want %f", p.Angle, wantAngle)
	}
	wantSpeed := math.Hypot(10, 20) / math.Sqrt(2*15/kinematics.Gravity)
	if math.Abs(p.Speed-wantSpeed) > 1e-9 {
		t.Errorf("Speed = %f, want %f", p.Speed, wantSpeed)
	}
}

func TestCalculateInterceptionLaunch_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		origin types.Point
		height float64
		want   error
	}{
		{"release behind cannon", types.NewPoint(-1, 20), 5, ErrNonPositiveOriginX},
		{"release above cannon", types.NewPoint(0, 20), 5, ErrNonPositiveOriginX},
		{"negative height", types.NewPoint(10, 20), -1, ErrNegativeInterceptHeight},
		{"height at release", types.NewPoint(10, 20), 20, ErrInterceptNotBelowOrigin},
		{"height above release", types.NewPoint(10, 20), 25, ErrInterceptNotBelowOrigin},
		{"nan height", types.NewPoint(10, 20), math.NaN(), ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateInterceptionLaunch(tt.origin, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	// Each failure carries its own message.
	seen := map[string]bool{}
	for _, err := range []error{ErrNonPositiveOriginX, ErrNegativeInterceptHeight, ErrInterceptNotBelowOrigin} {
		if seen[err.Error()] {
			t.Errorf("duplicate error message %q", err.Error())
		}
		seen[err.Error()] = true
	}
}

func TestLaunchSolutionIntercepts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin := types.NewPoint(
			rapid.Float64Range(1, 100).Draw(t, "x0"),
			rapid.Float64Range(1, 100).Draw(t, "y0"),
		)
		height := rapid.Float64Range(0, origin.Y*0.99).Draw(t, "height")

		p, err := CalculateInterceptionLaunch(origin, height)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := intercept.DetectInterception(
			trajectory.TrajectoryData{InitialSpeed: p.Speed, Angle: p.Angle, MaxTime: 60},
			trajectory.FreeFallData{InitialPosition: origin},
			0.01,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Intercepted {
			t.Fatalf("solution %+v misses: %+v", p, res)
		}

		wantT := kinematics.FallTime(origin.Y - height)
		if math.Abs(res.TimeParabolic-wantT) > 1e-6*math.Max(1, wantT) {
			t.Fatalf("hit at t=%f, want %f", res.TimeParabolic, wantT)
		}
		if math.Abs(res.Point.Y-height) > 1e-6*math.Max(1, origin.Y) {
			t.Fatalf("hit at height %f, want %f", res.Point.Y, height)
		}
	})
}
