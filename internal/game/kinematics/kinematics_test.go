package kinematics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func TestRange(t *testing.T) {
	v0 := 20.0
	want := v0 * v0 / Gravity
	if got := Range(v0, 45); math.Abs(got-want) > eps {
		t.Errorf("Range(20, 45) = %f, want %f", got, want)
	}

	for _, angle := range []float64{0, 90} {
		if got := Range(10, angle); math.Abs(got) > eps {
			t.Errorf("Range(10, %.0f) = %g, want 0", angle, got)
		}
	}

	if got := Range(10, 120); got >= 0 {
		t.Errorf("Range above 90 degrees should be negative, got %f", got)
	}
}

func TestMaxHeight(t *testing.T) {
	v0 := 20.0
	s := math.Sin(45 * DegToRad)
	want := v0 * v0 * s * s / (2 * Gravity)
	if got := MaxHeight(v0, 45); math.Abs(got-want) > eps {
		t.Errorf("MaxHeight(20, 45) = %f, want %f", got, want)
	}
	if got := MaxHeight(20, 90); math.Abs(got-v0*v0/(2*Gravity)) > eps {
		t.Errorf("MaxHeight(20, 90) = %f, want %f", got, v0*v0/(2*Gravity))
	}
}

func TestFlightTime(t *testing.T) {
	v0 := 20.0
	want := 2 * v0 * math.Sin(45*DegToRad) / Gravity
	if got := FlightTime(v0, 45); math.Abs(got-want) > eps {
		t.Errorf("FlightTime(20, 45) = %f, want %f", got, want)
	}

	for _, angle := range []float64{0, -10, -90} {
		if got := FlightTime(v0, angle); got != 0 {
			t.Errorf("FlightTime(20, %.0f) = %f, want 0", angle, got)
		}
	}
}

func TestPositionAtZero(t *testing.T) {
	p := Position(20, 45, 0)
	if p.X != 0 || p.Y != 0 {
		t.Errorf("Position at t=0 = %+v, want origin", p)
	}
}

func TestPositionLandsAtRange(t *testing.T) {
	v0, angle := 15.0, 30.0
	p := Position(v0, angle, FlightTime(v0, angle))
	if math.Abs(p.X-Range(v0, angle)) > 1e-6 {
		t.Errorf("x at landing = %f, want %f", p.X, Range(v0, angle))
	}
	if math.Abs(p.Y) > 1e-6 {
		t.Errorf("y at landing = %f, want 0", p.Y)
	}
}

func TestFallTime(t *testing.T) {
	if got := FallTime(0); got != 0 {
		t.Errorf("FallTime(0) = %f, want 0", got)
	}
	if got := FallTime(-3); got != 0 {
		t.Errorf("FallTime(-3) = %f, want 0", got)
	}
	tf := FallTime(20)
	if math.Abs(Drop(tf)-20) > 1e-9 {
		t.Errorf("Drop(FallTime(20)) = %f, want 20", Drop(tf))
	}
}

func TestApexMatchesMaxHeight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v0 := rapid.Float64Range(0.5, 200).Draw(t, "v0")
		angle := rapid.Float64Range(1, 89).Draw(t, "angle")

		apex := Position(v0, angle, FlightTime(v0, angle)/2)
		want := MaxHeight(v0, angle)
		if math.Abs(apex.Y-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("apex y = %f, MaxHeight = %f", apex.Y, want)
		}
	})
}

func TestComponentsMagnitude(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v0 := rapid.Float64Range(0, 500).Draw(t, "v0")
		angle := rapid.Float64Range(-180, 180).Draw(t, "angle")

		vx, vy := Components(v0, angle)
		if math.Abs(math.Hypot(vx, vy)-v0) > 1e-9*math.Max(1, v0) {
			t.Fatalf("|(%f, %f)| != %f", vx, vy, v0)
		}
	})
}
