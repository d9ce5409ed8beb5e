package types

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(3, 4)

	if got := a.DistanceTo(b); got != 5 {
		t.Errorf("DistanceTo = %f, want 5", got)
	}
	if got := a.DistanceSqTo(b); got != 25 {
		t.Errorf("DistanceSqTo = %f, want 25", got)
	}
	if got := b.DistanceTo(a); got != 5 {
		t.Errorf("DistanceTo should be symmetric, got %f", got)
	}
}

func TestMidpointAndAdd(t *testing.T) {
	m := Midpoint(NewPoint(2, 4), NewPoint(4, 8))
	if m != NewPoint(3, 6) {
		t.Errorf("Midpoint = %+v, want {3 6}", m)
	}

	s := NewPoint(1, -1).Add(NewPoint(2, 3))
	if s != NewPoint(3, 2) {
		t.Errorf("Add = %+v, want {3 2}", s)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{NewPoint(1, 2), true},
		{NewPoint(math.NaN(), 0), false},
		{NewPoint(0, math.Inf(1)), false},
		{NewPoint(math.Inf(-1), math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("(%v).IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
