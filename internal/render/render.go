// Package render draws engagement snapshots onto any Surface. The ebiten
// client and the terminal view each provide a Surface; nothing here depends
// on a graphics backend.
package render

import (
	"fmt"
	"image/color"
	"math"

	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/pkg/types"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface is a drawing target measured in its own units (pixels or cells)
// with y growing downward.
type Surface interface {
	Size() (width, height int)
	Line(x1, y1, x2, y2 float64, c color.Color)
	Dot(x, y, radius float64, c color.Color)
	// Text writes one line of the status panel.
	Text(row int, s string)
}

var (
	GroundColor     = color.RGBA{0, 100, 0, 255}
	PathColor       = color.RGBA{60, 60, 60, 255}
	CannonballColor = color.RGBA{255, 200, 0, 255}
	TargetColor     = color.RGBA{0, 255, 255, 255}
	CannonColor     = color.RGBA{200, 200, 200, 255}
	ExplosionColor  = color.RGBA{255, 80, 0, 255}
	MissColor       = color.RGBA{255, 0, 0, 255}
)

const (
	BarrelLength = 20.0
	BodyRadius   = 3.0

	maxEventRows = 5
)

func Draw(s Surface, snap simulation.Snapshot, cam *Camera) {
	width, _ := s.Size()

	_, groundY := cam.WorldToScreen(0, 0)
	s.Line(0, groundY, float64(width), groundY, GroundColor)

	drawPath(s, cam, snap.CannonballPath, PathColor)
	drawPath(s, cam, snap.TargetPath, PathColor)
	drawPath(s, cam, snap.CannonballTrail, CannonballColor)
	drawPath(s, cam, snap.TargetTrail, TargetColor)

	cx, cy := cam.WorldToScreen(snap.Cannon.X, snap.Cannon.Y)
	rad := snap.CannonAngle * kinematics.DegToRad
	s.Line(cx, cy, cx+BarrelLength*math.Cos(rad), cy-BarrelLength*math.Sin(rad), CannonColor)
	s.Dot(cx, cy, BodyRadius*2, CannonColor)

	if len(snap.TargetTrail) == 0 {
		tx, ty := cam.WorldToScreen(snap.Target.X, snap.Target.Y)
		s.Dot(tx, ty, BodyRadius, TargetColor)
	}
	drawHead(s, cam, snap.CannonballTrail, CannonballColor)
	drawHead(s, cam, snap.TargetTrail, TargetColor)

	res := snap.Result
	switch {
	case snap.Phase == simulation.EXPLODING && snap.ExplosionSize > 0:
		ex, ey := cam.WorldToScreen(res.Point.X, res.Point.Y)
		s.Dot(ex, ey, snap.ExplosionSize, ExplosionColor)
	case snap.Phase == simulation.FINISHED && !res.Intercepted:
		ax, ay := cam.WorldToScreen(res.PointParabolicAtMin.X, res.PointParabolicAtMin.Y)
		bx, by := cam.WorldToScreen(res.PointFreefallAtMin.X, res.PointFreefallAtMin.Y)
		s.Line(ax, ay, bx, by, MissColor)
	}

	for i, line := range StatusLines(snap) {
		s.Text(i, line)
	}
}

func drawPath(s Surface, cam *Camera, path []types.Point, c color.Color) {
	for i := 1; i < len(path); i++ {
		x1, y1 := cam.WorldToScreen(path[i-1].X, path[i-1].Y)
		x2, y2 := cam.WorldToScreen(path[i].X, path[i].Y)
		s.Line(x1, y1, x2, y2, c)
	}
}

func drawHead(s Surface, cam *Camera, trail []types.Point, c color.Color) {
	if len(trail) == 0 {
		return
	}
	p := trail[len(trail)-1]
	x, y := cam.WorldToScreen(p.X, p.Y)
	s.Dot(x, y, BodyRadius, c)
}

// StatusLines is the text panel for snap, top row first.
func StatusLines(snap simulation.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("STS: %s  T: %.2fs", simulation.PhaseStringMap[snap.Phase], snap.Elapsed),
		fmt.Sprintf("ANG: %.1f  SPD: %.2f m/s  TOL: %.2f m", snap.CannonAngle, snap.CannonSpeed, snap.Tolerance),
		fmt.Sprintf("RNG: %.2f m  MAX H: %.2f m  FLT: %.2fs", snap.Range, snap.MaxHeight, snap.FlightTime),
		fmt.Sprintf("SHOTS: %d  HITS: %d  MISSES: %d", snap.Shots, snap.Hits, snap.Misses),
	}

	res := snap.Result
	if res.Intercepted {
		lines = append(lines, fmt.Sprintf("INTERCEPT at (%.2f, %.2f) t=%.2fs", res.Point.X, res.Point.Y, res.TimeParabolic))
	} else {
		lines = append(lines, fmt.Sprintf("MISS closest %.2f m at t=%.2fs", res.MinDistance, res.TimeParabolicAtMin))
	}

	events := snap.Events
	if len(events) > maxEventRows {
		events = events[len(events)-maxEventRows:]
	}
	for _, ev := range events {
		prefix := " "
		if ev.IsUrgent {
			prefix = "!"
		}
		lines = append(lines, fmt.Sprintf("%s %6.2f %s", prefix, ev.Elapsed, ev.Message))
	}
	return lines
}
