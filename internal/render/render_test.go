package render_test

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/internal/render"
	"intercept-simulator/internal/render/mocks"
	"intercept-simulator/pkg/types"

	"go.uber.org/mock/gomock"
)

func newEngagement(t *testing.T, target types.Point) *simulation.Engagement {
	t.Helper()
	e, err := simulation.NewEngagement(simulation.Settings{
		Cannon: trajectory.TrajectoryData{InitialSpeed: 10, Angle: 45},
		Target: trajectory.FreeFallData{InitialPosition: target},
	})
	if err != nil {
		t.Fatalf("NewEngagement: %v", err)
	}
	return e
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := &render.Camera{X: 10, Y: 5, Scale: 2, Height: 600}

	sx, sy := cam.WorldToScreen(10, 5)
	if sx != 0 || sy != 600 {
		t.Errorf("bottom-left maps to (%f, %f), want (0, 600)", sx, sy)
	}
	_, above := cam.WorldToScreen(10, 15)
	if above >= sy {
		t.Errorf("higher world y should be higher on screen: %f vs %f", above, sy)
	}

	wx, wy := cam.ScreenToWorld(123, 456)
	bx, by := cam.WorldToScreen(wx, wy)
	if math.Abs(bx-123) > 1e-9 || math.Abs(by-456) > 1e-9 {
		t.Errorf("round trip gave (%f, %f)", bx, by)
	}
}

func TestCamera_ZoomKeepsCursorPoint(t *testing.T) {
	cam := render.NewCamera(600)
	wx, wy := cam.ScreenToWorld(200, 300)

	cam.Zoom(1.1, 200, 300)
	if cam.Scale != 1.1 {
		t.Errorf("Scale = %f, want 1.1", cam.Scale)
	}
	gx, gy := cam.ScreenToWorld(200, 300)
	if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
		t.Errorf("point under cursor moved from (%f, %f) to (%f, %f)", wx, wy, gx, gy)
	}

	cam.Zoom(1e9, 0, 0)
	if cam.Scale != render.MaxScale {
		t.Errorf("Scale = %f, want clamp to %f", cam.Scale, render.MaxScale)
	}
}

func TestFitCamera(t *testing.T) {
	paths := [][]types.Point{
		{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 10, Y: 0}},
		{{X: 8, Y: 20}, {X: 8, Y: 0}},
	}
	cam := render.FitCamera(paths, 800, 600, 20)

	for _, path := range paths {
		for _, p := range path {
			sx, sy := cam.WorldToScreen(p.X, p.Y)
			if sx < 20-1e-9 || sx > 780+1e-9 || sy < 20-1e-9 || sy > 580+1e-9 {
				t.Errorf("%v drawn at (%f, %f), outside the margin", p, sx, sy)
			}
		}
	}

	empty := render.FitCamera(nil, 800, 600, 20)
	if empty.Scale <= 0 {
		t.Errorf("empty fit has scale %f", empty.Scale)
	}
}

func TestDraw_Explosion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngagement(t, types.NewPoint(10, 20))
	if _, err := e.AutoAim(5); err != nil {
		t.Fatalf("AutoAim: %v", err)
	}
	e.Start()
	e.Update(10)
	e.Update(simulation.ExplosionDuration / 2)
	snap := e.Snapshot()
	if snap.Phase != simulation.EXPLODING {
		t.Fatalf("Phase = %s, want EXPLODING", simulation.PhaseStringMap[snap.Phase])
	}

	var texts []string
	lines := map[color.Color]int{}
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().Size().Return(800, 600).AnyTimes()
	s.EXPECT().Dot(gomock.Any(), gomock.Any(), simulation.MaxExplosionSize, render.ExplosionColor).Times(1)
	s.EXPECT().Dot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().Line(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(countLine(lines)).AnyTimes()
	s.EXPECT().Text(gomock.Any(), gomock.Any()).Do(func(row int, line string) {
		if row != len(texts) {
			t.Errorf("row %d written out of order", row)
		}
		texts = append(texts, line)
	}).AnyTimes()

	cam := render.FitCamera([][]types.Point{snap.CannonballPath, snap.TargetPath}, 800, 600, 20)
	render.Draw(s, snap, cam)

	if lines[render.MissColor] != 0 {
		t.Errorf("closest-approach line drawn for a hit")
	}
	if lines[render.CannonballColor] == 0 || lines[render.TargetColor] == 0 {
		t.Errorf("trails not drawn: %v", lines)
	}

	joined := strings.Join(texts, "\n")
	for _, want := range []string{"EXPLODING", "INTERCEPT at", "HITS: 1"} {
		if !strings.Contains(joined, want) {
			t.Errorf("status panel missing %q:\n%s", want, joined)
		}
	}
}

func TestDraw_MissShowsClosestApproach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEngagement(t, types.NewPoint(100, 50))
	e.Start()
	e.Update(100)
	snap := e.Snapshot()

	lines := map[color.Color]int{}
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().Size().Return(80, 24).AnyTimes()
	s.EXPECT().Line(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(countLine(lines)).AnyTimes()
	s.EXPECT().Dot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(func(x, y, radius float64, c color.Color) {
		if c == render.ExplosionColor {
			t.Errorf("explosion drawn for a miss")
		}
	}).AnyTimes()
	s.EXPECT().Text(0, gomock.Any()).Do(func(row int, line string) {
		if !strings.Contains(line, "FINISHED") {
			t.Errorf("first status line = %q", line)
		}
	})
	s.EXPECT().Text(gomock.Any(), gomock.Any()).AnyTimes()

	render.Draw(s, snap, render.FitCamera([][]types.Point{snap.CannonballPath, snap.TargetPath}, 80, 24, 1))
	if lines[render.MissColor] != 1 {
		t.Errorf("%d closest-approach lines, want 1", lines[render.MissColor])
	}
}

func TestDraw_ReadyShowsOnlyPlannedPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := newEngagement(t, types.NewPoint(10, 20)).Snapshot()

	lines := map[color.Color]int{}
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().Size().Return(800, 600).AnyTimes()
	s.EXPECT().Line(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Do(countLine(lines)).AnyTimes()
	// Cannon body and the waiting target.
	s.EXPECT().Dot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	s.EXPECT().Text(gomock.Any(), gomock.Any()).AnyTimes()

	render.Draw(s, snap, render.NewCamera(600))
	if lines[render.CannonballColor] != 0 || lines[render.TargetColor] != 0 {
		t.Errorf("trails drawn before firing: %v", lines)
	}
	if lines[render.PathColor] == 0 {
		t.Errorf("planned paths not drawn")
	}
}

func countLine(counts map[color.Color]int) func(x1, y1, x2, y2 float64, c color.Color) {
	return func(x1, y1, x2, y2 float64, c color.Color) {
		counts[c]++
	}
}

func TestStatusLines_EventTail(t *testing.T) {
	e := newEngagement(t, types.NewPoint(10, 20))
	for i := 0; i < 8; i++ {
		e.AddEvent("note", i == 7)
	}
	lines := render.StatusLines(e.Snapshot())

	notes := 0
	for _, l := range lines {
		if strings.HasSuffix(l, "note") {
			notes++
		}
	}
	if notes != 5 {
		t.Errorf("%d event rows, want 5", notes)
	}
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "!") {
		t.Errorf("urgent event not flagged: %q", last)
	}
}
