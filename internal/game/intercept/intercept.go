package intercept

import (
	"errors"
	"fmt"
	"math"

	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/pkg/types"
)

// DefaultTolerance is used when DetectInterception is given a zero tolerance.
const DefaultTolerance = 0.5

var ErrInvalidTolerance = errors.New("tolerance must be a finite, non-negative distance")

// Result describes the closest approach between a cannonball and a falling
// body. Point, TimeParabolic and TimeFreefall are set only when Intercepted.
// MinDistance is 0 exactly when Intercepted.
type Result struct {
	Intercepted   bool        `json:"intercepted"`
	Point         types.Point `json:"point"`
	TimeParabolic float64     `json:"timeParabolic"`
	TimeFreefall  float64     `json:"timeFreefall"`

	MinDistance         float64     `json:"minDistance"`
	TimeParabolicAtMin  float64     `json:"timeParabolicAtMin"`
	TimeFreefallAtMin   float64     `json:"timeFreefallAtMin"`
	PointParabolicAtMin types.Point `json:"pointParabolicAtMin"`
	PointFreefallAtMin  types.Point `json:"pointFreefallAtMin"`
}

// WithinTolerance reports whether two points are close enough to count as
// the same place.
func WithinTolerance(p1, p2 types.Point, tolerance float64) bool {
	return p1.DistanceSqTo(p2) <= tolerance*tolerance
}

// DetectInterception decides whether the cannonball described by para passes
// within tolerance of the falling body described by ff at equal elapsed
// times. A cheap analytic check runs first; the sampled two-trajectory walk
// is the authoritative fallback and also supplies the closest approach on a
// miss.
func DetectInterception(para trajectory.TrajectoryData, ff trajectory.FreeFallData, tolerance float64) (Result, error) {
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	if tolerance < 0 || !types.IsFinite(tolerance) {
		return Result{}, fmt.Errorf("tolerance %v: %w", tolerance, ErrInvalidTolerance)
	}

	if err := para.Validate(); err != nil {
		return Result{}, fmt.Errorf("parabolic trajectory: %w", err)
	}
	if err := ff.Validate(); err != nil {
		return Result{}, fmt.Errorf("free fall: %w", err)
	}

	if res, ok := analyticIntercept(para, ff, tolerance); ok {
		return res, nil
	}

	paraPoints, err := trajectory.CalculateTrajectory(para)
	if err != nil {
		return Result{}, err
	}
	ffPoints, err := trajectory.CalculateFreeFall(ff)
	if err != nil {
		return Result{}, err
	}
	return sampledIntercept(paraPoints, para.Step(), ffPoints, ff.Step(), tolerance), nil
}

// analyticIntercept solves for the moment the cannonball climbs to the
// falling body's release height and compares horizontal positions there.
// Only upward launches are considered.
func analyticIntercept(para trajectory.TrajectoryData, ff trajectory.FreeFallData, tolerance float64) (Result, bool) {
	vx, vy := kinematics.Components(para.InitialSpeed, para.Angle)
	if vy <= 0 {
		return Result{}, false
	}

	p0, f0 := para.InitialPosition, ff.InitialPosition
	t := (f0.Y - p0.Y) / vy
	if t < 0 || t > para.Duration() {
		return Result{}, false
	}

	xP := p0.X + vx*t
	xF := f0.X + ff.InitialHorizontalSpeed*t
	if math.Abs(xP-xF) > tolerance {
		return Result{}, false
	}

	yP := p0.Y + vy*t - kinematics.Drop(t)
	yF := 0.0
	if f0.Y > 0 {
		yF = math.Max(0, f0.Y-kinematics.Drop(t))
	}

	return Result{
		Intercepted:         true,
		Point:               types.Point{X: (xP + xF) / 2, Y: yP},
		TimeParabolic:       t,
		TimeFreefall:        t,
		MinDistance:         0,
		TimeParabolicAtMin:  t,
		TimeFreefallAtMin:   t,
		PointParabolicAtMin: types.Point{X: xP, Y: yP},
		PointFreefallAtMin:  types.Point{X: xF, Y: yF},
	}, true
}

// sampledIntercept walks both sequences in elapsed-time order. Whichever
// index has the earlier next sample advances; on a tie the free-fall index
// moves. Both sequences must be non-empty.
func sampledIntercept(para []types.Point, dtP float64, ff []types.Point, dtF float64, tolerance float64) Result {
	bestDist2 := math.Inf(1)
	bestI, bestJ := 0, 0

	i, j := 0, 0
	for i < len(para) && j < len(ff) {
		d2 := para[i].DistanceSqTo(ff[j])
		if d2 < bestDist2 {
			bestDist2, bestI, bestJ = d2, i, j
		}

		if WithinTolerance(para[i], ff[j], tolerance) {
			tP, tF := float64(i)*dtP, float64(j)*dtF
			return Result{
				Intercepted:         true,
				Point:               types.Midpoint(para[i], ff[j]),
				TimeParabolic:       tP,
				TimeFreefall:        tF,
				MinDistance:         0,
				TimeParabolicAtMin:  tP,
				TimeFreefallAtMin:   tF,
				PointParabolicAtMin: para[i],
				PointFreefallAtMin:  ff[j],
			}
		}

		if float64(i+1)*dtP < float64(j+1)*dtF {
			i++
		} else {
			j++
		}
	}

	return Result{
		Intercepted:         false,
		MinDistance:         math.Sqrt(bestDist2),
		TimeParabolicAtMin:  float64(bestI) * dtP,
		TimeFreefallAtMin:   float64(bestJ) * dtF,
		PointParabolicAtMin: para[bestI],
		PointFreefallAtMin:  ff[bestJ],
	}
}
