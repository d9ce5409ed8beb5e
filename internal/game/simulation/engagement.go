package simulation

import (
	"fmt"
	"math"
	"slices"

	"intercept-simulator/internal/game/intercept"
	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/internal/game/launch"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/pkg/types"

	"github.com/labstack/gommon/log"
)

type Phase int

const (
	READY Phase = iota
	IN_FLIGHT
	EXPLODING
	FINISHED
)

var PhaseStringMap = map[Phase]string{
	READY:     "READY",
	IN_FLIGHT: "IN FLIGHT",
	EXPLODING: "EXPLODING",
	FINISHED:  "FINISHED",
}

const (
	MaxExplosionSize  = 50.0
	ExplosionDuration = 1.5 // seconds
)

type Settings struct {
	Cannon       trajectory.TrajectoryData
	Target       trajectory.FreeFallData
	Tolerance    float64
	PlaybackRate float64
}

// Engagement plays back one cannon shot against one falling target. All
// physics is computed up front; Update only moves the playback clock.
type Engagement struct {
	Settings Settings

	Cannonball []types.Point
	Falling    []types.Point
	Result     intercept.Result

	Phase            Phase
	Elapsed          float64
	ExplosionElapsed float64

	Shots  int
	Hits   int
	Misses int

	Events          []Event
	maxEventLogSize int
}

func NewEngagement(s Settings) (*Engagement, error) {
	e := &Engagement{
		maxEventLogSize: 50,
	}
	if err := e.apply(s); err != nil {
		return nil, err
	}
	return e, nil
}

// apply recomputes both paths and the interception for s. On error the
// engagement is left as it was.
func (e *Engagement) apply(s Settings) error {
	if s.PlaybackRate <= 0 || !types.IsFinite(s.PlaybackRate) {
		s.PlaybackRate = 1
	}
	if s.Tolerance == 0 {
		s.Tolerance = intercept.DefaultTolerance
	}

	cannonball, err := trajectory.CalculateTrajectory(s.Cannon)
	if err != nil {
		return fmt.Errorf("cannon: %w", err)
	}
	falling, err := trajectory.CalculateFreeFall(s.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	res, err := intercept.DetectInterception(s.Cannon, s.Target, s.Tolerance)
	if err != nil {
		return fmt.Errorf("interception: %w", err)
	}

	e.Settings = s
	e.Cannonball = cannonball
	e.Falling = falling
	e.Result = res
	e.reset()

	if res.Intercepted {
		log.Printf("SOLUTION: angle %.1f speed %.2f intercepts at (%.2f, %.2f) after %.2fs",
			s.Cannon.Angle, s.Cannon.InitialSpeed, res.Point.X, res.Point.Y, res.TimeParabolic)
	} else {
		log.Printf("SOLUTION: angle %.1f speed %.2f misses, closest %.2fm", s.Cannon.Angle, s.Cannon.InitialSpeed, res.MinDistance)
	}
	return nil
}

func (e *Engagement) reset() {
	e.Phase = READY
	e.Elapsed = 0
	e.ExplosionElapsed = 0
}

// Start fires the cannon. It has no effect while a shot is already playing.
func (e *Engagement) Start() {
	if e.Phase == IN_FLIGHT || e.Phase == EXPLODING {
		return
	}
	e.reset()
	e.Phase = IN_FLIGHT
	e.Shots++
	e.AddEvent(fmt.Sprintf("Fire! angle %.1f, speed %.1f m/s", e.Settings.Cannon.Angle, e.Settings.Cannon.InitialSpeed), false)
}

func (e *Engagement) Restart() {
	e.reset()
	e.Start()
}

func (e *Engagement) Update(dt float64) {
	step := dt * e.Settings.PlaybackRate

	switch e.Phase {
	case IN_FLIGHT:
		e.Elapsed += step
		if e.Result.Intercepted {
			if hit := e.hitTime(); e.Elapsed >= hit {
				e.Elapsed = hit
				e.Phase = EXPLODING
				e.Hits++
				e.AddEvent(fmt.Sprintf("Intercept at (%.2f, %.2f)", e.Result.Point.X, e.Result.Point.Y), true)
				log.Printf("INTERCEPT: (%.2f, %.2f) at t=%.2fs", e.Result.Point.X, e.Result.Point.Y, hit)
			}
			return
		}
		if end := e.EndTime(); e.Elapsed >= end {
			e.Elapsed = end
			e.Phase = FINISHED
			e.Misses++
			e.AddEvent(fmt.Sprintf("Missed by %.2f m", e.Result.MinDistance), true)
			log.Printf("MISS: closest approach %.2fm at t=%.2fs", e.Result.MinDistance, e.Result.TimeParabolicAtMin)
		}
	case EXPLODING:
		e.ExplosionElapsed += step
		if e.ExplosionElapsed >= ExplosionDuration {
			e.ExplosionElapsed = ExplosionDuration
			e.Phase = FINISHED
		}
	}
}

func (e *Engagement) hitTime() float64 {
	return math.Max(e.Result.TimeParabolic, e.Result.TimeFreefall)
}

// EndTime is the playback time at which both sampled paths are fully shown.
func (e *Engagement) EndTime() float64 {
	return math.Max(
		float64(len(e.Cannonball)-1)*e.Settings.Cannon.Step(),
		float64(len(e.Falling)-1)*e.Settings.Target.Step(),
	)
}

// Configure replaces every setting at once, as when loading a scenario.
func (e *Engagement) Configure(s Settings) error {
	if err := e.apply(s); err != nil {
		return err
	}
	e.AddEvent("New engagement loaded", false)
	return nil
}

func (e *Engagement) IssueAngle(angle float64) error {
	s := e.Settings
	s.Cannon.Angle = angle
	return e.apply(s)
}

func (e *Engagement) IssueSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("speed %g must be positive", speed)
	}
	s := e.Settings
	s.Cannon.InitialSpeed = speed
	return e.apply(s)
}

func (e *Engagement) IssueTolerance(tolerance float64) error {
	if tolerance <= 0 {
		return fmt.Errorf("tolerance %g must be positive", tolerance)
	}
	s := e.Settings
	s.Tolerance = tolerance
	return e.apply(s)
}

func (e *Engagement) IssueTarget(p types.Point) error {
	s := e.Settings
	s.Target.InitialPosition = p
	return e.apply(s)
}

// AutoAim points the cannon so its shot meets the target when the target
// has fallen to height (absolute y).
func (e *Engagement) AutoAim(height float64) (launch.Params, error) {
	cannon := e.Settings.Cannon.InitialPosition
	rel := types.Point{
		X: e.Settings.Target.InitialPosition.X - cannon.X,
		Y: e.Settings.Target.InitialPosition.Y - cannon.Y,
	}
	if e.Settings.Target.InitialHorizontalSpeed != 0 {
		return launch.Params{}, fmt.Errorf("auto aim needs a target without horizontal drift")
	}

	p, err := launch.CalculateInterceptionLaunch(rel, height-cannon.Y)
	if err != nil {
		return launch.Params{}, err
	}

	s := e.Settings
	s.Cannon.Angle = p.Angle
	s.Cannon.InitialSpeed = p.Speed
	// A fixed flight time would cut the aimed shot short.
	s.Cannon.MaxTime = 0
	if err := e.apply(s); err != nil {
		return launch.Params{}, err
	}
	e.AddEvent(fmt.Sprintf("Aim for %.1f m: angle %.1f, speed %.1f m/s", height, p.Angle, p.Speed), false)
	return p, nil
}

// Snapshot is a self-contained copy of what a renderer needs for one frame.
type Snapshot struct {
	Elapsed float64
	Phase   Phase

	Cannon      types.Point
	CannonAngle float64
	CannonSpeed float64
	Target      types.Point
	Tolerance   float64

	CannonballPath  []types.Point
	TargetPath      []types.Point
	CannonballTrail []types.Point
	TargetTrail     []types.Point

	Result        intercept.Result
	ExplosionSize float64

	Range      float64
	MaxHeight  float64
	FlightTime float64

	Shots, Hits, Misses int
	Events              []Event
}

func (e *Engagement) Snapshot() Snapshot {
	c := e.Settings.Cannon
	tCannon, tTarget := e.Elapsed, e.Elapsed
	if e.Result.Intercepted {
		tCannon = math.Min(tCannon, e.Result.TimeParabolic)
		tTarget = math.Min(tTarget, e.Result.TimeFreefall)
	}

	snap := Snapshot{
		Elapsed:         e.Elapsed,
		Phase:           e.Phase,
		Cannon:          c.InitialPosition,
		CannonAngle:     c.Angle,
		CannonSpeed:     c.InitialSpeed,
		Target:          e.Settings.Target.InitialPosition,
		Tolerance:       e.Settings.Tolerance,
		CannonballPath:  slices.Clone(e.Cannonball),
		TargetPath:      slices.Clone(e.Falling),
		CannonballTrail: slices.Clone(e.Cannonball[:e.revealed(len(e.Cannonball), c.Step(), tCannon)]),
		TargetTrail:     slices.Clone(e.Falling[:e.revealed(len(e.Falling), e.Settings.Target.Step(), tTarget)]),
		Result:          e.Result,
		Range:           kinematics.Range(c.InitialSpeed, c.Angle),
		MaxHeight:       kinematics.MaxHeight(c.InitialSpeed, c.Angle),
		FlightTime:      kinematics.FlightTime(c.InitialSpeed, c.Angle),
		Shots:           e.Shots,
		Hits:            e.Hits,
		Misses:          e.Misses,
		Events:          slices.Clone(e.Events),
	}
	if e.Phase == EXPLODING {
		snap.ExplosionSize = ExplosionSize(e.ExplosionElapsed / ExplosionDuration)
	}
	return snap
}

// revealed is how many of n samples spaced dt apart have been reached at
// time t. Nothing is shown before the shot is fired.
func (e *Engagement) revealed(n int, dt, t float64) int {
	if e.Phase == READY {
		return 0
	}
	k := int(math.Floor(t/dt+1e-9)) + 1
	return min(max(k, 1), n)
}

// ExplosionSize maps explosion progress in [0, 1] to a radius: quick growth
// over the first 30%, full size until 80%, then a fade to nothing.
func ExplosionSize(progress float64) float64 {
	progress = math.Max(0, math.Min(1, progress))

	var size float64
	switch {
	case progress < 0.3:
		size = progress / 0.3
	case progress < 0.8:
		size = 1
	default:
		size = 1 - (progress-0.8)/0.2
	}
	return size * MaxExplosionSize
}
