// Package config loads engagement settings from a JSON file and command-line
// overrides.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"intercept-simulator/internal/game/intercept"
	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/pkg/types"

	"github.com/labstack/gommon/log"
)

// EnvConfigPath names the variable holding the default config file path.
const EnvConfigPath = "INTERCEPT_CONFIG"

type Cannon struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Speed    float64 `json:"speed"`
	Angle    float64 `json:"angle"`
	TimeStep float64 `json:"timeStep"`
	MaxTime  float64 `json:"maxTime"`
}

type Target struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	HorizontalSpeed float64 `json:"horizontalSpeed"`
	TimeStep        float64 `json:"timeStep"`
}

type Config struct {
	Cannon          Cannon  `json:"cannon"`
	Target          Target  `json:"target"`
	Tolerance       float64 `json:"tolerance"`
	InterceptHeight float64 `json:"interceptHeight"`
	PlaybackRate    float64 `json:"playbackRate"`
	LogLevel        string  `json:"logLevel"`
}

func Default() Config {
	return Config{
		Cannon: Cannon{
			Speed:    10,
			Angle:    45,
			TimeStep: trajectory.DefaultTimeStep,
		},
		Target: Target{
			X:        10,
			Y:        20,
			TimeStep: trajectory.DefaultTimeStep,
		},
		Tolerance:       intercept.DefaultTolerance,
		InterceptHeight: 5,
		PlaybackRate:    1,
		LogLevel:        "INFO",
	}
}

// Sanitize replaces values the engine would reject or misread with usable
// ones. Physics inputs such as a non-positive speed are left alone.
func Sanitize(c Config) Config {
	if !validPositive(c.Cannon.TimeStep) {
		c.Cannon.TimeStep = trajectory.DefaultTimeStep
	}
	if !validPositive(c.Target.TimeStep) {
		c.Target.TimeStep = trajectory.DefaultTimeStep
	}
	if c.Cannon.MaxTime < 0 || !types.IsFinite(c.Cannon.MaxTime) {
		c.Cannon.MaxTime = 0
	}
	if c.Tolerance < 0 || !types.IsFinite(c.Tolerance) {
		c.Tolerance = intercept.DefaultTolerance
	}
	if !validPositive(c.PlaybackRate) {
		c.PlaybackRate = 1
	}
	if c.InterceptHeight < 0 || !types.IsFinite(c.InterceptHeight) {
		c.InterceptHeight = 0
	}
	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if _, ok := levels[c.LogLevel]; !ok {
		c.LogLevel = "INFO"
	}
	return c
}

func validPositive(v float64) bool {
	return v > 0 && types.IsFinite(v)
}

var levels = map[string]log.Lvl{
	"DEBUG": log.DEBUG,
	"INFO":  log.INFO,
	"WARN":  log.WARN,
	"ERROR": log.ERROR,
	"OFF":   log.OFF,
}

// ParseLevel maps a level name to its gommon level; unknown names give INFO.
func ParseLevel(name string) log.Lvl {
	if lvl, ok := levels[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return log.INFO
}

// Level is the gommon level named by LogLevel.
func (c Config) Level() log.Lvl {
	return ParseLevel(c.LogLevel)
}

func (c Config) CannonData() trajectory.TrajectoryData {
	return trajectory.TrajectoryData{
		InitialPosition: types.NewPoint(c.Cannon.X, c.Cannon.Y),
		InitialSpeed:    c.Cannon.Speed,
		Angle:           c.Cannon.Angle,
		TimeStep:        c.Cannon.TimeStep,
		MaxTime:         c.Cannon.MaxTime,
	}
}

func (c Config) TargetData() trajectory.FreeFallData {
	return trajectory.FreeFallData{
		InitialPosition:        types.NewPoint(c.Target.X, c.Target.Y),
		InitialHorizontalSpeed: c.Target.HorizontalSpeed,
		TimeStep:               c.Target.TimeStep,
	}
}

func (c Config) Engagement() simulation.Settings {
	return simulation.Settings{
		Cannon:       c.CannonData(),
		Target:       c.TargetData(),
		Tolerance:    c.Tolerance,
		PlaybackRate: c.PlaybackRate,
	}
}

type cannonFile struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Speed    *float64 `json:"speed"`
	Angle    *float64 `json:"angle"`
	TimeStep *float64 `json:"timeStep"`
	MaxTime  *float64 `json:"maxTime"`
}

type targetFile struct {
	X               *float64 `json:"x"`
	Y               *float64 `json:"y"`
	HorizontalSpeed *float64 `json:"horizontalSpeed"`
	TimeStep        *float64 `json:"timeStep"`
}

type configFile struct {
	Cannon          *cannonFile `json:"cannon"`
	Target          *targetFile `json:"target"`
	Tolerance       *float64    `json:"tolerance"`
	InterceptHeight *float64    `json:"interceptHeight"`
	PlaybackRate    *float64    `json:"playbackRate"`
	LogLevel        *string     `json:"logLevel"`
}

func set(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func merge(base Config, f configFile) Config {
	if f.Cannon != nil {
		set(&base.Cannon.X, f.Cannon.X)
		set(&base.Cannon.Y, f.Cannon.Y)
		set(&base.Cannon.Speed, f.Cannon.Speed)
		set(&base.Cannon.Angle, f.Cannon.Angle)
		set(&base.Cannon.TimeStep, f.Cannon.TimeStep)
		set(&base.Cannon.MaxTime, f.Cannon.MaxTime)
	}
	if f.Target != nil {
		set(&base.Target.X, f.Target.X)
		set(&base.Target.Y, f.Target.Y)
		set(&base.Target.HorizontalSpeed, f.Target.HorizontalSpeed)
		set(&base.Target.TimeStep, f.Target.TimeStep)
	}
	set(&base.Tolerance, f.Tolerance)
	set(&base.InterceptHeight, f.InterceptHeight)
	set(&base.PlaybackRate, f.PlaybackRate)
	if f.LogLevel != nil {
		base.LogLevel = *f.LogLevel
	}
	return Sanitize(base)
}

// Load merges the JSON file at path onto base. An empty path or a missing
// file yields base unchanged apart from sanitizing.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return Sanitize(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Sanitize(base), nil
		}
		return Sanitize(base), fmt.Errorf("read config %q: %w", cleanPath, err)
	}
	var f configFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Sanitize(base), fmt.Errorf("parse config %q: %w", cleanPath, err)
	}
	return merge(base, f), nil
}

// Overrides are optional command-line values; nil fields keep the loaded
// value.
type Overrides struct {
	CannonX         *float64
	CannonY         *float64
	Speed           *float64
	Angle           *float64
	TargetX         *float64
	TargetY         *float64
	TargetSpeed     *float64
	Tolerance       *float64
	InterceptHeight *float64
	PlaybackRate    *float64
}

func (o Overrides) Apply(base Config) Config {
	set(&base.Cannon.X, o.CannonX)
	set(&base.Cannon.Y, o.CannonY)
	set(&base.Cannon.Speed, o.Speed)
	set(&base.Cannon.Angle, o.Angle)
	set(&base.Target.X, o.TargetX)
	set(&base.Target.Y, o.TargetY)
	set(&base.Target.HorizontalSpeed, o.TargetSpeed)
	set(&base.Tolerance, o.Tolerance)
	set(&base.InterceptHeight, o.InterceptHeight)
	set(&base.PlaybackRate, o.PlaybackRate)
	return Sanitize(base)
}

// FloatFlag converts a flag registered with a NaN default into an override.
func FloatFlag(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	val := *v
	return &val
}

// Flags holds the flag values registered by RegisterFlags.
type Flags struct {
	Path     *string
	LogLevel *string

	cannonX, cannonY, speed, angle  *float64
	targetX, targetY, targetSpeed   *float64
	tolerance, height, playbackRate *float64
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	nan := math.NaN()
	return &Flags{
		Path:         fs.String("config", GetEnvDefault(EnvConfigPath, ""), "path to JSON config file"),
		LogLevel:     fs.String("log-level", "", "override log level (DEBUG, INFO, WARN, ERROR, OFF)"),
		cannonX:      fs.Float64("cannon-x", nan, "override cannon x position"),
		cannonY:      fs.Float64("cannon-y", nan, "override cannon y position"),
		speed:        fs.Float64("speed", nan, "override launch speed in m/s"),
		angle:        fs.Float64("angle", nan, "override launch angle in degrees"),
		targetX:      fs.Float64("target-x", nan, "override target release x"),
		targetY:      fs.Float64("target-y", nan, "override target release height"),
		targetSpeed:  fs.Float64("target-vx", nan, "override target horizontal speed"),
		tolerance:    fs.Float64("tolerance", nan, "override interception tolerance in m"),
		height:       fs.Float64("intercept-height", nan, "override auto-aim intercept height"),
		playbackRate: fs.Float64("rate", nan, "override playback rate"),
	}
}

func (f *Flags) Overrides() Overrides {
	return Overrides{
		CannonX:         FloatFlag(f.cannonX),
		CannonY:         FloatFlag(f.cannonY),
		Speed:           FloatFlag(f.speed),
		Angle:           FloatFlag(f.angle),
		TargetX:         FloatFlag(f.targetX),
		TargetY:         FloatFlag(f.targetY),
		TargetSpeed:     FloatFlag(f.targetSpeed),
		Tolerance:       FloatFlag(f.tolerance),
		InterceptHeight: FloatFlag(f.height),
		PlaybackRate:    FloatFlag(f.playbackRate),
	}
}

// Resolve loads the config file named by the flags onto Default and applies
// the flag overrides.
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(*f.Path, Default())
	if err != nil {
		return cfg, err
	}
	if *f.LogLevel != "" {
		cfg.LogLevel = *f.LogLevel
	}
	return f.Overrides().Apply(cfg), nil
}

func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
