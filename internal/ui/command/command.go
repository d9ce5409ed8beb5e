// Package command parses the typed commands shared by the window and
// terminal front ends and applies them to an engagement.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"intercept-simulator/internal/game/scenario"
	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/pkg/types"
)

type Kind int

const (
	ANGLE Kind = iota
	SPEED
	TOLERANCE
	TARGET
	AIM
	FIRE
	RESTART
	LOAD
	HELP
)

var KindStringMap = map[Kind]string{
	ANGLE:     "ANGLE",
	SPEED:     "SPEED",
	TOLERANCE: "TOLERANCE",
	TARGET:    "TARGET",
	AIM:       "AIM",
	FIRE:      "FIRE",
	RESTART:   "RESTART",
	LOAD:      "LOAD",
	HELP:      "HELP",
}

const Usage = "A <deg> | V <m/s> | T <m> | P <x> <y> | H <height> | G | R | L <scenario> | ?"

var ErrEmpty = errors.New("empty command")

type Command struct {
	Kind   Kind
	Values []float64
	Name   string
}

var aliases = map[string]Kind{
	"A": ANGLE, "ANG": ANGLE, "ANGLE": ANGLE,
	"V": SPEED, "SPD": SPEED, "SPEED": SPEED,
	"T": TOLERANCE, "TOL": TOLERANCE, "TOLERANCE": TOLERANCE,
	"P": TARGET, "POS": TARGET, "TARGET": TARGET,
	"H": AIM, "AIM": AIM,
	"G": FIRE, "GO": FIRE, "FIRE": FIRE,
	"R": RESTART, "RESTART": RESTART,
	"L": LOAD, "LOAD": LOAD,
	"?": HELP, "HELP": HELP,
}

var arity = map[Kind]int{
	ANGLE:     1,
	SPEED:     1,
	TOLERANCE: 1,
	TARGET:    2,
	AIM:       1,
}

func Parse(input string) (Command, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Command{}, ErrEmpty
	}

	kind, ok := aliases[strings.ToUpper(parts[0])]
	if !ok {
		return Command{}, fmt.Errorf("unknown command type: %s", parts[0])
	}
	cmd := Command{Kind: kind}
	args := parts[1:]

	if kind == LOAD {
		if len(args) != 1 {
			return Command{}, fmt.Errorf("LOAD expects a scenario name")
		}
		cmd.Name = strings.ToLower(args[0])
		return cmd, nil
	}

	if len(args) != arity[kind] {
		return Command{}, fmt.Errorf("%s expects %d value(s), got %d", KindStringMap[kind], arity[kind], len(args))
	}
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || !types.IsFinite(v) {
			return Command{}, fmt.Errorf("invalid %s value: %s", strings.ToLower(KindStringMap[kind]), arg)
		}
		cmd.Values = append(cmd.Values, v)
	}

	switch kind {
	case ANGLE:
		if cmd.Values[0] < 0 || cmd.Values[0] > 180 {
			return Command{}, fmt.Errorf("invalid angle value: %g. Must be 0-180", cmd.Values[0])
		}
	case SPEED, TOLERANCE:
		if cmd.Values[0] <= 0 {
			return Command{}, fmt.Errorf("invalid %s value: %g. Must be positive", strings.ToLower(KindStringMap[kind]), cmd.Values[0])
		}
	case AIM:
		if cmd.Values[0] < 0 {
			return Command{}, fmt.Errorf("invalid intercept height: %g. Must not be negative", cmd.Values[0])
		}
	}
	return cmd, nil
}

// Apply runs cmd against e and returns a line suitable for logging.
func Apply(e *simulation.Engagement, cmd Command) (string, error) {
	switch cmd.Kind {
	case ANGLE:
		if err := e.IssueAngle(cmd.Values[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Issued A %.1f", cmd.Values[0]), nil
	case SPEED:
		if err := e.IssueSpeed(cmd.Values[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Issued V %.2f", cmd.Values[0]), nil
	case TOLERANCE:
		if err := e.IssueTolerance(cmd.Values[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Issued T %.2f", cmd.Values[0]), nil
	case TARGET:
		p := types.NewPoint(cmd.Values[0], cmd.Values[1])
		if err := e.IssueTarget(p); err != nil {
			return "", err
		}
		return fmt.Sprintf("Issued P %.2f %.2f", p.X, p.Y), nil
	case AIM:
		params, err := e.AutoAim(cmd.Values[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Aimed for %.2f m: angle %.2f, speed %.2f", cmd.Values[0], params.Angle, params.Speed), nil
	case FIRE:
		e.Start()
		return "Fire", nil
	case RESTART:
		e.Restart()
		return "Restart", nil
	case LOAD:
		cfg, err := scenario.Lookup(cmd.Name)
		if err != nil {
			return "", err
		}
		if err := e.Configure(cfg.Engagement()); err != nil {
			return "", err
		}
		return fmt.Sprintf("Loaded scenario %s", cmd.Name), nil
	case HELP:
		return Usage + "; scenarios: " + strings.Join(scenario.Names(), ", "), nil
	}
	return "", fmt.Errorf("unknown command type: %d", cmd.Kind)
}

// Run parses and applies input in one step.
func Run(e *simulation.Engagement, input string) (string, error) {
	cmd, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Apply(e, cmd)
}
