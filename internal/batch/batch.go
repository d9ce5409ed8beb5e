// Package batch evaluates many engagements concurrently and reports the
// outcome of each one.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"

	"intercept-simulator/internal/game/intercept"
	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/internal/game/launch"
	"intercept-simulator/internal/game/trajectory"
	"intercept-simulator/pkg/types"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoCases        = errors.New("batch has no cases")
	ErrDriftingTarget = errors.New("launch solution needs a target released without horizontal speed")
)

type Case struct {
	Name      string                    `json:"name,omitempty"`
	Cannon    trajectory.TrajectoryData `json:"cannon"`
	Target    trajectory.FreeFallData   `json:"target"`
	Tolerance float64                   `json:"tolerance,omitempty"`

	// InterceptHeight, when set, asks for the launch that meets the target
	// at this absolute height.
	InterceptHeight *float64 `json:"interceptHeight,omitempty"`
}

type Report struct {
	RunID string `json:"runId"`
	Name  string `json:"name"`

	Range      float64 `json:"range"`
	MaxHeight  float64 `json:"maxHeight"`
	FlightTime float64 `json:"flightTime"`

	CannonSamples int `json:"cannonSamples"`
	TargetSamples int `json:"targetSamples"`

	Result      *intercept.Result `json:"result,omitempty"`
	Launch      *launch.Params    `json:"launch,omitempty"`
	LaunchError string            `json:"launchError,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type file struct {
	Cases []Case `json:"cases"`
}

// Decode reads either {"cases": [...]} or a bare array of cases.
func Decode(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	data = bytes.TrimSpace(data)

	var cases []Case
	if len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &cases)
	} else {
		var f file
		err = json.Unmarshal(data, &f)
		cases = f.Cases
	}
	if err != nil {
		return nil, fmt.Errorf("parse batch: %w", err)
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	return cases, nil
}

// Run evaluates every case with at most limit running at once; limit <= 0
// means one per CPU. Reports keep the order of cases. A case that fails
// records its error in its report; only cancellation of ctx fails the run.
func Run(ctx context.Context, cases []Case, limit int) ([]Report, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	reports := make([]Report, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = Evaluate(i, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Evaluate runs one case; index names unnamed cases.
func Evaluate(index int, c Case) Report {
	r := Report{
		RunID:      uuid.NewString(),
		Name:       c.Name,
		Range:      kinematics.Range(c.Cannon.InitialSpeed, c.Cannon.Angle),
		MaxHeight:  kinematics.MaxHeight(c.Cannon.InitialSpeed, c.Cannon.Angle),
		FlightTime: kinematics.FlightTime(c.Cannon.InitialSpeed, c.Cannon.Angle),
	}
	if r.Name == "" {
		r.Name = fmt.Sprintf("case-%d", index+1)
	}

	if c.InterceptHeight != nil {
		p, err := solve(c, *c.InterceptHeight)
		if err != nil {
			r.LaunchError = err.Error()
		} else {
			r.Launch = &p
			c.Cannon.Angle, c.Cannon.InitialSpeed = p.Angle, p.Speed
			c.Cannon.MaxTime = 0
			r.Range = kinematics.Range(p.Speed, p.Angle)
			r.MaxHeight = kinematics.MaxHeight(p.Speed, p.Angle)
			r.FlightTime = kinematics.FlightTime(p.Speed, p.Angle)
		}
	}

	cannon, err := trajectory.CalculateTrajectory(c.Cannon)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	target, err := trajectory.CalculateFreeFall(c.Target)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.CannonSamples, r.TargetSamples = len(cannon), len(target)

	res, err := intercept.DetectInterception(c.Cannon, c.Target, c.Tolerance)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Result = &res
	return r
}

func solve(c Case, height float64) (launch.Params, error) {
	if c.Target.InitialHorizontalSpeed != 0 {
		return launch.Params{}, ErrDriftingTarget
	}
	origin := c.Cannon.InitialPosition
	release := types.NewPoint(c.Target.InitialPosition.X-origin.X, c.Target.InitialPosition.Y-origin.Y)
	return launch.CalculateInterceptionLaunch(release, height-origin.Y)
}

// RunJSON decodes a batch from r, runs it and returns the indented report.
func RunJSON(ctx context.Context, r io.Reader, limit int) ([]byte, error) {
	cases, err := Decode(r)
	if err != nil {
		return nil, err
	}
	reports, err := Run(ctx, cases, limit)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return out, nil
}
