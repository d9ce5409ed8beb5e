// Package launch solves for the cannon settings that meet a falling body.
package launch

import (
	"errors"
	"fmt"
	"math"

	"intercept-simulator/internal/game/kinematics"
	"intercept-simulator/pkg/types"
)

var (
	ErrNonPositiveOriginX      = errors.New("target must be released in front of the cannon")
	ErrNegativeInterceptHeight = errors.New("intercept height cannot be below ground")
	ErrInterceptNotBelowOrigin = errors.New("intercept height must be below the release height")
	ErrNonFinite               = errors.New("launch input is not finite")
)

// Params are the cannon settings: Angle in degrees above the horizontal and
// Speed in m/s.
type Params struct {
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
}

// CalculateInterceptionLaunch returns the settings for a cannon at (0, 0)
// whose shot arrives when a body released from rest at origin has dropped to
// interceptHeight.
//
// The aim line points at the release point itself rather than at
// (origin.X, interceptHeight); both bodies then fall by the same amount, so
// the cannonball crosses the target's vertical line at the same instant the
// target passes interceptHeight.
func CalculateInterceptionLaunch(origin types.Point, interceptHeight float64) (Params, error) {
	if !origin.IsFinite() || !types.IsFinite(interceptHeight) {
		return Params{}, fmt.Errorf("release %v, intercept height %v: %w", origin, interceptHeight, ErrNonFinite)
	}
	if origin.X <= 0 {
		return Params{}, fmt.Errorf("release x %g: %w", origin.X, ErrNonPositiveOriginX)
	}
	if interceptHeight < 0 {
		return Params{}, fmt.Errorf("intercept height %g: %w", interceptHeight, ErrNegativeInterceptHeight)
	}
	if interceptHeight >= origin.Y {
		return Params{}, fmt.Errorf("intercept height %g, release height %g: %w", interceptHeight, origin.Y, ErrInterceptNotBelowOrigin)
	}

	t := kinematics.FallTime(origin.Y - interceptHeight)
	return Params{
		Angle: math.Atan2(origin.Y, origin.X) * kinematics.RadToDeg,
		Speed: math.Hypot(origin.X, origin.Y) / t,
	}, nil
}
