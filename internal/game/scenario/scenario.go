package scenario

import (
	"fmt"
	"sort"

	"intercept-simulator/internal/config"
	"intercept-simulator/internal/game/launch"
	"intercept-simulator/pkg/types"
)

type Scenario struct {
	Name        string
	Description string
	Config      config.Config

	// AutoAim replaces the cannon angle and speed with the launch solution
	// for Config.InterceptHeight.
	AutoAim bool
}

var presets = map[string]*Scenario{}

func add(s *Scenario) {
	s.Config = config.Sanitize(s.Config)
	presets[s.Name] = s
}

func init() {
	add(&Scenario{
		Name:        "default",
		Description: "45 degree shot at 10 m/s, target released at (10, 20)",
		Config:      config.Default(),
	})

	overhead := config.Default()
	add(&Scenario{
		Name:        "overhead",
		Description: "aimed shot meeting the target 5 m above the ground",
		Config:      overhead,
		AutoAim:     true,
	})

	far := config.Default()
	far.Target.X, far.Target.Y = 100, 50
	add(&Scenario{
		Name:        "far-target",
		Description: "target out of reach, reports the closest approach",
		Config:      far,
	})

	drifting := config.Default()
	drifting.Cannon.Speed, drifting.Cannon.Angle = 25, 55
	drifting.Target.X, drifting.Target.Y = 60, 40
	drifting.Target.HorizontalSpeed = -4
	drifting.Tolerance = 1
	add(&Scenario{
		Name:        "drifting",
		Description: "target drifting toward the cannon as it falls",
		Config:      drifting,
	})

	grounded := config.Default()
	grounded.Target.X, grounded.Target.Y = 7, 0
	add(&Scenario{
		Name:        "grounded",
		Description: "target already on the ground",
		Config:      grounded,
	})

	flat := config.Default()
	flat.Cannon.Angle = 0
	flat.Target.X, flat.Target.Y = 0.3, 5
	add(&Scenario{
		Name:        "flat-shot",
		Description: "horizontal launch, the cannonball never leaves the muzzle",
		Config:      flat,
	})
}

func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Get(name string) (*Scenario, error) {
	s, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("scenario %s not found", name)
	}
	return s, nil
}

// Lookup returns the ready-to-run configuration of the named preset.
func Lookup(name string) (config.Config, error) {
	s, err := Get(name)
	if err != nil {
		return config.Config{}, err
	}
	cfg := s.Config
	if !s.AutoAim {
		return cfg, nil
	}

	release := types.NewPoint(cfg.Target.X-cfg.Cannon.X, cfg.Target.Y-cfg.Cannon.Y)
	p, err := launch.CalculateInterceptionLaunch(release, cfg.InterceptHeight-cfg.Cannon.Y)
	if err != nil {
		return config.Config{}, fmt.Errorf("scenario %s: %w", name, err)
	}
	cfg.Cannon.Angle = p.Angle
	cfg.Cannon.Speed = p.Speed
	return cfg, nil
}
