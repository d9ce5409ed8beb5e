// Command term runs the interception simulator in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"intercept-simulator/internal/config"
	"intercept-simulator/internal/game/scenario"
	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/internal/render"
	"intercept-simulator/internal/ui/command"
	"intercept-simulator/pkg/types"

	"github.com/gdamore/tcell/v2"
	"github.com/labstack/gommon/log"
)

const frameRate = 30

type Game struct {
	screen  tcell.Screen
	surface *tcellSurface
	sim     *simulation.Engagement
	camera  *render.Camera

	input   string
	message string
	running bool
}

func NewGame(s tcell.Screen, sim *simulation.Engagement) *Game {
	g := &Game{
		screen:  s,
		surface: &tcellSurface{screen: s},
		sim:     sim,
		running: true,
		message: command.Usage,
	}
	g.refit()
	return g
}

// refit frames the current paths, leaving the bottom row for input.
func (g *Game) refit() {
	w, h := g.screen.Size()
	g.surface.rows = max(h-1, 1)
	snap := g.sim.Snapshot()
	g.camera = render.FitCamera([][]types.Point{snap.CannonballPath, snap.TargetPath}, w, g.surface.rows, 1)
}

func (g *Game) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for g.running {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.handleEvent(ev)
		case <-ticker.C:
			g.sim.Update(1.0 / frameRate)
			g.render()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.refit()
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			g.running = false
		case tcell.KeyEscape:
			g.input = ""
		case tcell.KeyEnter:
			g.submit()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(g.input) > 0 {
				g.input = g.input[:len(g.input)-1]
			}
		case tcell.KeyRune:
			r := ev.Rune()
			if (r == 'q' || r == 'Q') && g.input == "" {
				g.running = false
				return
			}
			g.input += string(r)
		}
	}
}

func (g *Game) submit() {
	line := g.input
	g.input = ""
	msg, err := command.Run(g.sim, line)
	if err != nil {
		g.message = err.Error()
		log.Debugf("command %q: %v", line, err)
		return
	}
	g.message = msg
	g.refit()
}

func (g *Game) render() {
	g.screen.Clear()
	render.Draw(g.surface, g.sim.Snapshot(), g.camera)

	_, h := g.screen.Size()
	drawText(g.screen, 0, h-1, "> "+g.input+"_  "+g.message, styleDefault.Bold(true))
	g.screen.Show()
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	name := fs.String("scenario", "", "start from a named scenario")
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	if *name != "" {
		if cfg, err = scenario.Lookup(*name); err != nil {
			log.Fatal(err)
		}
	}
	// The terminal is ours while the view is up.
	log.SetLevel(log.OFF)

	sim, err := simulation.NewEngagement(cfg.Engagement())
	if err != nil {
		log.Fatal(err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v", err)
		os.Exit(1)
	}
	s.SetStyle(styleDefault)

	game := NewGame(s, sim)
	game.Run()
	s.Fini()

	snap := sim.Snapshot()
	fmt.Printf("Shots: %d  Hits: %d  Misses: %d\n", snap.Shots, snap.Hits, snap.Misses)
}
