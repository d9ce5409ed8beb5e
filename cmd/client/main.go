package main

import (
	"flag"
	"image/color"
	"os"
	"strconv"

	"intercept-simulator/internal/config"
	"intercept-simulator/internal/game/scenario"
	"intercept-simulator/internal/game/simulation"
	"intercept-simulator/internal/render"
	"intercept-simulator/internal/ui"
	"intercept-simulator/internal/ui/command"
	"intercept-simulator/pkg/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	tickRate     = 60.0
	fitMargin    = 40.0
)

type ebitenSurface struct {
	img *ebiten.Image
}

func (s ebitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s ebitenSurface) Line(x1, y1, x2, y2 float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
}

func (s ebitenSurface) Dot(x, y, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, false)
}

func (s ebitenSurface) Text(row int, text string) {
	ebitenutil.DebugPrintAt(s.img, text, 10, 20+row*16)
}

type Game struct {
	width, height int
	camera        *render.Camera
	sim           *simulation.Engagement

	commandInput *ui.TextInput
	message      string
}

func NewGame(width, height int, sim *simulation.Engagement) *Game {
	game := &Game{
		sim:     sim,
		width:   width,
		height:  height,
		message: command.Usage,
	}
	game.fitCamera()

	game.commandInput = ui.NewTextInput(10, height-48, width/2, 30, func(cmd string) {
		game.executeCommand(cmd)
	})

	return game
}

func (g *Game) fitCamera() {
	snap := g.sim.Snapshot()
	g.camera = render.FitCamera([][]types.Point{snap.CannonballPath, snap.TargetPath}, g.width, g.height, fitMargin)
}

func (g *Game) Update() error {
	g.sim.Update(1.0 / tickRate)

	wasTyping := g.commandInput.IsActive
	g.commandInput.Update()
	g.handleInput(wasTyping)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	render.Draw(ebitenSurface{img: screen}, g.sim.Snapshot(), g.camera)

	g.commandInput.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.message, g.width/2+20, g.height-40)
	ebitenutil.DebugPrint(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) handleInput(wasTyping bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.commandInput.IsActive = g.commandInput.IsClicked(x, y)
	}

	if !wasTyping && !g.commandInput.IsActive {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			g.commandInput.IsActive = true
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			g.sim.Start()
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.sim.Restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyF):
			g.fitCamera()
		}
	}

	_, wy := ebiten.Wheel()
	if wy != 0 {
		cursorX, cursorY := ebiten.CursorPosition()
		factor := 1.1
		if wy < 0 {
			factor = 1 / 1.1
		}
		g.camera.Zoom(factor, float64(cursorX), float64(cursorY))
	}

	// Right mouse button for pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.camera.Pan(float64(x-g.camera.PanStartX), float64(y-g.camera.PanStartY))
		}
		g.camera.PanStartX, g.camera.PanStartY = x, y
	}
}

func (g *Game) executeCommand(cmd string) {
	msg, err := command.Run(g.sim, cmd)
	if err != nil {
		g.message = err.Error()
		log.Printf("Invalid command %q: %v", cmd, err)
		return
	}
	g.message = msg
	log.Print(msg)
	g.fitCamera()
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
	log.SetLevel(cfg.Level())

	sim, err := simulation.NewEngagement(cfg.Engagement())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Intercept Simulator")
	ebiten.SetVsyncEnabled(true)

	game := NewGame(screenWidth, screenHeight, sim)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
