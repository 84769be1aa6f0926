package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/motion"
	"github.com/milk9111/topdown/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// Ebiten ticks at a fixed 60 TPS; the controller itself accepts any
	// dt, which the headless simulator exercises.
	tickSeconds = 1.0 / 60.0
)

type Game struct {
	world     *ecs.World
	render    *system.RenderSystem
	heartbeat *system.HeartbeatSystem
	tuning    *system.TuningSystem
	cfg       *motion.Config

	paused bool
	ui     *ebitenui.UI
}

func NewGame(autopilot bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	levelSpec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	cfg := new(motion.Config)
	*cfg = playerSpec.Motion

	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, levelSpec); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewPlayer(w, playerSpec, cfg); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCamera(w, cameraSpec); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	var source system.InputSource = system.NewKeyboardSource()
	if autopilot {
		scripted, err := system.NewScriptSource("autopilot.tengo", tickSeconds)
		if err != nil {
			log.Printf("game: autopilot unavailable, using keyboard: %v", err)
		} else {
			source = scripted
		}
	}

	heartbeat := system.NewHeartbeatSystem(tickSeconds)
	tuning := system.NewTuningSystem(cfg)

	// Ordering contract: the grounding oracle runs after the integrator,
	// so the motion controller always consumes the previous tick's
	// verdict. Keep grounding after integrate.
	w.AddSystem(system.NewInputSystem(source))
	w.AddSystem(system.NewMotionSystem(tickSeconds))
	w.AddSystem(system.NewIntegrateSystem(tickSeconds, levelSpec.KillHeight))
	w.AddSystem(system.NewGroundingSystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddSystem(heartbeat)
	w.AddSystem(tuning)

	g := &Game{
		world:     w,
		render:    system.NewRenderSystem(),
		heartbeat: heartbeat,
		tuning:    tuning,
		cfg:       cfg,
	}
	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x1c, G: 0x24, B: 0x38, A: 0xff})
	g.render.Draw(g.world, screen)
	g.heartbeat.Draw(g.world, screen)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
