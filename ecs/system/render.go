package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// pixelsPerUnit converts world units to screen pixels at zoom 1.
const pixelsPerUnit = 48.0

// elevationPixelsPerUnit shifts a sprite up-screen per unit of height to
// fake elevation in the top-down view.
const elevationPixelsPerUnit = 24.0

// RenderSystem draws the scene: platforms low-to-high, then bodies with
// a ground shadow and an elevation offset, then the debug text. It is
// not registered as an ecs.System; the game calls Draw from its render
// callback.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (rs *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if rs == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := rs.view(w)
	scale := pixelsPerUnit * zoom
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	worldToScreen := func(x, y float64) (float64, float64) {
		return sw/2 + (x-camX)*scale, sh/2 - (y-camY)*scale
	}

	rs.drawPlatforms(w, screen, worldToScreen, scale)
	rs.drawBodies(w, screen, worldToScreen, scale)
	rs.drawDebugText(w, screen)
}

func (rs *RenderSystem) view(w *ecs.World) (x, y, zoom float64) {
	zoom = 1
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	if tr, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		x, y = tr.X, tr.Y
	}
	return x, y, zoom
}

func (rs *RenderSystem) drawPlatforms(w *ecs.World, screen *ebiten.Image, worldToScreen func(x, y float64) (float64, float64), scale float64) {
	type drawable struct {
		p *component.Platform
		c color.NRGBA
	}
	var platforms []drawable
	ecs.ForEach(w, component.PlatformComponent, func(e ecs.Entity, p *component.Platform) {
		c := color.NRGBA{R: 0x4a, G: 0x6a, B: 0x3a, A: 0xff}
		if spr, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			c = spr.Color
		}
		platforms = append(platforms, drawable{p: p, c: c})
	})
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].p.Surface < platforms[j].p.Surface
	})

	for _, d := range platforms {
		p := d.p
		sx, sy := worldToScreen(p.X-p.Width/2, p.Y+p.Length/2)
		pw := p.Width * scale
		ph := p.Length * scale
		// shift up-screen by surface height so raised platforms read as raised
		sy -= p.Surface * elevationPixelsPerUnit
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(pw), float32(ph), d.c, false)
	}
}

func (rs *RenderSystem) drawBodies(w *ecs.World, screen *ebiten.Image, worldToScreen func(x, y float64) (float64, float64), scale float64) {
	for _, e := range w.Query(component.SpriteComponent.Kind(), component.TransformComponent.Kind(), component.MotionComponent.Kind()) {
		spr, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		cx, cy := worldToScreen(tr.X, tr.Y)
		bw := spr.Width * scale
		bh := spr.Height * scale

		// ground shadow stays at the footprint
		shadow := color.NRGBA{A: 0x66}
		vector.DrawFilledRect(screen, float32(cx-bw*0.4), float32(cy-bh*0.2), float32(bw*0.8), float32(bh*0.4), shadow, false)

		// body offset up-screen by elevation
		by := cy - bh/2 - tr.Height*elevationPixelsPerUnit
		vector.DrawFilledRect(screen, float32(cx-bw/2), float32(by), float32(bw), float32(bh), spr.Color, false)
	}
}

func (rs *RenderSystem) drawDebugText(w *ecs.World, screen *ebiten.Image) {
	playerEntity, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	mo, ok := ecs.Get(w, playerEntity, component.MotionComponent)
	if !ok {
		return
	}

	label := "Idle"
	if in, ok := ecs.Get(w, playerEntity, component.InputComponent); ok {
		label = in.Label
	}
	regime := "decel"
	if mo.State.Accelerating() {
		regime = "accel"
	}
	if mo.State.TurnLocked() {
		regime = "turn-lock"
	}
	falling := false
	height := 0.0
	if gs, ok := ecs.Get(w, playerEntity, component.GroundStateComponent); ok {
		falling = gs.Falling
	}
	if tr, ok := ecs.Get(w, playerEntity, component.TransformComponent); ok {
		height = tr.Height
	}
	if falling {
		regime = "falling"
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Input: %s", label), 0, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %.3f (%s)", mo.State.Speed, regime), 0, 32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Height: %.2f  FallVY: %.2f", height, mo.State.FallVelocityY), 0, 48)
}
