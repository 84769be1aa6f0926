package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// HeartbeatSystem feeds the player's speed into heartbeat widgets and
// maintains their smoothing, peak hold, and autoscale state. Drawing is
// a separate pass so headless runs can tick widgets without a screen.
type HeartbeatSystem struct {
	dt float64
}

func NewHeartbeatSystem(dt float64) *HeartbeatSystem {
	return &HeartbeatSystem{dt: dt}
}

func (s *HeartbeatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.HeartbeatComponent.Kind(), component.MotionComponent.Kind()) {
		hb, ok := ecs.Get(w, e, component.HeartbeatComponent)
		if !ok {
			continue
		}
		if mo, ok := ecs.Get(w, e, component.MotionComponent); ok {
			hb.Value = mo.State.Speed
		}
		s.tick(hb)
	}
}

func (s *HeartbeatSystem) tick(hb *component.Heartbeat) {
	// EMA smoothing
	hb.EMA = hb.EMA + (hb.Value-hb.EMA)*hb.EMAAlpha

	// peak hold with fall-off
	if hb.EMA > hb.Peak {
		hb.Peak = hb.EMA
	}
	if p := hb.Peak - hb.PeakFallPerS*s.dt; p > hb.EMA {
		hb.Peak = p
	} else {
		hb.Peak = hb.EMA
	}

	// push into the fixed window
	if len(hb.Samples) >= hb.MaxSamples && len(hb.Samples) > 0 {
		hb.Samples = hb.Samples[1:]
	}
	hb.Samples = append(hb.Samples, hb.EMA)
	for len(hb.Samples) < hb.MaxSamples {
		hb.Samples = append([]float64{0}, hb.Samples...)
	}

	// soft autoscale toward the window's padded min/max
	wmin, wmax := hb.Samples[0], hb.Samples[0]
	for _, v := range hb.Samples {
		if v < wmin {
			wmin = v
		}
		if v > wmax {
			wmax = v
		}
	}
	pad := (wmax - wmin) * 0.08
	if pad < 0.001*0.08 {
		pad = 0.001 * 0.08
	}
	hb.ScaleMin = common.Lerp(hb.ScaleMin, wmin-pad, hb.ScaleLerp)
	hb.ScaleMax = common.Lerp(hb.ScaleMax, wmax+pad, hb.ScaleLerp)
}

// Draw renders every heartbeat widget as a bar strip in the top-right
// corner. Bars in the top 10% of the current scale render brighter.
func (s *HeartbeatSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}

	const (
		widgetW = 240.0
		widgetH = 50.0
		padding = 4.0
	)
	x0 := float64(screen.Bounds().Dx()) - widgetW - 10
	y0 := 10.0

	ecs.ForEach(w, component.HeartbeatComponent, func(_ ecs.Entity, hb *component.Heartbeat) {
		vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(widgetW), float32(widgetH),
			color.NRGBA{A: 0x99}, false)

		h := widgetH - 2*padding
		denom := hb.ScaleMax - hb.ScaleMin
		if denom < 0.001 {
			denom = 0.001
		}
		peakThreshold := hb.ScaleMax - 0.1*denom

		step := hb.BarWidthPx + 1
		for i, v := range hb.Samples {
			t := common.Clamp((v-hb.ScaleMin)/denom, 0, 1)
			barH := hb.MinBarPx + t*h
			bx := x0 + padding + float64(i)*step
			if bx+hb.BarWidthPx > x0+widgetW-padding {
				break
			}
			by := y0 + widgetH - padding - barH

			c := color.NRGBA{R: 0x33, G: 0xff, B: 0x33, A: 0xff}
			if v >= peakThreshold {
				c = color.NRGBA{R: 0x66, G: 0xff, B: 0x66, A: 0xff}
			}
			vector.DrawFilledRect(screen, float32(bx), float32(by), float32(hb.BarWidthPx), float32(barH), c, false)
		}

		y0 += widgetH + 6
	})
}
