package system

import (
	"math"
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/motion"
)

func TestHeartbeatFollowsSpeed(t *testing.T) {
	cfg := motion.DefaultConfig()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mo := &component.Motion{State: motion.NewState(), Config: &cfg}
	mo.State.Speed = 4
	if err := ecs.Add(w, e, component.MotionComponent, mo); err != nil {
		t.Fatalf("add motion: %v", err)
	}
	hb := component.NewHeartbeat(10)
	if err := ecs.Add(w, e, component.HeartbeatComponent, hb); err != nil {
		t.Fatalf("add heartbeat: %v", err)
	}

	sys := NewHeartbeatSystem(1.0 / 60.0)
	sys.Update(w)

	if hb.Value != 4 {
		t.Fatalf("value = %v, want the body's speed 4", hb.Value)
	}
	// First EMA sample from zero: alpha * value.
	if math.Abs(hb.EMA-hb.EMAAlpha*4) > 1e-9 {
		t.Fatalf("EMA = %v, want %v", hb.EMA, hb.EMAAlpha*4)
	}
	if len(hb.Samples) != hb.MaxSamples {
		t.Fatalf("window length %d, want %d", len(hb.Samples), hb.MaxSamples)
	}
	if hb.Samples[len(hb.Samples)-1] != hb.EMA {
		t.Fatalf("last sample %v, want EMA %v", hb.Samples[len(hb.Samples)-1], hb.EMA)
	}
}

func TestHeartbeatWindowAndScale(t *testing.T) {
	cfg := motion.DefaultConfig()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mo := &component.Motion{State: motion.NewState(), Config: &cfg}
	if err := ecs.Add(w, e, component.MotionComponent, mo); err != nil {
		t.Fatalf("add motion: %v", err)
	}
	hb := component.NewHeartbeat(8)
	if err := ecs.Add(w, e, component.HeartbeatComponent, hb); err != nil {
		t.Fatalf("add heartbeat: %v", err)
	}

	sys := NewHeartbeatSystem(1.0 / 60.0)
	for i := 0; i < 200; i++ {
		mo.State.Speed = 6
		sys.Update(w)

		if len(hb.Samples) != hb.MaxSamples {
			t.Fatalf("tick %d: window length %d, want %d", i, len(hb.Samples), hb.MaxSamples)
		}
		if hb.ScaleMax < hb.ScaleMin {
			t.Fatalf("tick %d: inverted scale [%v, %v]", i, hb.ScaleMin, hb.ScaleMax)
		}
		if hb.Peak < hb.EMA-1e-9 {
			t.Fatalf("tick %d: peak %v below EMA %v", i, hb.Peak, hb.EMA)
		}
	}

	// After a long steady signal the EMA converges and the scale hugs it.
	if math.Abs(hb.EMA-6) > 0.01 {
		t.Fatalf("EMA = %v, want ~6", hb.EMA)
	}
	if hb.ScaleMax < 6 {
		t.Fatalf("scale max %v never reached the signal", hb.ScaleMax)
	}

	// Drop to zero: the window shifts, oldest samples fall out.
	for i := 0; i < 300; i++ {
		mo.State.Speed = 0
		sys.Update(w)
	}
	if hb.EMA > 0.01 {
		t.Fatalf("EMA = %v after long zero signal, want ~0", hb.EMA)
	}
	for i, v := range hb.Samples {
		if v > 0.01 {
			t.Fatalf("sample %d = %v still in window after 300 zero ticks", i, v)
		}
	}
}

func TestNewHeartbeatDefaults(t *testing.T) {
	hb := component.NewHeartbeat(0)
	if hb.MaxSamples != 120 {
		t.Fatalf("default max samples = %d, want 120", hb.MaxSamples)
	}
	if len(hb.Samples) != 120 {
		t.Fatalf("default window length = %d, want 120", len(hb.Samples))
	}
}
