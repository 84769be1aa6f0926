package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/motion"
	"github.com/milk9111/topdown/prefabs"
)

// simulate runs the locomotion pipeline headless with scripted input
// and prints per-tick telemetry as CSV. Useful for tuning curves
// without launching the game.
func main() {
	script := flag.String("script", "autopilot.tengo", "input script in prefabs/scripts/")
	ticks := flag.Int("ticks", 600, "number of ticks to run")
	dt := flag.Float64("dt", 1.0/60.0, "tick duration in seconds")
	every := flag.Int("every", 1, "print every Nth tick")
	flag.Parse()

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	levelSpec, err := prefabs.LoadLevelSpec()
	if err != nil {
		log.Fatal(err)
	}

	cfg := new(motion.Config)
	*cfg = playerSpec.Motion

	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, levelSpec); err != nil {
		log.Fatal(err)
	}
	player, err := entity.NewPlayer(w, playerSpec, cfg)
	if err != nil {
		log.Fatal(err)
	}

	source, err := system.NewScriptSource(*script, *dt)
	if err != nil {
		log.Fatal(err)
	}

	// Same ordering contract as the game: grounding runs last so the
	// controller consumes the previous tick's verdict.
	w.AddSystem(system.NewInputSystem(source))
	w.AddSystem(system.NewMotionSystem(*dt))
	w.AddSystem(system.NewIntegrateSystem(*dt, levelSpec.KillHeight))
	w.AddSystem(system.NewGroundingSystem())

	fmt.Println("t,input,speed,vx,vy,x,y,height,fall_vy,falling")
	for i := 0; i < *ticks; i++ {
		w.Update()
		if *every > 1 && i%*every != 0 {
			continue
		}

		mo, _ := ecs.Get(w, player, component.MotionComponent)
		tr, _ := ecs.Get(w, player, component.TransformComponent)
		in, _ := ecs.Get(w, player, component.InputComponent)
		gs, _ := ecs.Get(w, player, component.GroundStateComponent)
		if mo == nil || tr == nil || in == nil || gs == nil {
			log.Fatal("simulate: player lost its components")
		}

		st := &mo.State
		fmt.Printf("%.4f,%s,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%t\n",
			float64(i+1)**dt, in.Label, st.Speed,
			st.Velocity.X, st.Velocity.Y,
			tr.X, tr.Y, tr.Height, st.FallVelocityY, gs.Falling)
	}
}
