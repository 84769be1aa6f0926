package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/prefabs"
)

// scriptDispatch invokes the script's held function with the current
// simulation time. Scripts return a string of held key letters (WASD).
const scriptDispatch = `
__out = held(__t)
`

// ScriptSource drives input from a tengo script instead of the
// keyboard, for the autopilot demo and headless simulation runs. The
// script must define held := func(t) returning a WASD string.
type ScriptSource struct {
	compiled *tengo.Compiled
	t        float64
	dt       float64
}

func NewScriptSource(name string, dt float64) (*ScriptSource, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script input: load %s: %w", name, err)
	}

	script := tengo.NewScript(append(src, []byte("\n"+scriptDispatch)...))
	_ = script.Add("__t", 0.0)
	_ = script.Add("__out", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile %s: %w", name, err)
	}

	return &ScriptSource{compiled: compiled, dt: dt}, nil
}

func (s *ScriptSource) Held() HeldKeys {
	if s == nil || s.compiled == nil {
		return HeldKeys{}
	}
	if err := s.compiled.Set("__t", s.t); err != nil {
		log.Printf("script input: set time: %v", err)
		return HeldKeys{}
	}
	s.t += s.dt
	if err := s.compiled.Run(); err != nil {
		log.Printf("script input: run: %v", err)
		return HeldKeys{}
	}

	out := ""
	if v := s.compiled.Get("__out"); v != nil {
		if str, ok := v.Value().(string); ok {
			out = str
		}
	}

	var held HeldKeys
	for _, r := range strings.ToUpper(out) {
		switch r {
		case 'W':
			held.Forward = true
		case 'S':
			held.Backward = true
		case 'A':
			held.Left = true
		case 'D':
			held.Right = true
		}
	}
	return held
}
