package system

import "testing"

func TestScriptSourceAutopilot(t *testing.T) {
	// 0.5s per call steps through the demo script's phases: forward for
	// 2s, forward-right until 2.6s, then a reversal.
	src, err := NewScriptSource("autopilot.tengo", 0.5)
	if err != nil {
		t.Fatalf("new script source: %v", err)
	}

	want := []HeldKeys{
		{Forward: true},              // t=0.0
		{Forward: true},              // t=0.5
		{Forward: true},              // t=1.0
		{Forward: true},              // t=1.5
		{Forward: true, Right: true}, // t=2.0
		{Forward: true, Right: true}, // t=2.5
		{Backward: true},             // t=3.0
	}
	for i, k := range want {
		if got := src.Held(); got != k {
			t.Fatalf("call %d: held = %+v, want %+v", i, got, k)
		}
	}
}

func TestScriptSourceMissingScript(t *testing.T) {
	if _, err := NewScriptSource("does-not-exist.tengo", 1.0/60.0); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestScriptSourceNil(t *testing.T) {
	var src *ScriptSource
	if got := src.Held(); got != (HeldKeys{}) {
		t.Fatalf("nil source held = %+v, want zero", got)
	}
}
