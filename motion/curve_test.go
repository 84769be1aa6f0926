package motion

import (
	"math"
	"testing"
)

func TestAccelRamp(t *testing.T) {
	cases := []struct {
		name string
		t    float64
		k    float64
		want float64
	}{
		{"zero", 0, 6, 0},
		{"negative_clamped", -5, 6, 0},
		{"one_second", 1, 6, 1 - math.Exp(-6)},
		{"large_t_approaches_one", 1000, 6, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AccelRamp(c.t, c.k)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("AccelRamp(%v, %v) = %v, want %v", c.t, c.k, got, c.want)
			}
			if got < 0 || got >= 1+1e-9 {
				t.Fatalf("AccelRamp out of [0,1): %v", got)
			}
		})
	}

	// monotonically increasing
	prev := -1.0
	for tt := 0.0; tt < 5; tt += 0.05 {
		v := AccelRamp(tt, 6)
		if v < prev {
			t.Fatalf("AccelRamp not monotonic at t=%v: %v < %v", tt, v, prev)
		}
		prev = v
	}
}

func TestDecelRamp(t *testing.T) {
	cases := []struct {
		name string
		t    float64
		a    float64
		want float64
	}{
		{"zero_is_one", 0, 6, 1},
		{"negative_clamped", -3, 6, 1},
		{"one_second", 1, 6, 1.0 / 49.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DecelRamp(c.t, c.a)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("DecelRamp(%v, %v) = %v, want %v", c.t, c.a, got, c.want)
			}
		})
	}

	// decreasing, never reaching zero
	prev := 2.0
	for tt := 0.0; tt < 50; tt += 0.5 {
		v := DecelRamp(tt, 6)
		if v > prev {
			t.Fatalf("DecelRamp not monotonic at t=%v", tt)
		}
		if v <= 0 {
			t.Fatalf("DecelRamp reached zero at t=%v", tt)
		}
		prev = v
	}
}
