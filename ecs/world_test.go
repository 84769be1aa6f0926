package ecs

import (
	"testing"

	"github.com/milk9111/topdown/ecs/component"
)

type testPos struct {
	X, Y float64
}

type testVel struct {
	X, Y float64
}

type testTag struct{}

var (
	testPosComponent = component.NewComponent[testPos]()
	testVelComponent = component.NewComponent[testVel]()
	testTagComponent = component.NewComponent[testTag]()
)

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	if !e.Valid() {
		t.Fatalf("created entity is not valid")
	}
	if !w.IsAlive(e) {
		t.Fatalf("created entity is not alive")
	}

	if !w.DestroyEntity(e) {
		t.Fatalf("destroy returned false for a live entity")
	}
	if w.IsAlive(e) {
		t.Fatalf("destroyed entity still alive")
	}
	if w.DestroyEntity(e) {
		t.Fatalf("double destroy returned true")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()

	e1 := w.CreateEntity()
	w.DestroyEntity(e1)
	e2 := w.CreateEntity()

	if e1 == e2 {
		t.Fatalf("reused slot produced an identical handle")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle reports alive after slot reuse")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("fresh handle not alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, testPosComponent, &testPos{X: 1, Y: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, ok := Get(w, e, testPosComponent)
	if !ok || p == nil {
		t.Fatalf("get after add failed")
	}
	if p.X != 1 || p.Y != 2 {
		t.Fatalf("got %+v, want {1 2}", *p)
	}

	// Stored pointer is live; mutation through it is visible.
	p.X = 9
	p2, _ := Get(w, e, testPosComponent)
	if p2.X != 9 {
		t.Fatalf("in-place mutation lost: %+v", *p2)
	}

	if !Has(w, e, testPosComponent) {
		t.Fatalf("has = false after add")
	}
	if !Remove(w, e, testPosComponent) {
		t.Fatalf("remove returned false")
	}
	if Has(w, e, testPosComponent) {
		t.Fatalf("has = true after remove")
	}
	if _, ok := Get(w, e, testPosComponent); ok {
		t.Fatalf("get succeeded after remove")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, testPosComponent, nil); err != component.ErrNilComponent {
		t.Fatalf("nil value: got %v, want ErrNilComponent", err)
	}

	w.DestroyEntity(e)
	if err := Add(w, e, testPosComponent, &testPos{}); err != component.ErrEntityNotAlive {
		t.Fatalf("dead entity: got %v, want ErrEntityNotAlive", err)
	}
}

func TestDestroyRemovesComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, e, testPosComponent, &testPos{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := Add(w, e, testVelComponent, &testVel{}); err != nil {
		t.Fatalf("add: %v", err)
	}

	w.DestroyEntity(e)

	if Has(w, e, testPosComponent) || Has(w, e, testVelComponent) {
		t.Fatalf("components survived entity destruction")
	}
	if got := w.Query(testPosComponent.Kind()); len(got) != 0 {
		t.Fatalf("query returned destroyed entity: %v", got)
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()

	both := w.CreateEntity()
	posOnly := w.CreateEntity()
	velOnly := w.CreateEntity()
	w.CreateEntity() // bare

	mustAdd := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	mustAdd(Add(w, both, testPosComponent, &testPos{}))
	mustAdd(Add(w, both, testVelComponent, &testVel{}))
	mustAdd(Add(w, posOnly, testPosComponent, &testPos{}))
	mustAdd(Add(w, velOnly, testVelComponent, &testVel{}))

	got := w.Query(testPosComponent.Kind(), testVelComponent.Kind())
	if len(got) != 1 || got[0] != both {
		t.Fatalf("query(pos, vel) = %v, want [%v]", got, both)
	}

	if got := w.Query(testPosComponent.Kind()); len(got) != 2 {
		t.Fatalf("query(pos) = %v, want 2 entities", got)
	}
	if got := w.Query(testTagComponent.Kind()); len(got) != 0 {
		t.Fatalf("query on empty store = %v, want none", got)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()

	if _, ok := w.First(testTagComponent.Kind()); ok {
		t.Fatalf("first on empty store reported a hit")
	}

	e := w.CreateEntity()
	if err := Add(w, e, testTagComponent, &testTag{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, ok := w.First(testTagComponent.Kind())
	if !ok || got != e {
		t.Fatalf("first = %v, %v; want %v, true", got, ok, e)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	want := map[Entity]float64{}
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, testPosComponent, &testPos{X: float64(i)}); err != nil {
			t.Fatalf("add: %v", err)
		}
		want[e] = float64(i)
	}

	seen := map[Entity]float64{}
	ForEach(w, testPosComponent, func(e Entity, p *testPos) {
		seen[e] = p.X
	})
	if len(seen) != len(want) {
		t.Fatalf("visited %d entities, want %d", len(seen), len(want))
	}
	for e, x := range want {
		if seen[e] != x {
			t.Fatalf("entity %v: saw %v, want %v", e, seen[e], x)
		}
	}
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s *countingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(&countingSystem{order: &order, name: "a"})
	w.AddSystem(&countingSystem{order: &order, name: "b"})
	w.AddSystem(nil)
	w.AddSystem(&countingSystem{order: &order, name: "c"})

	w.Update()
	w.Update()

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("ran %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("ran %v, want %v", order, want)
		}
	}
}
