package ecs

import (
	"testing"

	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
)

func geometry(w donburi.World, e donburi.Entity) bough.Rect {
	return *Geometry.Get(w.Entry(e))
}

func TestLayoutSystemPositionsChildren(t *testing.T) {
	world := donburi.NewWorld()
	panel := NewContainer(world, bough.Rect{X: 10, Y: 20, Width: 300, Height: 40}, bough.FlexConfig{})
	a := NewChild(world, panel, bough.Rect{Width: 100, Height: 10}, bough.WithGrow(1))
	b := NewChild(world, panel, bough.Rect{Width: 100, Height: 10}, bough.WithGrow(3))

	LayoutSystem(world)

	if got, want := geometry(world, a), (bough.Rect{X: 10, Y: 20, Width: 125, Height: 40}); got != want {
		t.Errorf("a = %+v, want %+v", got, want)
	}
	if got, want := geometry(world, b), (bough.Rect{X: 135, Y: 20, Width: 175, Height: 40}); got != want {
		t.Errorf("b = %+v, want %+v", got, want)
	}
}

func TestLayoutSystemKeepsCreationOrder(t *testing.T) {
	world := donburi.NewWorld()
	panel := NewContainer(world, bough.Rect{Width: 100, Height: 10}, bough.FlexConfig{})
	var kids []donburi.Entity
	for range 5 {
		kids = append(kids, NewChild(world, panel, bough.Rect{Width: 10, Height: 10}))
	}
	LayoutSystem(world)
	for i, k := range kids {
		if x := geometry(world, k).X; x != float64(i*10) {
			t.Errorf("kids[%d].X = %v, want %v", i, x, i*10)
		}
	}
}

func TestLayoutSystemNestedOutermostFirst(t *testing.T) {
	world := donburi.NewWorld()
	outer := NewContainer(world, bough.Rect{Width: 200, Height: 100}, bough.FlexConfig{Direction: bough.Column})
	header := NewChild(world, outer, bough.Rect{Height: 30})
	body := NewChild(world, outer, bough.Rect{}, bough.WithGrow(1))
	// Created after its children so query order cannot line up by accident.
	left := NewChild(world, body, bough.Rect{}, bough.WithGrow(1))
	right := NewChild(world, body, bough.Rect{}, bough.WithGrow(1))
	MakeContainer(world, body, bough.FlexConfig{})

	LayoutSystem(world)

	if got := geometry(world, header); got.Width != 200 || got.Height != 30 {
		t.Errorf("header = %+v", got)
	}
	if got, want := geometry(world, body), (bough.Rect{X: 0, Y: 30, Width: 200, Height: 70}); got != want {
		t.Errorf("body = %+v, want %+v", got, want)
	}
	if got, want := geometry(world, left), (bough.Rect{X: 0, Y: 30, Width: 100, Height: 70}); got != want {
		t.Errorf("left = %+v, want %+v", got, want)
	}
	if got, want := geometry(world, right), (bough.Rect{X: 100, Y: 30, Width: 100, Height: 70}); got != want {
		t.Errorf("right = %+v, want %+v", got, want)
	}
}

func TestLayoutSystemPublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	panel := NewContainer(world, bough.Rect{Width: 50, Height: 50}, bough.FlexConfig{})
	NewChild(world, panel, bough.Rect{Width: 10, Height: 10})
	NewChild(world, panel, bough.Rect{Width: 10, Height: 10})
	empty := NewContainer(world, bough.Rect{Width: 5, Height: 5}, bough.FlexConfig{})

	var received []LayoutEvent
	LayoutEventType.Subscribe(world, func(w donburi.World, e LayoutEvent) {
		received = append(received, e)
	})

	LayoutSystem(world)
	// Events are queued until processed.
	LayoutEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	counts := map[donburi.Entity]int{}
	for _, e := range received {
		counts[e.Container] = e.Children
	}
	if counts[panel] != 2 {
		t.Errorf("panel children = %d, want 2", counts[panel])
	}
	if n, ok := counts[empty]; !ok || n != 0 {
		t.Errorf("empty container event = %d, %v", n, ok)
	}
}

func TestNewChildDefaults(t *testing.T) {
	world := donburi.NewWorld()
	panel := NewContainer(world, bough.Rect{}, bough.FlexConfig{})
	c := NewChild(world, panel, bough.Rect{})
	d := FlexChild.Get(world.Entry(c))
	if d.Parent != panel {
		t.Error("Parent should be the panel")
	}
	if d.Shrink != 1 || d.Grow != 0 || d.AlignSelf != bough.AlignSelfAuto {
		t.Errorf("defaults = %+v", *d)
	}
}
