package ecs

import (
	"testing"

	"github.com/easelgfx/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []easel.SurfaceEvent
	SurfaceEventType.Subscribe(world, func(w donburi.World, e easel.SurfaceEvent) {
		received = append(received, e)
	})

	store.EmitEvent(easel.SurfaceEvent{
		Kind:     easel.EventPointerDown,
		Point:    easel.Point{X: 100, Y: 200},
		Button:   easel.MouseButtonLeft,
		Changed:  true,
		Controls: 3,
	})
	store.EmitEvent(easel.SurfaceEvent{
		Kind: easel.EventKeyDown,
		Key:  65,
	})

	// Events are queued — process them.
	SurfaceEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != easel.EventPointerDown || !e0.Changed || e0.Controls != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Point.X != 100 || e0.Point.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.Point.X, e0.Point.Y)
	}

	e1 := received[1]
	if e1.Kind != easel.EventKeyDown || e1.Key != 65 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_DrivenBySurface(t *testing.T) {
	world := donburi.NewWorld()
	surface := easel.NewSurface(800, 600)
	surface.SetEventStore(NewDonburiStore(world))

	var kinds []easel.EventKind
	SurfaceEventType.Subscribe(world, func(w donburi.World, e easel.SurfaceEvent) {
		kinds = append(kinds, e.Kind)
	})

	surface.PointerDown(easel.Point{X: 10, Y: 10}, easel.MouseButtonLeft, true)
	surface.PointerUp(easel.Point{X: 10, Y: 10}, easel.MouseButtonLeft, true)
	surface.ContextMenuRequest(easel.Point{X: 50, Y: 50}, true)
	SurfaceEventType.ProcessEvents(world)

	want := []easel.EventKind{easel.EventPointerDown, easel.EventPointerUp, easel.EventContextMenu}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d kind = %d, want %d", i, kinds[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	SurfaceEventType.Subscribe(world, func(w donburi.World, e easel.SurfaceEvent) {
		count1++
	})
	SurfaceEventType.Subscribe(world, func(w donburi.World, e easel.SurfaceEvent) {
		count2++
	})

	store.EmitEvent(easel.SurfaceEvent{Kind: easel.EventPointerMove})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
