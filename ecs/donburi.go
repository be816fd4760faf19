package ecs

import (
	"github.com/easelgfx/easel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SurfaceEventType is the Donburi event type for easel surface events.
// Subscribe to this in your ECS systems to observe dispatched input and
// collection changes.
var SurfaceEventType = events.NewEventType[easel.SurfaceEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Surface
// events are published to SurfaceEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) easel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event easel.SurfaceEvent) {
	SurfaceEventType.Publish(s.world, event)
}
