// Package ecs provides ECS adapters for easel's surface event stream.
//
// The primary adapter is [NewDonburiStore], which bridges easel surface
// events (dispatched input, context-menu requests, collection changes) into
// a [Donburi] world as typed events. Subscribe to [SurfaceEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	surface.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
