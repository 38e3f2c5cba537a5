// Package ecs provides ECS adapters for tandem's scene lifecycle events.
//
// The adapter is [NewDonburiSink], which forwards scene load, unload and
// exit events from a [tandem.Manager] into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetEventSink(sink)
//
// Events are queued by Donburi; call events.ProcessAllEvents(world) (or
// LifecycleEventType.ProcessEvents) once per frame to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
