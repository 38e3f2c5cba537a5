package ecs

import (
	"github.com/phanxgames/tandem"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for tandem lifecycle events.
// Subscribe to this in your ECS systems to react to scene loads, unloads and
// the exit button.
var LifecycleEventType = events.NewEventType[tandem.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tandem.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tandem.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
