package ecs

import (
	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControlEventType is the Donburi event type for canopy control interactions.
// Subscribe to this in your ECS systems to receive pointer, click, focus and
// text events.
var ControlEventType = events.NewEventType[canopy.ControlEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to ControlEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) canopy.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event canopy.ControlEvent) {
	ControlEventType.Publish(s.world, event)
}
