// Package ecs provides ECS adapters for slimefield.
package ecs

import (
	"github.com/phanxgames/slimefield"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SimEventType is the Donburi event type for slimefield pipeline events.
// Subscribe to this in your ECS systems to receive brush-stroke, respawn,
// and reset-trails events.
var SimEventType = events.NewEventType[slimefield.SimEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Pipeline events are published to SimEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) slimefield.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event slimefield.SimEvent) {
	SimEventType.Publish(s.world, event)
}
