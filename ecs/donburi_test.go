package ecs

import (
	"github.com/phanxgames/slimefield"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []slimefield.SimEvent
	SimEventType.Subscribe(world, func(w donburi.World, e slimefield.SimEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(slimefield.SimEvent{
		Type:   slimefield.EventBrushStroke,
		MouseX: 100,
		MouseY: 200,
	})

	sink.EmitEvent(slimefield.SimEvent{Type: slimefield.EventRespawn})

	// Events are queued — process them.
	SimEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != slimefield.EventBrushStroke || e0.MouseX != 100 || e0.MouseY != 200 {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != slimefield.EventRespawn {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink slimefield.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	SimEventType.Subscribe(world, func(w donburi.World, e slimefield.SimEvent) {
		count1++
	})
	SimEventType.Subscribe(world, func(w donburi.World, e slimefield.SimEvent) {
		count2++
	})

	sink.EmitEvent(slimefield.SimEvent{Type: slimefield.EventResetTrails})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
