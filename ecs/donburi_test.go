package ecs

import (
	"testing"

	"github.com/phanxgames/canopy"

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

	var received []canopy.ControlEvent
	ControlEventType.Subscribe(world, func(w donburi.World, e canopy.ControlEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(canopy.ControlEvent{
		Type:     canopy.InteractionPointerDown,
		EntityID: 42,
		X:        100,
		Y:        200,
		Button:   canopy.MouseButtonLeft,
	})
	sink.EmitEvent(canopy.ControlEvent{
		Type:     canopy.InteractionText,
		EntityID: 7,
		Rune:     'x',
	})

	// Events are queued until processed.
	ControlEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != canopy.InteractionPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	if e1 := received[1]; e1.Type != canopy.InteractionText || e1.Rune != 'x' {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink canopy.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ControlEventType.Subscribe(world, func(w donburi.World, e canopy.ControlEvent) {
		count1++
	})
	ControlEventType.Subscribe(world, func(w donburi.World, e canopy.ControlEvent) {
		count2++
	})

	sink.EmitEvent(canopy.ControlEvent{Type: canopy.InteractionClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_DocumentClick(t *testing.T) {
	world := donburi.NewWorld()
	doc := canopy.NewDocument(canopy.Rect{Width: 800, Height: 600})
	doc.SetEventSink(NewDonburiSink(world))

	s := doc.AddSurface("main")
	btn := canopy.NewButton("play", "canopy.ok")
	btn.SetRect(10, 10, 100, 30)
	btn.EntityID = 9
	s.Attach(btn)

	var types []canopy.InteractionType
	ControlEventType.Subscribe(world, func(w donburi.World, e canopy.ControlEvent) {
		if e.EntityID != 9 || e.SurfaceName != "main" || e.ControlName != "play" {
			t.Errorf("unexpected event %+v", e)
		}
		types = append(types, e.Type)
	})

	doc.PushEvent(canopy.MousePressed(20, 20, canopy.MouseButtonLeft))
	doc.PushEvent(canopy.MouseReleased(20, 20, canopy.MouseButtonLeft))
	ControlEventType.ProcessEvents(world)

	want := []canopy.InteractionType{
		canopy.InteractionPointerDown,
		canopy.InteractionClick,
		canopy.InteractionPointerUp,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
