// Package ecs provides ECS adapters for canopy's control interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges canopy control
// interactions (pointer, click, focus, text) into a [Donburi] world as typed
// events. Subscribe to [ControlEventType] in your ECS systems to receive them.
// Only controls with a non-zero EntityID are reported.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	doc.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
