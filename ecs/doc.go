// Package ecs provides an ECS adapter for slimefield's pipeline events.
//
// The primary adapter is [NewDonburiSink], which bridges brush-stroke,
// respawn, and reset-trails events into a [Donburi] world as typed events.
// Subscribe to [SimEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	pipeline.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
