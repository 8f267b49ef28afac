// Package slimefield simulates multi-species Physarum-style slime-mold
// agents depositing and following chemical trails on a 2-D map, rendered
// with [Ebitengine].
//
// A [FramePipeline] owns the trail map, agent store, and map view for the
// life of the process and sequences four kernels each tick: agents sense
// the trail and move ([AgentKernel]), the trail diffuses and evaporates
// ([DiffuseKernel]), the pointer paints or erases it ([BrushKernel]), and
// the result is composited to the screen ([RenderKernel]).
//
// # Quick start
//
//	cfg := slimefield.DefaultConfigState(512, 512)
//	pipeline, err := slimefield.NewFramePipeline(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(slimefield.Run(pipeline, slimefield.RunConfig{
//		Title: "slimefield", Width: 1024, Height: 1024, ShowFPS: true,
//	}))
//
// For full control, implement [ebiten.Game] yourself and call
// [FramePipeline.Update] and [FramePipeline.Draw] directly.
//
// # Configuration
//
// [ConfigState] is the single mutable record of species, channels, spawn
// rules, and global parameters (map size, time step, brush size, click
// mode). It is meant to be mutated by an external configuration UI and
// polled once per frame via [ConfigState.DetectChanges]; [ConfigState.
// MarshalPreset] and [ConfigState.UnmarshalPreset] round-trip it to JSON.
//
// # ECS integration
//
// slimefield/ecs bridges brush-stroke and respawn events into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package slimefield
