package slimefield

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink receives notifications of brush strokes and respawns; see
// ecs/donburi.go for a Donburi-backed implementation. A nil sink means
// events are simply dropped.
type EventSink interface {
	EmitEvent(event SimEvent)
}

// SimEventType enumerates the kinds of SimEvent published by FramePipeline.
type SimEventType uint8

const (
	EventBrushStroke SimEventType = iota
	EventRespawn
	EventResetTrails
)

// SimEvent carries pipeline-level notifications for the optional ECS
// bridge, a typed payload struct published through an EventSink interface.
type SimEvent struct {
	Type      SimEventType
	MouseX    float64
	MouseY    float64
	ClickMode ClickMode
}

// FramePipeline sequences ConfigState -> Agent -> Diffuse -> Brush ->
// Render each frame, owning every buffer for the process lifetime and
// driving an ebiten.Game through its Update/Draw split.
type FramePipeline struct {
	Config *ConfigState

	Trail *TrailMap
	Store *AgentStore
	View  *MapView

	agentKernel   AgentKernel
	diffuseKernel DiffuseKernel
	brushKernel   BrushKernel
	renderKernel  *RenderKernel
	trailImage    *ebiten.Image

	pacer *framePacer
	time  float64

	mouseDown              bool
	mouseX, mouseY         float64
	lastMouseX, lastMouseY float64

	sink EventSink
}

// NewFramePipeline allocates the trail map, agent store, and render
// shader from cfg; these long-lived buffers are owned by the
// FramePipeline for the lifetime of the process.
func NewFramePipeline(cfg *ConfigState) (*FramePipeline, error) {
	p := &FramePipeline{
		Config: cfg,
		Trail:  NewTrailMap(cfg.Globals.MapWidth, cfg.Globals.MapHeight, len(cfg.Channels)),
		Store:  NewAgentStore(cfg.Spawns, float64(cfg.Globals.MapWidth), float64(cfg.Globals.MapHeight)),
		View:   NewMapView(cfg.Globals.MapWidth, cfg.Globals.MapHeight, cfg.Globals.MapWidth, cfg.Globals.MapHeight),
		pacer:  newFramePacer(),
	}
	p.rebuildKernels()
	renderKernel, err := NewRenderKernel(cfg.Channels)
	if err != nil {
		return nil, err
	}
	p.renderKernel = renderKernel
	p.trailImage = ebiten.NewImage(cfg.Globals.MapWidth, cfg.Globals.MapHeight)
	return p, nil
}

// SetEventSink installs the optional ECS bridge.
func (p *FramePipeline) SetEventSink(sink EventSink) { p.sink = sink }

func (p *FramePipeline) rebuildKernels() {
	p.agentKernel = AgentKernel{Stats: p.Config.Species}
	p.diffuseKernel = DiffuseKernel{Stats: p.Config.Channels}
	p.brushKernel = BrushKernel{Channels: len(p.Config.Channels)}
	if p.renderKernel != nil {
		p.renderKernel.Stats = p.Config.Channels
	}
}

// Resize reallocates the trail map and agent store for a new map size, the
// the recovery path when a configuration change resizes the map.
func (p *FramePipeline) Resize(mapW, mapH int) {
	p.Config.Globals.MapWidth, p.Config.Globals.MapHeight = mapW, mapH
	p.Trail = NewTrailMap(mapW, mapH, len(p.Config.Channels))
	p.Store.Respawn(p.Config.Spawns, float64(mapW), float64(mapH))
	p.View.MapW, p.View.MapH = mapW, mapH
	p.View.MarkDirty()
	p.trailImage = ebiten.NewImage(mapW, mapH)
}

// Update runs the FramePipeline state machine for one rendered frame:
// a Resize when the configured map size differs from the trail map,
// pending resets/respawns, a config-change check that rebuilds kernels
// when species/channel stats change, then one or more rounds of
// Agent->Diffuse->Brush. Render happens separately in Draw, matching
// ebiten.Game's Update/Draw split.
func (p *FramePipeline) Update() error {
	cfg := p.Config
	if cfg.Quit {
		return ebiten.Termination
	}

	dt := p.pacer.Tick(cfg.Globals.TimeStep, cfg.Globals.MaxFrameRate, cfg.Globals.SmoothenAfterMaxFrameRate)
	p.time += dt

	if cfg.Globals.MapWidth != p.Trail.W || cfg.Globals.MapHeight != p.Trail.H {
		p.Resize(cfg.Globals.MapWidth, cfg.Globals.MapHeight)
	}
	if cfg.ResetTrails {
		p.Trail.Reset()
		cfg.ResetTrails = false
		p.emit(SimEvent{Type: EventResetTrails})
	}
	if cfg.Respawn {
		p.Store.Respawn(cfg.Spawns, float64(cfg.Globals.MapWidth), float64(cfg.Globals.MapHeight))
		p.Trail.Reset()
		cfg.Respawn = false
		p.emit(SimEvent{Type: EventRespawn})
	}

	cfg.DetectChanges()
	if cfg.ShaderConfigChanged {
		p.rebuildKernels()
	}

	if !cfg.Playing {
		return nil
	}

	steps := cfg.Globals.ComputeStepsPerRender
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		p.agentKernel.Dispatch(p.Store, p.Trail, dt)
		p.diffuseKernel.Dispatch(p.Trail, dt)
		p.applyBrush(dt)
	}
	return nil
}

func (p *FramePipeline) applyBrush(dt float64) {
	cfg := p.Config
	mx, my := p.View.WindowToMap(p.mouseX, p.mouseY)
	p.brushKernel.Dispatch(p.Trail, p.mouseDown, mx, my, cfg.Globals.BrushSize, cfg.Globals.ClickMode)
	if p.mouseDown {
		p.emit(SimEvent{Type: EventBrushStroke, MouseX: mx, MouseY: my, ClickMode: cfg.Globals.ClickMode})
	}
	p.lastMouseX, p.lastMouseY = p.mouseX, p.mouseY
}

func (p *FramePipeline) emit(e SimEvent) {
	if p.sink != nil {
		p.sink.EmitEvent(e)
	}
}

// Draw uploads the trail map and composites it via RenderKernel onto
// screen.
func (p *FramePipeline) Draw(screen *ebiten.Image) {
	p.Trail.UploadTo(p.trailImage)
	p.renderKernel.Draw(screen, p.trailImage, p.Config.Globals.BackgroundColor)
}

// SetMouse updates the current pointer state from window-space
// coordinates, called by the host shell's input routing (input.go).
func (p *FramePipeline) SetMouse(down bool, windowX, windowY float64) {
	p.mouseDown = down
	p.mouseX, p.mouseY = windowX, windowY
}

// FrameConstants builds the push-constant record for the current frame,
// bit-exact with the device layout (kept for parity with a future GPU
// backend; the record's byte layout is exercised by wire_test.go).
func (p *FramePipeline) FrameConstants(dt float64, windowW, windowH int) FrameConstants {
	return FrameConstants{
		ScreenSize: [2]uint32{uint32(windowW), uint32(windowH)},
		MapSize:    [2]uint32{uint32(p.Trail.W), uint32(p.Trail.H)},
		Time:       float32(p.time),
		TimeStep:   float32(dt),
		BGColor:    p.Config.Globals.BackgroundColor.Array(),
	}
}

// RunConfig holds optional window configuration for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
}

// Run is a convenience entry point that creates an Ebitengine game loop
// around the given FramePipeline.
func Run(p *FramePipeline, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = 640
	}
	if h == 0 {
		h = 480
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g := &pipelineShell{pipeline: p, w: w, h: h, showFPS: cfg.ShowFPS}
	return ebiten.RunGame(g)
}

// pipelineShell implements ebiten.Game by delegating to a FramePipeline.
type pipelineShell struct {
	pipeline *FramePipeline
	w, h     int
	showFPS  bool
	fpsAccum time.Duration
}

func (g *pipelineShell) Update() error {
	g.pipeline.pollInput(g.w, g.h)
	return g.pipeline.Update()
}

func (g *pipelineShell) Draw(screen *ebiten.Image) {
	g.pipeline.Draw(screen)
	if g.showFPS {
		drawFPSOverlay(screen)
	}
}

func (g *pipelineShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.pipeline.View.WindowW != outsideWidth || g.pipeline.View.WindowH != outsideHeight {
		g.pipeline.View.Resize(outsideWidth, outsideHeight)
	}
	return g.w, g.h
}
