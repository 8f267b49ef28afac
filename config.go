package slimefield

import "encoding/json"

// GlobalConfig holds simulation-wide parameters, the globals half of
// ConfigState's aggregate.
type GlobalConfig struct {
	MapWidth, MapHeight       int
	TimeStep                  float64 // exact kernel Δt; see DESIGN.md open-question resolution
	MaxFrameRate              float64 // Hz; pacer cap
	SmoothenAfterMaxFrameRate bool
	ComputeStepsPerRender     int
	BackgroundColor           Color
	ClickMode                 ClickMode
	BrushSize                 float64
}

// ConfigState is the single mutable record of simulation parameters. An
// external configuration UI mutates it; FramePipeline reads it.
type ConfigState struct {
	Globals  GlobalConfig
	Species  []AgentStats
	Channels []TrailStats
	Spawns   []SpeciesSpawn

	// UI-only flags, mutated by an external configuration UI.
	ShowMenu            bool
	Playing             bool
	Respawn             bool
	ResetTrails         bool
	Quit                bool
	ScaleFactor         float64
	ShaderConfigChanged bool

	prev snapshot
}

// snapshot is a shallow copy of the fields that trigger
// ShaderConfigChanged when they differ from the previous frame.
type snapshot struct {
	globals  GlobalConfig
	species  []AgentStats
	channels []TrailStats
}

// DefaultConfigState returns a minimal single-species, single-channel
// configuration suitable as a starting preset.
func DefaultConfigState(mapW, mapH int) *ConfigState {
	c := &ConfigState{
		Globals: GlobalConfig{
			MapWidth:              mapW,
			MapHeight:             mapH,
			TimeStep:              1.0 / 60.0,
			MaxFrameRate:          60,
			ComputeStepsPerRender: 1,
			BackgroundColor:       Color{A: 1},
			ClickMode:             ClickMode{Kind: ClickPaintTrail, Channel: 0},
			BrushSize:             6,
		},
		Species: []AgentStats{{
			Velocity:           30,
			TurnSpeed:          0.3,
			TurnSpeedAvoidance: 0.5,
			AvoidanceThreshold: 4,
			SensorAngleSpacing: 30,
			SensorOffset:       9,
			Interactions:       []TrailInteraction{{Attraction: 1, Addition: 1}},
		}},
		Channels: []TrailStats{{
			EvaporationSpeed: 10,
			DiffusionSpeed:   50,
			Color:            Color{R: 1, G: 1, B: 1, A: 1},
			Operator:         ColorAdd,
		}},
		Spawns: []SpeciesSpawn{{
			Species: 0,
			Mode:    SpawnMode{Kind: SpawnEvenlyDistributed},
			Count:   1000,
		}},
		Playing: true,
	}
	c.snapshotPrev()
	return c
}

// DetectChanges compares the current globals/species/channels against the
// previous frame's snapshot and sets ShaderConfigChanged for exactly one
// frame when they differ.
func (c *ConfigState) DetectChanges() {
	changed := c.Globals != c.prev.globals ||
		!equalAgentStats(c.Species, c.prev.species) ||
		!equalTrailStats(c.Channels, c.prev.channels)
	c.ShaderConfigChanged = changed
	c.snapshotPrev()
}

func (c *ConfigState) snapshotPrev() {
	c.prev.globals = c.Globals
	c.prev.species = append([]AgentStats(nil), c.Species...)
	c.prev.channels = append([]TrailStats(nil), c.Channels...)
}

func equalAgentStats(a, b []AgentStats) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Velocity != b[i].Velocity || a[i].TurnSpeed != b[i].TurnSpeed ||
			a[i].TurnSpeedAvoidance != b[i].TurnSpeedAvoidance ||
			a[i].AvoidanceThreshold != b[i].AvoidanceThreshold ||
			a[i].SensorAngleSpacing != b[i].SensorAngleSpacing ||
			a[i].SensorOffset != b[i].SensorOffset ||
			a[i].Timeout != b[i].Timeout ||
			a[i].TimeoutConversion != b[i].TimeoutConversion ||
			len(a[i].Interactions) != len(b[i].Interactions) {
			return false
		}
		for j := range a[i].Interactions {
			if a[i].Interactions[j] != b[i].Interactions[j] {
				return false
			}
		}
	}
	return true
}

func equalTrailStats(a, b []TrailStats) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// presetJSON mirrors the ConfigState tree for the optional configuration
// file; color is encoded as a 4-element array.
type presetJSON struct {
	Globals  GlobalConfig   `json:"globals"`
	Species  []AgentStats   `json:"species"`
	Channels []channelJSON  `json:"channels"`
	Spawns   []SpeciesSpawn `json:"spawns"`
}

type channelJSON struct {
	EvaporationSpeed float64    `json:"evaporation_speed"`
	DiffusionSpeed   float64    `json:"diffusion_speed"`
	Color            [4]float64 `json:"color"`
	Operator         uint8      `json:"operator"`
}

// MarshalPreset serializes the ConfigState tree to JSON. No file is
// written here; persistence to disk remains a host-shell concern.
func (c *ConfigState) MarshalPreset() ([]byte, error) {
	p := presetJSON{Globals: c.Globals, Species: c.Species, Spawns: c.Spawns}
	for _, ch := range c.Channels {
		p.Channels = append(p.Channels, channelJSON{
			EvaporationSpeed: ch.EvaporationSpeed,
			DiffusionSpeed:   ch.DiffusionSpeed,
			Color:            [4]float64{ch.Color.R, ch.Color.G, ch.Color.B, ch.Color.A},
			Operator:         uint8(ch.Operator),
		})
	}
	return json.Marshal(p)
}

// UnmarshalPreset replaces the ConfigState tree from JSON produced by
// MarshalPreset and marks the config changed for the next frame.
func (c *ConfigState) UnmarshalPreset(data []byte) error {
	var p presetJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	c.Globals = p.Globals
	c.Species = p.Species
	c.Spawns = p.Spawns
	c.Channels = c.Channels[:0]
	for _, ch := range p.Channels {
		c.Channels = append(c.Channels, TrailStats{
			EvaporationSpeed: ch.EvaporationSpeed,
			DiffusionSpeed:   ch.DiffusionSpeed,
			Color:            Color{R: ch.Color[0], G: ch.Color[1], B: ch.Color[2], A: ch.Color[3]},
			Operator:         ColorOperator(ch.Operator),
		})
	}
	c.ShaderConfigChanged = true
	c.Respawn = true
	return nil
}
