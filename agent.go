package slimefield

import "math"

// Agent is one oriented point mutated per tick by AgentKernel.
type Agent struct {
	X, Y      float64
	Angle     float64
	Species   int
	Countdown float64 // seconds remaining before a lifetime conversion
}

// TrailInteraction describes how one species reacts to one channel: how
// strongly it senses it, how much it deposits into it, and whether
// crossing a threshold of it converts the agent to another species.
type TrailInteraction struct {
	Attraction          float64
	Addition            float64
	ConversionEnabled   bool
	ConversionThreshold float64
	ConversionTarget    int
}

// AgentStats holds the per-species simulation parameters.
type AgentStats struct {
	Velocity           float64 // px/s
	TurnSpeed          float64 // rev/s
	TurnSpeedAvoidance float64 // rev/s
	AvoidanceThreshold float64
	SensorAngleSpacing float64 // degrees
	SensorOffset       float64 // pixels
	Timeout            float64 // seconds; 0 disables lifetime
	TimeoutConversion  int     // species index to morph into; >= S disables
	Interactions       []TrailInteraction
}

// HasLifetime reports whether this species' agents expire and convert.
func (s AgentStats) HasLifetime() bool { return s.Timeout > 0.01 }

// SpawnModeKind tags the variant of SpawnMode.
type SpawnModeKind uint8

const (
	SpawnEvenlyDistributed SpawnModeKind = iota
	SpawnCenterFacingOutward
	SpawnPointFacingOutward
	SpawnCircleFacingInward
	SpawnCircumferenceFacingInward
	SpawnCircumferenceFacingOutward
	SpawnCircumferenceFacingRandom
	SpawnCircumferenceFacingClockwise
	SpawnBoxFacingRandom
)

// SpawnMode is a tagged union describing how a species' initial agents are
// placed and oriented.
type SpawnMode struct {
	Kind SpawnModeKind
	// Point / Box origin, meaningful for PointFacingOutward and
	// BoxFacingRandom.
	X, Y float64
	// W, H are the box dimensions, meaningful for BoxFacingRandom.
	W, H float64
	// D is the circle/disk radius or distance, meaningful for every
	// Circle*/Circumference* variant.
	D float64
}

// spawnAgent produces one agent of the given species at a position and
// angle determined by mode.
func spawnAgent(mode SpawnMode, species int, mapW, mapH float64) Agent {
	cx, cy := mapW/2, mapH/2
	uniformAngle := Range{0, 2 * math.Pi}.Random()

	switch mode.Kind {
	case SpawnCenterFacingOutward:
		return Agent{X: cx, Y: cy, Angle: uniformAngle, Species: species}

	case SpawnPointFacingOutward:
		return Agent{X: mode.X, Y: mode.Y, Angle: uniformAngle, Species: species}

	case SpawnCircleFacingInward:
		x, y := randomPointInDisk(cx, cy, mode.D)
		return Agent{X: x, Y: y, Angle: outwardAngle(cx, cy, x, y) + math.Pi, Species: species}

	case SpawnCircumferenceFacingInward:
		x, y := randomPointOnCircle(cx, cy, mode.D)
		return Agent{X: x, Y: y, Angle: outwardAngle(cx, cy, x, y) + math.Pi, Species: species}

	case SpawnCircumferenceFacingOutward:
		x, y := randomPointOnCircle(cx, cy, mode.D)
		return Agent{X: x, Y: y, Angle: outwardAngle(cx, cy, x, y), Species: species}

	case SpawnCircumferenceFacingRandom:
		x, y := randomPointOnCircle(cx, cy, mode.D)
		return Agent{X: x, Y: y, Angle: uniformAngle, Species: species}

	case SpawnCircumferenceFacingClockwise:
		x, y := randomPointOnCircle(cx, cy, mode.D)
		return Agent{X: x, Y: y, Angle: outwardAngle(cx, cy, x, y) + math.Pi/2, Species: species}

	case SpawnBoxFacingRandom:
		x := Range{mode.X, mode.X + mode.W}.Random()
		y := Range{mode.Y, mode.Y + mode.H}.Random()
		return Agent{X: x, Y: y, Angle: uniformAngle, Species: species}

	default: // SpawnEvenlyDistributed
		x := Range{0, mapW}.Random()
		y := Range{0, mapH}.Random()
		return Agent{X: x, Y: y, Angle: uniformAngle, Species: species}
	}
}

func outwardAngle(cx, cy, x, y float64) float64 {
	return math.Atan2(y-cy, x-cx)
}

func randomPointOnCircle(cx, cy, radius float64) (float64, float64) {
	theta := Range{0, 2 * math.Pi}.Random()
	return cx + radius*math.Cos(theta), cy + radius*math.Sin(theta)
}

func randomPointInDisk(cx, cy, radius float64) (float64, float64) {
	theta := Range{0, 2 * math.Pi}.Random()
	r := radius * math.Sqrt(Range{0, 1}.Random())
	return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
}

// SpeciesSpawn pairs a SpawnMode and count for one species, the unit the
// AgentStore is rebuilt from.
type SpeciesSpawn struct {
	Species int
	Mode    SpawnMode
	Count   int
}

// AgentStore is the flat, preallocated sequence of agents mutated in place
// by AgentKernel each tick.
type AgentStore struct {
	Agents []Agent
}

// NewAgentStore builds an AgentStore from the concatenation of each
// species' spawn spec, in order.
func NewAgentStore(specs []SpeciesSpawn, mapW, mapH float64) *AgentStore {
	s := &AgentStore{}
	s.Respawn(specs, mapW, mapH)
	return s
}

// Respawn rebuilds the whole store in place, reusing the backing array
// when the total agent count is unchanged instead of reallocating.
func (s *AgentStore) Respawn(specs []SpeciesSpawn, mapW, mapH float64) {
	total := 0
	for _, sp := range specs {
		total += sp.Count
	}
	if cap(s.Agents) >= total {
		s.Agents = s.Agents[:total]
	} else {
		s.Agents = make([]Agent, total)
	}
	i := 0
	for _, sp := range specs {
		for n := 0; n < sp.Count; n++ {
			s.Agents[i] = spawnAgent(sp.Mode, sp.Species, mapW, mapH)
			i++
		}
	}
}

// Len returns the number of live agents.
func (s *AgentStore) Len() int { return len(s.Agents) }
