package slimefield

import "math"

// AgentKernel implements the per-agent sense→steer→step→deposit→convert
// rule.
type AgentKernel struct {
	Stats []AgentStats // indexed by species
}

// sensorOutcome is either a numeric attraction sum or "saturated"
// (avoidance), so a saturated sensor can dominate steering regardless of
// its numeric value.
type sensorOutcome struct {
	value     float64
	saturated bool
}

// Dispatch runs one tick of AgentKernel over every agent in store, reading
// and writing trail in place. dt is the exact kernel Δt (time_step).
func (k AgentKernel) Dispatch(store *AgentStore, trail *TrailMap, dt float64) {
	S := len(k.Stats)
	dispatch1D(store.Len(), func(i int) {
		a := &store.Agents[i]
		if a.Species < 0 || a.Species >= S {
			return
		}
		k.stepAgent(a, trail, dt, uint32(i))
	})
}

func (k AgentKernel) stepAgent(a *Agent, trail *TrailMap, dt float64, index uint32) {
	stats := k.Stats[a.Species]
	S := len(k.Stats)

	cellIdx := uint32(int(a.Y)*trail.W + int(a.X))
	seed := agentSeed(cellIdx, index)
	r := randFromHash(seed)

	thetaS := stats.SensorAngleSpacing * math.Pi / 180
	left := k.sense(trail, a, stats, thetaS)
	fwd := k.sense(trail, a, stats, 0)
	right := k.sense(trail, a, stats, -thetaS)

	omega := stats.TurnSpeed * math.Pi
	omegaA := stats.TurnSpeedAvoidance * math.Pi
	a.Angle += steerDelta(left, fwd, right, r, omega, omegaA, dt)

	k.walk(a, trail, stats, dt, S)
	k.applyLifetime(a, stats, dt, S)
}

// sense sums the 3x3-neighborhood weighted channel contributions at the
// sensor position offset by angleOffset from the agent's heading.
func (k AgentKernel) sense(trail *TrailMap, a *Agent, stats AgentStats, angleOffset float64) sensorOutcome {
	angle := a.Angle + angleOffset
	cx := a.X + math.Cos(angle)*stats.SensorOffset
	cy := a.Y + math.Sin(angle)*stats.SensorOffset

	cxi, cyi := int(math.Round(cx)), int(math.Round(cy))
	sum := 0.0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cxi+dx, cyi+dy
			if !trail.InBounds(x, y) {
				continue
			}
			p := trail.Pixel(x, y)
			for ch, inter := range stats.Interactions {
				sum += p.GetFrac(ch) * inter.Attraction
			}
		}
	}
	if sum > stats.AvoidanceThreshold {
		return sensorOutcome{saturated: true}
	}
	return sensorOutcome{value: sum}
}

// steerDelta implements the steer table exactly: saturated avoidance
// sensors dominate (one-sided saturation steers away from the saturated
// side, double saturation holds straight, forward-only saturation picks a
// random side), then forward/left/right attraction comparisons.
func steerDelta(left, fwd, right sensorOutcome, r, omega, omegaA, dt float64) float64 {
	switch {
	case left.saturated && right.saturated:
		return 0
	case left.saturated && !right.saturated:
		return -r * omegaA * dt
	case !left.saturated && right.saturated:
		return r * omegaA * dt
	case fwd.saturated:
		return (r - 0.5) * 2 * omegaA * dt
	case fwd.value >= left.value && fwd.value >= right.value:
		return 0
	case left.value > fwd.value && right.value > fwd.value:
		return (r - 0.5) * 2 * omega * dt
	case right.value > left.value:
		return -r * omega * dt
	case left.value > right.value:
		return r * omega * dt
	default:
		return 0
	}
}

// walk advances the agent by velocity*dt along its heading, depositing
// unconditionally at every full unit step and, on the final sub-unit leap,
// only if that leap crossed into a new cell.
func (k AgentKernel) walk(a *Agent, trail *TrailMap, stats AgentStats, dt float64, S int) {
	total := stats.Velocity * dt
	dirX, dirY := math.Cos(a.Angle), math.Sin(a.Angle)

	steps := int(total)
	remainder := total - float64(steps)

	x, y := a.X, a.Y
	prevCellX, prevCellY := int(x), int(y)

	for s := 0; s < steps; s++ {
		x += dirX
		y += dirY
		cellX, cellY := int(x), int(y)
		if !trail.InBounds(cellX, cellY) {
			k.bounceOut(a, trail)
			return
		}
		k.deposit(a, trail, cellX, cellY, stats, S)
		prevCellX, prevCellY = cellX, cellY
	}

	if remainder > 0 {
		fx := x + dirX*remainder
		fy := y + dirY*remainder
		cellX, cellY := int(fx), int(fy)
		if !trail.InBounds(cellX, cellY) {
			k.bounceOut(a, trail)
			return
		}
		if cellX != prevCellX || cellY != prevCellY {
			k.deposit(a, trail, cellX, cellY, stats, S)
		}
		x, y = fx, fy
	}

	a.X, a.Y = x, y
}

// bounceOut clamps the agent back into bounds and reassigns a fresh random
// heading, per the "step aborts on out-of-bounds" rule.
func (k AgentKernel) bounceOut(a *Agent, trail *TrailMap) {
	const eps = 0.01
	a.X = clamp(a.X, 0, float64(trail.W)-eps)
	a.Y = clamp(a.Y, 0, float64(trail.H)-eps)
	a.Angle = Range{0, 2 * math.Pi}.Random()
}

// deposit applies the per-channel conversion check and additive write for
// one visited cell.
func (k AgentKernel) deposit(a *Agent, trail *TrailMap, x, y int, stats AgentStats, S int) {
	p := trail.Pixel(x, y)
	for ch, inter := range stats.Interactions {
		v := p.GetFrac(ch)
		if inter.ConversionEnabled && v > inter.ConversionThreshold && inter.ConversionTarget < S {
			a.Species = inter.ConversionTarget
			a.Countdown = k.Stats[inter.ConversionTarget].Timeout
		}
		p.SetFrac(ch, math.Min(v+inter.Addition, 1.0))
	}
}

// applyLifetime decrements countdown and converts the agent on expiry,
// on expiry.
func (k AgentKernel) applyLifetime(a *Agent, stats AgentStats, dt float64, S int) {
	if !stats.HasLifetime() {
		return
	}
	a.Countdown -= dt
	if a.Countdown <= 0 && stats.TimeoutConversion < S {
		a.Species = stats.TimeoutConversion
		a.Countdown = k.Stats[stats.TimeoutConversion].Timeout
	}
}
