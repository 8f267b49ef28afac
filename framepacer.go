package slimefield

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// framePacer enforces the max_frame_rate soft cap and, when requested,
// eases the reported Δt up to time_step when smoothing starts or the
// configured time_step changes, instead of snapping straight to it.
type framePacer struct {
	lastFrame time.Time
	firstTick bool

	smooth       bool
	smoothTween  *gween.Tween
	smoothActive bool
	smoothTarget float64
}

func newFramePacer() *framePacer {
	return &framePacer{firstTick: true}
}

// Tick blocks until max_frame_rate's minimum frame interval has elapsed
// (with a small jitter to avoid lockstep beats across multiple pacers),
// then returns the Δt to hand to the kernels this frame: exactly
// time_step, except Δt = 0 on the very first frame and, when
// smoothenAfterMaxFrameRate is set, the eased value from smoothedStep.
func (p *framePacer) Tick(timeStep float64, maxFrameRate float64, smoothenAfterMaxFrameRate bool) float64 {
	now := time.Now()
	if p.firstTick {
		p.firstTick = false
		p.lastFrame = now
		return 0
	}

	if maxFrameRate > 0 {
		minInterval := time.Duration(float64(time.Second) / maxFrameRate)
		elapsed := now.Sub(p.lastFrame)
		if elapsed < minInterval {
			jitter := 1 + (rand.Float64()-0.5)*0.1 // +-5%
			sleepFor := time.Duration(float64(minInterval-elapsed) * jitter)
			if sleepFor > 0 {
				time.Sleep(sleepFor)
			}
		}
	}
	p.lastFrame = time.Now()

	if !smoothenAfterMaxFrameRate {
		return timeStep
	}
	return p.smoothedStep(timeStep)
}

// smoothedStep eases the handed-out Δt toward timeStep using a short
// linear tween, rather than snapping straight to it, when the configured
// target changes.
func (p *framePacer) smoothedStep(timeStep float64) float64 {
	if p.smoothTween == nil || timeStep != p.smoothTarget {
		p.smoothTween = gween.New(float32(timeStep)*0.5, float32(timeStep), 0.25, ease.Linear)
		p.smoothTarget = timeStep
		p.smoothActive = true
	}
	if !p.smoothActive {
		return timeStep
	}
	val, done := p.smoothTween.Update(float32(timeStep))
	if done {
		p.smoothActive = false
		return timeStep
	}
	return float64(val)
}
