package slimefield

// DiffuseKernel implements the per-cell 3x3 mean blur plus evaporation.
type DiffuseKernel struct {
	Stats []TrailStats // indexed by channel
}

// Dispatch reads from a pre-taken snapshot of trail (avoiding the RAW
// hazard between neighboring cells) and writes the blurred, evaporated
// result back into trail.
func (k DiffuseKernel) Dispatch(trail *TrailMap, dt float64) {
	snapshot := trail.Snapshot()
	dispatch2D(trail.W, trail.H, func(x, y int) {
		srcView := trail.pixelFrom(snapshot, x, y)
		dstView := trail.Pixel(x, y)
		for ch, stats := range k.Stats {
			vCurr := srcView.GetFrac(ch)
			vBlur := k.blur3x3(snapshot, trail, x, y, ch)
			t := (stats.DiffusionSpeed / 100) * dt
			if t > 1 {
				t = 1
			} else if t < 0 {
				t = 0
			}
			vDiff := lerp(vCurr, vBlur, t)
			vOut := vDiff - (stats.EvaporationSpeed/100)*dt
			if vOut < 0 {
				vOut = 0
			}
			dstView.SetFrac(ch, vOut)
		}
	})
}

// blur3x3 returns the mean of channel ch over the 3x3 neighborhood of
// (x, y) in snapshot, treating missing (out-of-bounds) neighbors as 0.
func (k DiffuseKernel) blur3x3(snapshot []uint32, trail *TrailMap, x, y, ch int) float64 {
	sum := 0.0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !trail.InBounds(nx, ny) {
				continue
			}
			sum += trail.pixelFrom(snapshot, nx, ny).GetFrac(ch)
		}
	}
	return sum / 9.0
}
