package slimefield

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerLimit bounds the number of goroutines any single kernel dispatch
// fans out to, the CPU analogue of a GPU's bounded set of compute units.
func workerLimit() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// dispatch1D fans fn out across [0, count) indices using a bounded
// goroutine pool, the idiomatic-Go substitute for a 1-D compute dispatch
// over flat work-groups of 256 (AgentKernel). Blocks until every index has
// been processed, playing the role of a GPU dispatch barrier between
// passes (errgroup.Group is the corpus's own fan-out idiom rather than a
// hand-rolled sync.WaitGroup + channel).
func dispatch1D(count int, fn func(i int)) {
	if count == 0 {
		return
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerLimit())
	chunk := (count + workerLimit() - 1) / workerLimit()
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < count; start += chunk {
		end := start + chunk
		if end > count {
			end = count
		}
		s, e := start, end
		g.Go(func() error {
			for i := s; i < e; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// dispatch2D fans fn out across an 8x8-tiled W x H grid (DiffuseKernel and
// BrushKernel's dispatch shape), row-major tile order.
func dispatch2D(w, h int, fn func(x, y int)) {
	const tile = 8
	tilesX := (w + tile - 1) / tile
	tilesY := (h + tile - 1) / tile
	dispatch1D(tilesX*tilesY, func(t int) {
		tx := t % tilesX
		ty := t / tilesX
		x0, y0 := tx*tile, ty*tile
		x1, y1 := x0+tile, y0+tile
		if x1 > w {
			x1 = w
		}
		if y1 > h {
			y1 = h
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				fn(x, y)
			}
		}
	})
}
