package slimefield

// BrushKernel implements the mouse-driven paint/erase pass. ResetTrail
// writes 0.0 (see DESIGN.md for why).
type BrushKernel struct {
	Channels int
}

// Dispatch applies mode to every cell within brushSize of (mouseX, mouseY)
// when mouseDown is true. No-op when mouseDown is false or mode is
// Disabled/ShowMenu.
func (k BrushKernel) Dispatch(trail *TrailMap, mouseDown bool, mouseX, mouseY, brushSize float64, mode ClickMode) {
	if !mouseDown {
		return
	}
	switch mode.Kind {
	case ClickPaintTrail, ClickResetTrail, ClickResetAllTrails:
	default:
		return
	}

	r2 := brushSize * brushSize
	dispatch2D(trail.W, trail.H, func(x, y int) {
		dx := float64(x) - mouseX
		dy := float64(y) - mouseY
		if dx*dx+dy*dy > r2 {
			return
		}
		k.apply(trail.Pixel(x, y), mode)
	})
}

func (k BrushKernel) apply(p PixelView, mode ClickMode) {
	switch mode.Kind {
	case ClickPaintTrail:
		p.SetFrac(mode.Channel, 1.0)
	case ClickResetTrail:
		p.SetFrac(mode.Channel, 0.0)
	case ClickResetAllTrails:
		for ch := 0; ch < k.Channels; ch++ {
			p.SetFrac(ch, 0.0)
		}
	}
}
