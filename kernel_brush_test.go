package slimefield

import "testing"

// S4 / Property 7: brush action paints within radius and leaves cells
// outside the radius untouched.
func TestBrushKernelS4(t *testing.T) {
	trail := NewTrailMap(32, 32, 4)
	kernel := BrushKernel{Channels: 4}

	kernel.Dispatch(trail, true, 10, 10, 3, ClickMode{Kind: ClickPaintTrail, Channel: 2})

	if got := trail.Pixel(11, 11).GetFrac(2); got < 0.999 {
		t.Errorf("(11,11) channel 2 = %v, want 1.0", got)
	}
	if got := trail.Pixel(15, 15).GetFrac(2); got != 0 {
		t.Errorf("(15,15) channel 2 = %v, want 0 (outside brush radius)", got)
	}
}

func TestBrushKernelResetTrailWritesZero(t *testing.T) {
	trail := NewTrailMap(16, 16, 1)
	trail.Pixel(5, 5).SetFrac(0, 1.0)
	kernel := BrushKernel{Channels: 1}

	kernel.Dispatch(trail, true, 5, 5, 2, ClickMode{Kind: ClickResetTrail, Channel: 0})

	if got := trail.Pixel(5, 5).GetFrac(0); got != 0 {
		t.Errorf("ResetTrail should write 0.0 (not the source's 1.0), got %v", got)
	}
}

func TestBrushKernelResetAllTrails(t *testing.T) {
	trail := NewTrailMap(8, 8, 3)
	for ch := 0; ch < 3; ch++ {
		trail.Pixel(4, 4).SetFrac(ch, 1.0)
	}
	kernel := BrushKernel{Channels: 3}

	kernel.Dispatch(trail, true, 4, 4, 5, ClickMode{Kind: ClickResetAllTrails})

	for ch := 0; ch < 3; ch++ {
		if got := trail.Pixel(4, 4).GetFrac(ch); got != 0 {
			t.Errorf("channel %d = %v after ResetAllTrails, want 0", ch, got)
		}
	}
}

func TestBrushKernelNoOpWhenMouseUp(t *testing.T) {
	trail := NewTrailMap(8, 8, 1)
	kernel := BrushKernel{Channels: 1}
	kernel.Dispatch(trail, false, 4, 4, 5, ClickMode{Kind: ClickPaintTrail, Channel: 0})
	if got := trail.Pixel(4, 4).GetFrac(0); got != 0 {
		t.Error("brush should be a no-op when mouse is up")
	}
}

func TestBrushKernelDisabledNoOp(t *testing.T) {
	trail := NewTrailMap(8, 8, 1)
	kernel := BrushKernel{Channels: 1}
	kernel.Dispatch(trail, true, 4, 4, 5, ClickMode{Kind: ClickDisabled})
	if got := trail.Pixel(4, 4).GetFrac(0); got != 0 {
		t.Error("Disabled click mode should be a no-op on the map")
	}
}
