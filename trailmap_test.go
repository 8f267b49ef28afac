package slimefield

import "testing"

func TestNewTrailMapZeroed(t *testing.T) {
	m := NewTrailMap(8, 8, 4)
	for _, w := range m.data {
		if w != 0 {
			t.Fatalf("expected zero-initialized storage, found %#x", w)
		}
	}
}

func TestTrailMapPixelRoundTrip(t *testing.T) {
	m := NewTrailMap(4, 4, 4)
	p := m.Pixel(2, 1)
	p.SetFrac(0, 0.5)
	p.SetFrac(3, 1.0)

	p2 := m.Pixel(2, 1)
	if got := p2.GetFrac(0); got < 0.499 || got > 0.501 {
		t.Errorf("channel 0 = %v, want ~0.5", got)
	}
	if p2.Get(3) != PixelMax {
		t.Errorf("channel 3 = %d, want PixelMax", p2.Get(3))
	}
}

func TestTrailMapReset(t *testing.T) {
	m := NewTrailMap(4, 4, 2)
	m.Pixel(0, 0).SetFrac(0, 1.0)
	m.Reset()
	if m.Pixel(0, 0).Get(0) != 0 {
		t.Error("Reset should zero all channels")
	}
}

func TestTrailMapSnapshotIndependent(t *testing.T) {
	m := NewTrailMap(2, 2, 2)
	m.Pixel(0, 0).SetFrac(0, 0.5)
	snap := m.Snapshot()

	m.Pixel(0, 0).SetFrac(0, 1.0)

	snapPixel := m.pixelFrom(snap, 0, 0)
	if got := snapPixel.GetFrac(0); got > 0.6 {
		t.Errorf("snapshot should be unaffected by later writes, got %v", got)
	}
}

func TestTrailMapOddChannelCount(t *testing.T) {
	// C=3 -> 2 words per cell; exercises the "generic in C" packing.
	m := NewTrailMap(2, 2, 3)
	p := m.Pixel(1, 1)
	p.SetFrac(2, 1.0)
	if m.Pixel(1, 1).Get(2) != PixelMax {
		t.Error("odd channel count should still pack the trailing channel correctly")
	}
}
