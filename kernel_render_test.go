package slimefield

import "testing"

// S6: single channel, Add operator, should produce an additive tint over
// the background.
func TestCompositePixelS6(t *testing.T) {
	stats := []TrailStats{{Color: Color{R: 1, G: 0, B: 0, A: 1}, Operator: ColorAdd}}
	got := CompositePixel([]float64{0.5}, stats, Color{R: 0, G: 0, B: 0, A: 1})
	want := [4]float32{0.5, 0, 0, 1}
	if got != want {
		t.Errorf("CompositePixel = %v, want %v", got, want)
	}
}

func TestCompositePixelDisabledChannelSkipped(t *testing.T) {
	stats := []TrailStats{
		{Color: Color{R: 1, G: 0, B: 0, A: 1}, Operator: ColorDisabled},
		{Color: Color{R: 0, G: 1, B: 0, A: 1}, Operator: ColorAdd},
	}
	got := CompositePixel([]float64{1.0, 0.25}, stats, Color{A: 1})
	if got[0] != 0 || got[1] != 0.25 {
		t.Errorf("CompositePixel = %v, want red channel skipped, green = 0.25", got)
	}
}

func TestCompositePixelMultipleChannelsAccumulate(t *testing.T) {
	stats := []TrailStats{
		{Color: Color{R: 1, A: 1}, Operator: ColorAdd},
		{Color: Color{B: 1, A: 1}, Operator: ColorAdd},
	}
	got := CompositePixel([]float64{0.3, 0.4}, stats, Color{A: 1})
	if got[0] != 0.3 || got[2] != 0.4 {
		t.Errorf("CompositePixel = %v, want r=0.3 b=0.4", got)
	}
}
