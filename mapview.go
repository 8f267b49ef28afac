package slimefield

// MapView maps between window (screen) pixels and map (trail) pixels. Map
// size and window size are decoupled by design: a smaller map gives
// faster simulation and a pixelated aesthetic. Uses the same
// dirty-flag-cached scale computation a camera view matrix would, reduced
// to pure axis-aligned scaling since the map never rotates.
type MapView struct {
	MapW, MapH       int
	WindowW, WindowH int
	ScaleFactor      float64 // 0 means "fit window", computed lazily

	scaleX, scaleY float64
	dirty          bool
}

// NewMapView creates a MapView for the given map and window dimensions.
func NewMapView(mapW, mapH, windowW, windowH int) *MapView {
	v := &MapView{MapW: mapW, MapH: mapH, WindowW: windowW, WindowH: windowH}
	v.MarkDirty()
	return v
}

// MarkDirty forces recomputation of the cached scale factors on next use.
func (v *MapView) MarkDirty() { v.dirty = true }

// Resize updates the window dimensions and marks the view dirty.
func (v *MapView) Resize(windowW, windowH int) {
	v.WindowW, v.WindowH = windowW, windowH
	v.MarkDirty()
}

func (v *MapView) recompute() {
	if !v.dirty {
		return
	}
	v.dirty = false
	if v.ScaleFactor > 0 {
		v.scaleX, v.scaleY = v.ScaleFactor, v.ScaleFactor
		return
	}
	v.scaleX = float64(v.WindowW) / float64(v.MapW)
	v.scaleY = float64(v.WindowH) / float64(v.MapH)
}

// MapToWindow converts map pixel coordinates to window pixel coordinates.
func (v *MapView) MapToWindow(mx, my float64) (wx, wy float64) {
	v.recompute()
	return mx * v.scaleX, my * v.scaleY
}

// WindowToMap converts window pixel coordinates to map pixel coordinates,
// used to translate mouse position into BrushKernel's map-space input.
func (v *MapView) WindowToMap(wx, wy float64) (mx, my float64) {
	v.recompute()
	if v.scaleX == 0 || v.scaleY == 0 {
		return 0, 0
	}
	return wx / v.scaleX, wy / v.scaleY
}
