package slimefield

// copyBufferAlignment mirrors a typical device copy-buffer alignment
// (WebGPU's COPY_BUFFER_ALIGNMENT is 4 bytes but whole-buffer copies are
// commonly rounded to 256 bytes = 64 words); storage is rounded up to it
// so a future GPU backend could upload TrailMap.data without repacking.
const copyBufferAlignment = 64 // words

// TrailMap is a W x H grid of pixels, each holding C packed channels. It is
// the sole domain of AgentKernel, DiffuseKernel, BrushKernel, and
// RenderKernel; all access goes through Pixel, which returns an aliased
// PixelView into the backing word slice.
type TrailMap struct {
	W, H, C int
	data    []uint32 // W*H*⌈C/2⌉ words, rounded up to copyBufferAlignment
}

// NewTrailMap allocates a zero-initialized trail map of the given
// dimensions and channel count.
func NewTrailMap(w, h, c int) *TrailMap {
	words := wordsFor(w, h, c)
	return &TrailMap{W: w, H: h, C: c, data: make([]uint32, words)}
}

func wordsFor(w, h, c int) int {
	cells := w * h
	wordsPerCell := (c + 1) / 2
	n := cells * wordsPerCell
	if rem := n % copyBufferAlignment; rem != 0 {
		n += copyBufferAlignment - rem
	}
	return n
}

// index returns the starting word offset for cell (x, y).
func (m *TrailMap) index(x, y int) int {
	wordsPerCell := (m.C + 1) / 2
	return (y*m.W + x) * wordsPerCell
}

// InBounds reports whether (x, y) addresses a valid cell.
func (m *TrailMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Pixel returns a PixelView over cell (x, y). The caller must ensure
// InBounds(x, y); out-of-bounds access is forbidden by contract, not
// checked here (this is called per-agent, per-cell, in hot loops).
func (m *TrailMap) Pixel(x, y int) PixelView {
	wordsPerCell := (m.C + 1) / 2
	start := m.index(x, y)
	return PixelView{words: m.data[start : start+wordsPerCell]}
}

// Reset zeros all words. Invoked on "reset trails" and after respawn.
func (m *TrailMap) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Snapshot returns a copy of the backing word slice, used by DiffuseKernel
// to read a pre-dispatch snapshot while writing the canonical buffer,
// avoiding a read-after-write hazard between neighboring cells.
func (m *TrailMap) Snapshot() []uint32 {
	cp := make([]uint32, len(m.data))
	copy(cp, m.data)
	return cp
}

// pixelFrom returns a PixelView over cell (x, y) of an arbitrary word
// buffer with this map's dimensions, used to view a Snapshot().
func (m *TrailMap) pixelFrom(buf []uint32, x, y int) PixelView {
	wordsPerCell := (m.C + 1) / 2
	start := m.index(x, y)
	return PixelView{words: buf[start : start+wordsPerCell]}
}
