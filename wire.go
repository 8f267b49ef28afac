package slimefield

import (
	"bytes"
	"encoding/binary"
)

// FrameConstants is the per-frame push-constant record, bit-exact with the
// device layout: two uvec2, two f32, two f32 padding, and a vec4
// background color. 48 bytes total.
type FrameConstants struct {
	ScreenSize [2]uint32
	MapSize    [2]uint32
	Time       float32
	TimeStep   float32
	Pad0       float32
	Pad1       float32
	BGColor    [4]float32
}

// Bytes marshals FrameConstants to its bit-exact little-endian wire form.
func (f FrameConstants) Bytes() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(48)
	_ = binary.Write(buf, binary.LittleEndian, f.ScreenSize)
	_ = binary.Write(buf, binary.LittleEndian, f.MapSize)
	_ = binary.Write(buf, binary.LittleEndian, f.Time)
	_ = binary.Write(buf, binary.LittleEndian, f.TimeStep)
	_ = binary.Write(buf, binary.LittleEndian, f.Pad0)
	_ = binary.Write(buf, binary.LittleEndian, f.Pad1)
	_ = binary.Write(buf, binary.LittleEndian, f.BGColor)
	return buf.Bytes()
}

// MouseConstants is the per-frame brush push-constant record, bit-exact
// with the device layout it mirrors.
type MouseConstants struct {
	ScreenSize        [2]uint32
	MapSize           [2]uint32
	ClickMode         uint32
	MouseDown         uint32
	MousePosition     [2]float32
	LastMousePosition [2]float32
	BrushSize         float32
	Pad              float32
}

// Bytes marshals MouseConstants to its bit-exact little-endian wire form.
func (m MouseConstants) Bytes() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(48)
	_ = binary.Write(buf, binary.LittleEndian, m.ScreenSize)
	_ = binary.Write(buf, binary.LittleEndian, m.MapSize)
	_ = binary.Write(buf, binary.LittleEndian, m.ClickMode)
	_ = binary.Write(buf, binary.LittleEndian, m.MouseDown)
	_ = binary.Write(buf, binary.LittleEndian, m.MousePosition)
	_ = binary.Write(buf, binary.LittleEndian, m.LastMousePosition)
	_ = binary.Write(buf, binary.LittleEndian, m.BrushSize)
	_ = binary.Write(buf, binary.LittleEndian, m.Pad)
	return buf.Bytes()
}

// ClickModeKind tags the variant of ClickMode; the channel payload is only
// meaningful for PaintTrail/ResetTrail.
type ClickModeKind uint8

const (
	ClickDisabled ClickModeKind = iota
	ClickShowMenu
	ClickPaintTrail
	ClickResetTrail
	ClickResetAllTrails
)

// ClickMode is a tagged union over the mouse-interaction mode.
type ClickMode struct {
	Kind    ClickModeKind
	Channel int // meaningful only for ClickPaintTrail / ClickResetTrail
}

// Encode returns the wire u32 for a ClickMode:
// 0=Disabled, 1=ShowMenu, 2=ResetAllTrails, 256+k=PaintTrail(k), 512+k=ResetTrail(k).
func (c ClickMode) Encode() uint32 {
	switch c.Kind {
	case ClickShowMenu:
		return 1
	case ClickResetAllTrails:
		return 2
	case ClickPaintTrail:
		return 256 + uint32(c.Channel)
	case ClickResetTrail:
		return 512 + uint32(c.Channel)
	default:
		return 0
	}
}

// DecodeClickMode inverts Encode.
func DecodeClickMode(wire uint32) ClickMode {
	switch {
	case wire == 0:
		return ClickMode{Kind: ClickDisabled}
	case wire == 1:
		return ClickMode{Kind: ClickShowMenu}
	case wire == 2:
		return ClickMode{Kind: ClickResetAllTrails}
	case wire >= 512:
		return ClickMode{Kind: ClickResetTrail, Channel: int(wire - 512)}
	case wire >= 256:
		return ClickMode{Kind: ClickPaintTrail, Channel: int(wire - 256)}
	default:
		return ClickMode{Kind: ClickDisabled}
	}
}
