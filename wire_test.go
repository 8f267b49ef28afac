package slimefield

import "testing"

func TestFrameConstantsByteLength(t *testing.T) {
	fc := FrameConstants{
		ScreenSize: [2]uint32{1280, 720},
		MapSize:    [2]uint32{1280, 720},
		Time:       0,
		TimeStep:   0.01667,
		BGColor:    [4]float32{0, 0, 0, 1},
	}
	b := fc.Bytes()
	if len(b) != 48 {
		t.Fatalf("FrameConstants byte length = %d, want 48", len(b))
	}
	// ScreenSize.X = 1280 = 0x00000500 little-endian.
	if b[0] != 0x00 || b[1] != 0x05 || b[2] != 0x00 || b[3] != 0x00 {
		t.Errorf("bytes 0..4 = %x, want 00 05 00 00", b[0:4])
	}
}

func TestMouseConstantsByteLength(t *testing.T) {
	mc := MouseConstants{ScreenSize: [2]uint32{1280, 720}, MapSize: [2]uint32{256, 256}}
	if got := len(mc.Bytes()); got != 48 {
		t.Errorf("MouseConstants byte length = %d, want 48", got)
	}
}

func TestClickModeEncodeDecodeBijection(t *testing.T) {
	cases := []ClickMode{
		{Kind: ClickShowMenu},
		{Kind: ClickResetAllTrails},
		{Kind: ClickPaintTrail, Channel: 0},
		{Kind: ClickPaintTrail, Channel: 3},
		{Kind: ClickResetTrail, Channel: 2},
	}
	for _, c := range cases {
		got := DecodeClickMode(c.Encode())
		if got != c {
			t.Errorf("decode(encode(%+v)) = %+v", c, got)
		}
	}
}

func TestClickModeDisabledEncodesZero(t *testing.T) {
	if (ClickMode{Kind: ClickDisabled}).Encode() != 0 {
		t.Error("Disabled should encode to 0")
	}
}
