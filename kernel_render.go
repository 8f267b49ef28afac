package slimefield

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// renderShaderSrc composites up to 4 trail channels into a color per their
// ColorOperator, via a //kage:unit pixels fragment shader sampling the
// packed trail texture with imageSrcNAt and taking channel colors and
// operators as uniform arrays.
const renderShaderSrc = `//kage:unit pixels
package main

var ChannelColor [4]vec4
var ChannelOp [4]float
var BGColor vec4
var NumChannels float

func applyOp(acc vec4, op float, src vec4) vec4 {
	if op == 0 {
		return acc + src
	}
	if op == 1 {
		return acc - src
	}
	if op == 2 {
		return acc * src
	}
	if op == 3 {
		d := src
		if d.r == 0 {
			d.r = 1
		}
		if d.g == 0 {
			d.g = 1
		}
		if d.b == 0 {
			d.b = 1
		}
		if d.a == 0 {
			d.a = 1
		}
		return acc / d
	}
	return acc
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	channels := imageSrc1At(src)
	acc := BGColor
	values := [4]float{channels.r, channels.g, channels.b, channels.a}
	for i := 0; i < 4; i++ {
		if float(i) >= NumChannels {
			break
		}
		op := ChannelOp[i]
		if op < 0 {
			continue
		}
		acc = applyOp(acc, op, ChannelColor[i]*values[i])
	}
	return clamp(acc, vec4(0), vec4(1))
}
`

// RenderKernel composites a TrailMap to the swapchain image via a Kage
// fragment shader, one shader compile shared across the process.
type RenderKernel struct {
	Stats  []TrailStats
	shader *ebiten.Shader
}

// NewRenderKernel compiles the Kage shader once at startup via
// ebiten.NewShader rather than at build time.
func NewRenderKernel(stats []TrailStats) (*RenderKernel, error) {
	shader, err := ebiten.NewShader([]byte(renderShaderSrc))
	if err != nil {
		return nil, err
	}
	return &RenderKernel{Stats: stats, shader: shader}, nil
}

// Draw composites trailImage (an up-to-4-channel packed texture produced by
// UploadTo) onto dst using the compiled render shader.
func (k *RenderKernel) Draw(dst *ebiten.Image, trailImage *ebiten.Image, bg Color) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[1] = trailImage

	var chanColor [4][4]float32
	var chanOp [4]float32
	for i := range chanOp {
		chanOp[i] = -1
	}
	for i, st := range k.Stats {
		if i >= 4 {
			break
		}
		chanColor[i] = st.Color.Array()
		if st.Operator == ColorDisabled {
			chanOp[i] = -1
		} else {
			chanOp[i] = float32(st.Operator.Encode())
		}
	}

	op.Uniforms = map[string]any{
		"ChannelColor": chanColor,
		"ChannelOp":    chanOp,
		"BGColor":      bg.Array(),
		"NumChannels":  float32(len(k.Stats)),
	}
	dst.DrawRectShader(w, h, k.shader, op)
}

// UploadTo packs up to the first 4 channels of trail into img's RGBA
// pixels (one byte per channel, 8-bit precision for display purposes;
// the authoritative 15-bit values live in TrailMap itself). img must
// already be sized trail.W x trail.H.
func (trail *TrailMap) UploadTo(img *ebiten.Image) {
	pix := make([]byte, trail.W*trail.H*4)
	for y := 0; y < trail.H; y++ {
		for x := 0; x < trail.W; x++ {
			p := trail.Pixel(x, y)
			o := (y*trail.W + x) * 4
			for ch := 0; ch < 4; ch++ {
				if ch < trail.C {
					pix[o+ch] = byte(p.GetFrac(ch) * 255)
				}
			}
		}
	}
	img.WritePixels(pix)
}

// CompositePixel is the CPU reference implementation of the Kage shader's
// Fragment function, used for headless testing (S6) since Kage shaders
// cannot run inside `go test`.
func CompositePixel(values []float64, stats []TrailStats, bg Color) [4]float32 {
	acc := bg.Array()
	for i, v := range values {
		if i >= len(stats) {
			break
		}
		st := stats[i]
		if st.Operator == ColorDisabled {
			continue
		}
		c := st.Color.Array()
		src := [4]float32{c[0] * float32(v), c[1] * float32(v), c[2] * float32(v), c[3] * float32(v)}
		acc = st.Operator.Apply(acc, src)
	}
	return clamp4(acc)
}

// clamp4 clamps each component to [0, 1], mirroring the Kage shader's
// clamp(acc, vec4(0), vec4(1)) at the end of Fragment.
func clamp4(v [4]float32) [4]float32 {
	for i, c := range v {
		if c < 0 {
			v[i] = 0
		} else if c > 1 {
			v[i] = 1
		}
	}
	return v
}
