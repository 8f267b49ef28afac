package slimefield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput routes window and pointer events into the pipeline's
// ConfigState/mouse state each tick: a single mouse pointer and a plain
// down/up edge, since the simulation has one circular brush interaction
// rather than arbitrary hit-testable shapes.
func (p *FramePipeline) pollInput(windowW, windowH int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Config.Quit = true
	}

	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.SetMouse(down, float64(x), float64(y))

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if p.Config.Globals.ClickMode.Kind == ClickShowMenu {
			p.Config.ShowMenu = true
		}
	}
}

// drawFPSOverlay renders a small translucent FPS/TPS readout in the
// corner of the screen, refreshed via ebitenutil.DebugPrint each frame;
// the backing image is cached at package scope and blitted directly.
var fpsOverlayImage *ebiten.Image

func drawFPSOverlay(screen *ebiten.Image) {
	if fpsOverlayImage == nil {
		fpsOverlayImage = ebiten.NewImage(100, 32)
	}
	img := fpsOverlayImage
	img.Clear()
	img.Fill(color.RGBA{0, 0, 0, 128})
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(img, &op)
}
