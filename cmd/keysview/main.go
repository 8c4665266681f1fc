// Command keysview shows a keyboard laid along a curve in a resizable
// window. The window width drives the responsive density, so resizing
// re-lays the keyboard out with more or fewer keys. Space flips the black
// key extrusion side, escape quits.
package main

import (
	"flag"
	"image"
	"io"
	"log"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten"

	piano "github.com/KeystoneScience/curved-piano-keys"
)

type view struct {
	curve       piano.Curve
	density     piano.Density
	auto        bool
	orientation int

	width  int
	height int
	space  bool
	rgba   *image.RGBA
}

func (v *view) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width = outsideWidth
		v.height = outsideHeight
		if v.auto {
			v.density = piano.ResolveDensity(float64(outsideWidth))
		}
		v.rgba = nil
	}
	return v.width, v.height
}

func (v *view) Update(screen *ebiten.Image) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return io.EOF
	}
	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	if space && !v.space {
		v.orientation = -v.orientation
		v.rgba = nil
	}
	v.space = space

	if v.width == 0 || v.height == 0 {
		return nil
	}
	if v.rgba == nil {
		v.render()
	}
	return screen.ReplacePixels(v.rgba.Pix)
}

// render lays the keyboard out for the current density and paints it
// centered into the window, scaled to fit.
func (v *view) render() {
	kb := piano.Layout(v.curve, piano.Options{
		Density:     v.density,
		Orientation: v.orientation,
		FitViewBox:  true,
	})
	v.rgba = image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	dc := gg.NewContextForRGBA(v.rgba)
	style := piano.DefaultStyle()
	dc.SetColor(style.Background)
	dc.Clear()
	if !kb.Fitted {
		return
	}
	frame := kb.ViewBox
	w, h := float64(v.width), float64(v.height)
	s := min(w/frame.Width(), h/frame.Height())
	dc.Translate((w-frame.Width()*s)/2, (h-frame.Height()*s)/2)
	dc.Scale(s, s)
	dc.Translate(-frame.MinX(), -frame.MinY())
	piano.Draw(dc, kb, style)
}

func main() {
	log.SetFlags(0)
	density := flag.String("density", "auto", "density tier: auto, xs, sm, md, lg or xl (auto re-resolves on every resize)")
	flag.Parse()

	d, err := piano.ParseDensity(*density)
	if err != nil {
		log.Fatal(err)
	}
	v := &view{
		curve: piano.NewBezPath(piano.CubicBez{
			P0: piano.Pt(80, 420),
			P1: piano.Pt(420, -60),
			P2: piano.Pt(780, 900),
			P3: piano.Pt(1120, 420),
		}),
		density:     d,
		auto:        d == piano.DensityAuto,
		orientation: 1,
	}
	ebiten.SetWindowTitle("curved piano keys")
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowSize(1024, 640)
	if err := ebiten.RunGame(v); err != nil && err != io.EOF {
		log.Fatal(err)
	}
}
