package piano

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Style describes how a keyboard is painted onto a raster surface.
type Style struct {
	// Background fills the frame before any key is painted. A nil
	// Background leaves the surface untouched.
	Background color.Color

	WhiteFill color.Color
	BlackFill color.Color

	// Outline strokes every key edge with StrokeWidth. A nil Outline or
	// a non-positive StrokeWidth skips stroking.
	Outline     color.Color
	StrokeWidth float64
}

// DefaultStyle returns the classic look: white keys outlined in black on a
// soft gray background.
func DefaultStyle() Style {
	return Style{
		Background:  color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		WhiteFill:   color.White,
		BlackFill:   color.Black,
		Outline:     color.Black,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Draw paints the keyboard into the drawing context using whatever
// transform the context currently carries: white keys first, black keys
// over them.
func Draw(dc *gg.Context, kb Keyboard, style Style) {
	stroke := style.Outline != nil && style.StrokeWidth > 0
	if stroke {
		dc.SetLineWidth(style.StrokeWidth)
	}
	paint := func(quads []Quad, fill color.Color) {
		for _, q := range quads {
			dc.MoveTo(q.P0.Splat())
			dc.LineTo(q.P1.Splat())
			dc.LineTo(q.P2.Splat())
			dc.LineTo(q.P3.Splat())
			dc.ClosePath()
			dc.SetColor(fill)
			if stroke {
				dc.FillPreserve()
				dc.SetColor(style.Outline)
				dc.Stroke()
			} else {
				dc.Fill()
			}
		}
	}
	paint(kb.White, style.WhiteFill)
	paint(kb.Black, style.BlackFill)
}

// Image rasterizes the keyboard into a fresh RGBA image covering the
// fitted view box (or, when fitting was off, the stroke-padded bounding
// box). The scale factor converts curve units to pixels; values up to 0
// count as 1. Image returns nil when the keyboard has no drawable
// geometry.
func (kb Keyboard) Image(style Style, scale float64) *image.RGBA {
	frame := kb.ViewBox
	if !kb.Fitted {
		var ok bool
		frame, ok = FitViewBox(kb, max(8, style.StrokeWidth*4))
		if !ok {
			return nil
		}
	}
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(frame.Width() * scale))
	h := int(math.Ceil(frame.Height() * scale))
	if w < 1 || h < 1 {
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(rgba)
	if style.Background != nil {
		dc.SetColor(style.Background)
		dc.Clear()
	}
	dc.Scale(scale, scale)
	dc.Translate(-frame.MinX(), -frame.MinY())
	Draw(dc, kb, style)
	return rgba
}
