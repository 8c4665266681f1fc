package piano

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int

	// StrokeWidth of the key outlines. A value of 0 uses
	// [DefaultStrokeWidth].
	StrokeWidth float64
}

// SVG renders the keyboard as a complete SVG document.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(kb Keyboard, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, kb, opts)
	return sb.String()
}

// WriteSVG renders the keyboard as a complete SVG document and writes it to
// w. All white keys become a single path element and all black keys a
// second one painted over it. The document's viewBox is the keyboard's
// fitted frame when present, otherwise its bounding box.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, kb Keyboard, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}

	frame := kb.ViewBox
	if !kb.Fitted {
		frame, _ = kb.BoundingBox()
	}
	stroke := opts.StrokeWidth
	if stroke == 0 {
		stroke = DefaultStrokeWidth
	}

	writef("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%s %s %s %s\">\n",
		format(frame.MinX()), format(frame.MinY()),
		format(frame.Width()), format(frame.Height()))
	keys := func(quads []Quad, fill string) {
		if len(quads) == 0 {
			return
		}
		writef("  <path fill=\"%s\" stroke=\"#000\" stroke-width=\"%s\" stroke-linejoin=\"round\" d=\"",
			fill, format(stroke))
		for i, q := range quads {
			if i > 0 {
				writef(" ")
			}
			writef("M%s,%s L%s,%s L%s,%s L%s,%s Z",
				format(q.P0.X), format(q.P0.Y),
				format(q.P1.X), format(q.P1.Y),
				format(q.P2.X), format(q.P2.Y),
				format(q.P3.X), format(q.P3.Y))
		}
		writef("\"/>\n")
	}
	keys(kb.White, "#fff")
	keys(kb.Black, "#000")
	writef("</svg>\n")
	return err
}
