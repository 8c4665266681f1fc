package piano

import (
	"errors"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(256, 0)}
	kb := Layout(line, Options{
		NumWhiteKeys:    2,
		Thickness:       64,
		BlackWidthRatio: 0.5,
		BlackDepth:      0.5,
		FitViewBox:      true,
	})

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-8 -40 272 80">
  <path fill="#fff" stroke="#000" stroke-width="2" stroke-linejoin="round" d="M0,32 L128,32 L128,-32 L0,-32 Z M128,32 L256,32 L256,-32 L128,-32 Z"/>
  <path fill="#000" stroke="#000" stroke-width="2" stroke-linejoin="round" d="M96,-32 L160,-32 L160,0 L96,0 Z"/>
</svg>
`
	diff(t, want, SVG(kb, SVGOptions{}))
}

// Without a fitted frame the document falls back to the tight bounding
// box.
func TestSVGUnfitted(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(256, 0)}
	kb := Layout(line, Options{NumWhiteKeys: 2, Thickness: 64})

	got := SVG(kb, SVGOptions{})
	if !strings.Contains(got, `viewBox="0 -32 256 64"`) {
		t.Errorf("got document without the bounding-box viewBox:\n%s", got)
	}
}

func TestSVGEmptyKeyboard(t *testing.T) {
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0">
</svg>
`
	diff(t, want, SVG(Keyboard{}, SVGOptions{}))
}

func TestSVGMaxPrecision(t *testing.T) {
	kb := Keyboard{White: []Quad{{
		Pt(1.0/3.0, 4), Pt(2.5, 4), Pt(2.5, 0.75), Pt(1.0/3.0, 0.75),
	}}}

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0.33 0.75 2.17 3.25">
  <path fill="#fff" stroke="#000" stroke-width="1.5" stroke-linejoin="round" d="M0.33,4. L2.5,4. L2.5,0.75 L0.33,0.75 Z"/>
</svg>
`
	diff(t, want, SVG(kb, SVGOptions{MaxPrecision: 2, StrokeWidth: 1.5}))
}

func TestWriteSVGError(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(256, 0)}
	kb := Layout(line, Options{NumWhiteKeys: 2})
	if err := WriteSVG(failingWriter{}, kb, SVGOptions{}); err == nil {
		t.Error("got no error from a failing writer")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
