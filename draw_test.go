package piano

import (
	"image/color"
	"testing"
)

func TestKeyboardImage(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(256, 0)}
	kb := Layout(line, Options{
		NumWhiteKeys:    2,
		Thickness:       64,
		BlackWidthRatio: 0.5,
		BlackDepth:      0.5,
	})

	img := kb.Image(DefaultStyle(), 1)
	if img == nil {
		t.Fatal("got nil image for a non-empty keyboard")
	}
	// Frame [-8, -40, 264, 40] at scale 1.
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 272 || h != 80 {
		t.Fatalf("got a %dx%d image, want 272x80", w, h)
	}

	// Curve point (x, y) lands on pixel (x+8, y+40). Probe deep inside a
	// white key, inside the black key, and the padded margin.
	diff(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(40, 40))
	diff(t, color.RGBA{A: 0xff}, img.RGBAAt(120, 24))
	diff(t, color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}, img.RGBAAt(1, 1))
}

func TestKeyboardImageScale(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(256, 0)}
	kb := Layout(line, Options{NumWhiteKeys: 2, Thickness: 64})

	img := kb.Image(DefaultStyle(), 2)
	if img == nil {
		t.Fatal("got nil image")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 544 || h != 160 {
		t.Fatalf("got a %dx%d image, want 544x160", w, h)
	}
	diff(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(80, 80))

	// Nonsense scales count as 1.
	img = kb.Image(DefaultStyle(), -3)
	if img == nil {
		t.Fatal("got nil image for a clamped scale")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 272 || h != 80 {
		t.Fatalf("got a %dx%d image, want 272x80", w, h)
	}
}

func TestKeyboardImageEmpty(t *testing.T) {
	if img := (Keyboard{}).Image(DefaultStyle(), 1); img != nil {
		t.Errorf("got a %v image for an empty keyboard, want nil", img.Bounds())
	}
}

func TestKeyboardImagePointCurve(t *testing.T) {
	pt := Line{P0: Pt(3, 4), P1: Pt(3, 4)}
	kb := Layout(pt, Options{NumWhiteKeys: 5})

	img := kb.Image(DefaultStyle(), 1)
	if img == nil {
		t.Fatal("got nil image for stacked zero-area keys")
	}
	// The zero-area bounding box still inflates to a 16x16 frame.
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 16 || h != 16 {
		t.Fatalf("got a %dx%d image, want 16x16", w, h)
	}
	diff(t, color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}, img.RGBAAt(1, 1))
}
