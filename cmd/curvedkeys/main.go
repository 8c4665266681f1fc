// Command curvedkeys renders a piano keyboard laid along a curve to an
// SVG or PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	piano "github.com/KeystoneScience/curved-piano-keys"
)

func main() {
	log.SetFlags(0)
	var (
		curveName   = flag.String("curve", "wave", "preset curve: line, arc, wave, ess or ring")
		keys        = flag.Int("keys", 0, "exact white key count (0 uses -density)")
		density     = flag.String("density", "auto", "density tier: auto, xs, sm, md, lg or xl")
		width       = flag.Float64("width", 1024, "viewport width used to resolve -density auto")
		start       = flag.String("start", "A", "note the cadence starts on: A or C")
		thickness   = flag.Float64("thickness", piano.DefaultThickness, "ribbon thickness in curve units")
		span        = flag.Float64("span", 0, "white key span override (0 computes it from the curve)")
		blackWidth  = flag.Float64("black-width", piano.DefaultBlackWidthRatio, "black key width as a fraction of the white span")
		blackDepth  = flag.Float64("black-depth", piano.DefaultBlackDepth, "black key depth as a fraction of the thickness")
		orientation = flag.Int("orientation", 1, "black key extrusion side: 1 or -1")
		stroke      = flag.Float64("stroke", piano.DefaultStrokeWidth, "outline stroke width")
		pad         = flag.Float64("pad", 0, "view box padding override (0 derives it from the stroke)")
		scale       = flag.Float64("scale", 1, "pixels per curve unit (png output only)")
		out         = flag.String("o", "keyboard.svg", "output file, .svg or .png")
	)
	flag.Parse()

	c, err := preset(*curveName)
	if err != nil {
		log.Fatal(err)
	}
	d, err := piano.ParseDensity(*density)
	if err != nil {
		log.Fatal(err)
	}
	if d == piano.DensityAuto {
		d = piano.ResolveDensity(*width)
	}
	note, err := piano.ParseNote(*start)
	if err != nil {
		log.Fatal(err)
	}

	kb := piano.Layout(c, piano.Options{
		NumWhiteKeys:    *keys,
		Density:         d,
		StartOn:         note,
		Thickness:       *thickness,
		WhiteKeySpan:    *span,
		BlackWidthRatio: *blackWidth,
		BlackDepth:      *blackDepth,
		Orientation:     *orientation,
		StrokeWidth:     *stroke,
		FitViewBox:      true,
		ViewBoxPadding:  *pad,
	})

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".svg":
		if err := writeSVG(*out, kb, *stroke); err != nil {
			log.Fatal(err)
		}
	case ".png":
		style := piano.DefaultStyle()
		style.StrokeWidth = *stroke
		im := kb.Image(style, *scale)
		if im == nil {
			log.Fatal("keyboard has no drawable geometry")
		}
		if err := gg.SavePNG(*out, im); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unsupported output format %q", filepath.Ext(*out))
	}
}

func writeSVG(path string, kb piano.Keyboard, stroke float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = piano.WriteSVG(f, kb, piano.SVGOptions{MaxPrecision: 3, StrokeWidth: stroke})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func preset(name string) (piano.Curve, error) {
	switch name {
	case "line":
		return piano.Line{P0: piano.Pt(0, 0), P1: piano.Pt(1200, 0)}, nil
	case "arc":
		return piano.Arc{
			Center:     piano.Pt(600, 700),
			Radius:     540,
			StartAngle: -math.Pi + 0.4,
			SweepAngle: math.Pi - 0.8,
		}, nil
	case "wave":
		return wave(), nil
	case "ess":
		return piano.NewBezPath(piano.CubicBez{
			P0: piano.Pt(80, 420),
			P1: piano.Pt(420, -60),
			P2: piano.Pt(780, 900),
			P3: piano.Pt(1120, 420),
		}), nil
	case "ring":
		return piano.Circle{Center: piano.Pt(600, 600), Radius: 500}, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// wave samples a gentle sine into a polyline.
func wave() piano.Curve {
	pts := make([]piano.Point, 0, 121)
	for i := 0; i <= 120; i++ {
		x := float64(i) * 10
		pts = append(pts, piano.Pt(x, 110*math.Sin(x/190)))
	}
	return piano.NewPolyline(pts...)
}
