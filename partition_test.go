package piano

import "testing"

func TestPartition(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(1200, 0)}
	got := Partition(line, 12, 100)
	want := []float64{0, 100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200}
	diff(t, want, got)
}

func TestPartitionComputedSpan(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(1000, 0)}
	got := Partition(line, 4, 0)
	want := []float64{0, 250, 500, 750, 1000}
	diff(t, want, got)
}

func TestPartitionProperties(t *testing.T) {
	curves := []Curve{
		Line{P0: Pt(0, 0), P1: Pt(1200, 0)},
		NewPolyline(Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)),
		Arc{Center: Pt(0, 0), Radius: 200, StartAngle: 0, SweepAngle: 2},
	}
	for _, c := range curves {
		for _, n := range []int{1, 2, 7, 12, 52} {
			bounds := Partition(c, n, 0)
			if len(bounds) != n+1 {
				t.Fatalf("got %d boundaries for %d keys, want %d", len(bounds), n, n+1)
			}
			if bounds[0] != 0 {
				t.Errorf("got first boundary %g, want 0", bounds[0])
			}
			for i := 1; i < len(bounds); i++ {
				if bounds[i] < bounds[i-1] {
					t.Fatalf("boundaries decrease at %d: %g < %g", i, bounds[i], bounds[i-1])
				}
			}
			last := bounds[len(bounds)-1]
			if length := c.Length(); last < length-1e-9 || last > length+1e-9 {
				t.Errorf("got last boundary %g, want curve length %g", last, length)
			}
		}
	}
}

// A span shorter than Length/keyCount leaves the tail of the curve bare; a
// longer one piles the trailing boundaries up at the curve's end.
func TestPartitionSpanOverride(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(1000, 0)}

	got := Partition(line, 4, 100)
	diff(t, []float64{0, 100, 200, 300, 400}, got)

	got = Partition(line, 4, 400)
	diff(t, []float64{0, 400, 800, 1000, 1000}, got)
}

func TestPartitionClampsKeyCount(t *testing.T) {
	line := Line{P0: Pt(0, 0), P1: Pt(500, 0)}
	for _, n := range []int{0, -1, -100} {
		got := Partition(line, n, 0)
		diff(t, []float64{0, 500}, got)
	}
}

func TestPartitionDegenerateCurve(t *testing.T) {
	pt := Line{P0: Pt(3, 4), P1: Pt(3, 4)}
	got := Partition(pt, 5, 0)
	diff(t, []float64{0, 0, 0, 0, 0, 0}, got)
}
