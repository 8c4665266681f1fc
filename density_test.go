package piano

import "testing"

func TestResolveDensity(t *testing.T) {
	cases := []struct {
		width float64
		want  Density
	}{
		{0, DensityXS},
		{320, DensityXS},
		{520, DensityXS},
		{520.5, DensitySM},
		{521, DensitySM},
		{768, DensitySM},
		{769, DensityMD},
		{1024, DensityMD},
		{1025, DensityLG},
		{1366, DensityLG},
		{1367, DensityXL},
		{1920, DensityXL},
		{3840, DensityXL},
	}
	for _, c := range cases {
		if got := ResolveDensity(c.width); got != c.want {
			t.Errorf("got ResolveDensity(%g) = %s, want %s", c.width, got, c.want)
		}
	}
}

func TestDensityKeyCount(t *testing.T) {
	counts := map[Density]int{
		DensityXS: 28,
		DensitySM: 36,
		DensityMD: 44,
		DensityLG: 52,
		DensityXL: 60,
	}
	for d, want := range counts {
		if got := d.KeyCount(); got != want {
			t.Errorf("got %s.KeyCount() = %d, want %d", d, got, want)
		}
	}

	// Unresolved and out-of-range densities fall back to the LG count.
	for _, d := range []Density{DensityAuto, Density(-1), Density(99)} {
		if got := d.KeyCount(); got != 52 {
			t.Errorf("got %s.KeyCount() = %d, want 52", d, got)
		}
	}
}

func TestParseDensity(t *testing.T) {
	for _, d := range []Density{DensityAuto, DensityXS, DensitySM, DensityMD, DensityLG, DensityXL} {
		got, err := ParseDensity(d.String())
		if err != nil {
			t.Fatalf("ParseDensity(%q): %v", d.String(), err)
		}
		if got != d {
			t.Errorf("got ParseDensity(%q) = %s, want %s", d.String(), got, d)
		}
	}

	for _, in := range []string{"", "XL", "huge", "640"} {
		if _, err := ParseDensity(in); err == nil {
			t.Errorf("ParseDensity(%q) succeeded, want error", in)
		}
	}
}
