package piano

import (
	"fmt"
)

// Density is a coarse white-key-count preset keyed to how much horizontal
// room the host viewport has. The zero value DensityAuto means "resolve
// from a measured width": only the host can measure, so it feeds the width
// to [ResolveDensity] on every resize signal and passes the result on.
// The geometry core never measures anything; handed DensityAuto directly,
// it reads it as [DensityLG].
type Density int

const (
	DensityAuto Density = iota
	DensityXS
	DensitySM
	DensityMD
	DensityLG
	DensityXL
)

// The breakpoint table and the per-tier key counts are part of this
// package's compatibility contract; hosts rely on a given width always
// resolving to the same keyboard.

var densityTiers = []struct {
	maxWidth float64
	density  Density
}{
	{520, DensityXS},
	{768, DensitySM},
	{1024, DensityMD},
	{1366, DensityLG},
}

var densityKeyCounts = [...]int{
	DensityXS: 28,
	DensitySM: 36,
	DensityMD: 44,
	DensityLG: 52,
	DensityXL: 60,
}

// ResolveDensity maps a measured viewport width to a density tier, using
// the ascending breakpoint table. Widths above the last breakpoint resolve
// to DensityXL. ResolveDensity is pure and never returns DensityAuto.
func ResolveDensity(width float64) Density {
	for _, tier := range densityTiers {
		if width <= tier.maxWidth {
			return tier.density
		}
	}
	return DensityXL
}

// KeyCount returns the tier's white-key count. DensityAuto, which cannot
// be resolved without a width, reports the DensityLG count.
func (d Density) KeyCount() int {
	if d <= DensityAuto || int(d) >= len(densityKeyCounts) {
		return densityKeyCounts[DensityLG]
	}
	return densityKeyCounts[d]
}

func (d Density) String() string {
	switch d {
	case DensityAuto:
		return "auto"
	case DensityXS:
		return "xs"
	case DensitySM:
		return "sm"
	case DensityMD:
		return "md"
	case DensityLG:
		return "lg"
	case DensityXL:
		return "xl"
	}
	return fmt.Sprintf("Density(%d)", int(d))
}

// ParseDensity parses a tier name as it appears on the configuration
// surface: auto, xs, sm, md, lg or xl.
func ParseDensity(s string) (Density, error) {
	switch s {
	case "auto":
		return DensityAuto, nil
	case "xs":
		return DensityXS, nil
	case "sm":
		return DensitySM, nil
	case "md":
		return DensityMD, nil
	case "lg":
		return DensityLG, nil
	case "xl":
		return DensityXL, nil
	}
	return 0, fmt.Errorf("invalid density %q", s)
}
