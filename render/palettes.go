package render

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/visibility"
)

// MovementPalette colors a reachability movement field: unreachable
// tiles (0) dark gray, the origin (1) bright green, and every other
// reached tile a cost-scaled blue - darker the farther from origin.
func MovementPalette[C grid.Coord](maxValue C) ColorFunc[C] {
	return func(v C) RGB {
		if v == 0 {
			return RGB{0.15, 0.15, 0.15}
		}
		if v == 1 {
			return RGB{0.2, 0.8, 0.2}
		}
		t := float64(v) / float64(maxValue)
		if t > 1 {
			t = 1
		}
		return RGB{0.1, 0.2 + 0.6*(1-t), 0.9}
	}
}

// SightPalette colors a sight field's cells: blocked dark gray,
// visible light yellow, observer red, wall brown.
func SightPalette[C grid.Coord]() ColorFunc[C] {
	return func(v C) RGB {
		switch visibility.State(v) {
		case visibility.Observer:
			return RGB{0.9, 0.1, 0.1}
		case visibility.Visible:
			return RGB{0.95, 0.9, 0.55}
		case visibility.Wall:
			return RGB{0.45, 0.3, 0.15}
		default:
			return RGB{0.15, 0.15, 0.15}
		}
	}
}

// GradientPalette colors a gradient field: the blocked sentinel dark
// gray, a seed (0) bright red, and every other tile a distance-scaled
// teal, fading out toward maxValue.
func GradientPalette[C grid.Coord](maxValue C) ColorFunc[C] {
	return func(v C) RGB {
		if v < 0 {
			return RGB{0.15, 0.15, 0.15}
		}
		if v == 0 {
			return RGB{0.9, 0.15, 0.15}
		}
		t := float64(v) / float64(maxValue)
		if t > 1 {
			t = 1
		}
		return RGB{0.1, 0.6 - 0.3*t, 0.6 - 0.3*t}
	}
}
