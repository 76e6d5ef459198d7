// Package ratings converts raw, unit-ambiguous paddle measurements into the
// uniform 0-10 rating vector used for filtering, ranking and display.
package ratings

import (
	"math"

	"github.com/sliceinsights/picklematch-backend/internal/types"
)

const (
	// Twist-weight values above this are on the large scale (~150-600);
	// at or below it they are on the small scale (~5.0-7.5).
	twistScaleCutoff = 100.0

	neutralDefault = 5.0

	// Sub-range spin readings should not occur in scraped data, but a
	// stray one maps to a low (not neutral) rating.
	lowSpinDefault = 2.0

	minSpinRPM = 150.0
)

// Compute derives the rating vector for a paddle. It never fails and never
// returns a partial vector: missing measurements resolve to defaults so the
// ranking pipeline stays branch-free on nulls.
func Compute(p *types.Paddle) types.RatingVector {
	control := ControlFloat(p.TwistWeight)
	return types.RatingVector{
		Power:     round(powerFloat(p.PowerRating)),
		Control:   round(control),
		Spin:      round(spinFloat(p.SpinRPM)),
		SweetSpot: round(sweetSpotFloat(control)),
	}
}

// ControlFloat maps a raw twist weight to the unrounded 0-10 control rating.
// Exported because the sweet-spot derivation needs the pre-rounding value.
func ControlFloat(twistWeight *float64) float64 {
	twist := 0.0
	if twistWeight != nil {
		twist = *twistWeight
	}
	var control float64
	if twist > twistScaleCutoff {
		// Large scale, normalized from the 150-600 range.
		control = (twist - 150) / 450 * 10
	} else if twist > 0 {
		// Small scale: 5.0 -> 7.5, 6.6 -> ~10.
		control = twist * 1.5
	} else {
		control = neutralDefault
	}
	return clamp(control, 0, 10)
}

func spinFloat(spinRPM *int) float64 {
	rpm := 0.0
	if spinRPM != nil {
		rpm = float64(*spinRPM)
	}
	var spin float64
	switch {
	case rpm >= minSpinRPM:
		spin = (rpm - minSpinRPM) / 150 * 10
	case rpm == 0:
		spin = neutralDefault
	default:
		spin = lowSpinDefault
	}
	return clamp(spin, 0, 10)
}

// sweetSpotFloat is a synthetic forgiveness proxy, inversely related to the
// unrounded control rating, floored at 1.
func sweetSpotFloat(control float64) float64 {
	return math.Max(1.0, 10.0-control*0.4)
}

func powerFloat(powerRating *int) float64 {
	if powerRating == nil || *powerRating == 0 {
		return neutralDefault
	}
	return clamp(float64(*powerRating), 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round(v float64) int {
	return int(math.Round(v))
}
