// Package scoring holds the rank-decay point curve. Everything here is
// pure arithmetic; the aggregation engine in internal/logic decides who
// gets scored and for what.
package scoring

import "math"

// PackDivisor scales a pack's summed member scores down to its bonus
// value. Completing a pack is worth a third of re-clearing its levels.
const PackDivisor = 3

// Score returns the point value of an achievement at the given list
// rank. The curve decays with rank toward a floor of 0, scaled linearly
// by the achieved percent relative to the level's qualifying percent.
// Partial achievements (percent below 100) are worth two thirds of the
// scaled value. Never negative.
//
// Callers are expected to pass rank >= 1 and percent within
// [minPercent, 100]; anything below the qualifying window clamps to 0.
func Score(rank int, percent, minPercent float64) float64 {
	base := 100/math.Sqrt((float64(rank)-1)/50+0.444444) - 50
	if base < 0 {
		base = 0
	}

	s := base * ((percent - (minPercent - 1)) / (100 - (minPercent - 1)))
	if percent != 100 {
		s -= s / 3
	}
	if s < 0 {
		s = 0
	}
	return s
}

// Round normalizes a raw score sum to display precision (2 decimal
// places). Applied once per leaderboard entry, on the final total only;
// intermediate category scores stay raw.
func Round(x float64) float64 {
	return math.Round(x*100) / 100
}
