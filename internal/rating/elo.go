// Package rating implements the Elo update used to refine the ranking.
//
// The functions here are pure: the same inputs always produce the same
// outputs, and nothing fails for finite numeric input.
package rating

import "math"

// DefaultK is the K factor applied to each comparison unless the config
// overrides it.
const DefaultK = 32

// Base is the rating assigned to an unrated item and the center of the
// seed mapping.
const Base = 1200

// InitialRating seeds an Elo rating from a source-scale rating (0-5 in
// half-point steps). A nil or NaN rating maps to Base. The linear mapping
// is a seed, not a probability model; comparisons correct it over time.
func InitialRating(r *float64) int {
	if r == nil || math.IsNaN(*r) {
		return Base
	}
	return int(math.Round(Base + (*r-2.5)*200))
}

// ExpectedScore is the logistic expected outcome for a against b.
// ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func ExpectedScore(a, b int) float64 {
	return 1 / (1 + math.Pow(10, float64(b-a)/400))
}

// Update applies one comparison outcome. scoreA is 1 if A won, 0 if A
// lost; draws are not modeled. Each side rounds independently, so the two
// deltas are not guaranteed to cancel exactly after rounding. That
// asymmetry is observable and kept.
func Update(eloA, eloB int, scoreA float64, k float64) (int, int) {
	expectedA := ExpectedScore(eloA, eloB)
	expectedB := 1 - expectedA

	newA := int(math.Round(float64(eloA) + k*(scoreA-expectedA)))
	newB := int(math.Round(float64(eloB) + k*((1-scoreA)-expectedB)))
	return newA, newB
}
