// Package pick chooses the next comparison pair.
//
// The selector is a heuristic nearest-rating sampler: it draws a bounded
// number of random pairs and keeps the closest-rated one, which costs
// O(sample) instead of O(n^2) over the whole collection. Close matchups
// are the informative ones, so comparisons converge faster than uniform
// pairing would.
package pick

import (
	"math/rand"
	"time"

	"github.com/mredding/reelrank/internal/model"
)

// SampleCap bounds the number of candidate draws per selection.
const SampleCap = 200

// Selector picks comparison pairs. The random source is injectable so
// tests can assert exact selections from a fixed seed.
type Selector struct {
	rng *rand.Rand
}

// New returns a selector seeded from the clock.
func New() *Selector {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic selector for the given seed.
func NewSeeded(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns indices of two distinct items to compare, biased toward
// close ratings. ok is false when fewer than two items exist. Pick never
// mutates the collection; two calls with the same state may differ.
func (s *Selector) Pick(items []model.Item) (int, int, bool) {
	n := len(items)
	if n < 2 {
		return 0, 0, false
	}

	sampleSize := 2 * n
	if sampleSize > SampleCap {
		sampleSize = SampleCap
	}

	bestA, bestB := -1, -1
	bestDiff := 0
	for i := 0; i < sampleSize; i++ {
		a := s.rng.Intn(n)
		b := s.rng.Intn(n)
		if items[a].ID == items[b].ID {
			continue
		}
		diff := items[a].Elo - items[b].Elo
		if diff < 0 {
			diff = -diff
		}
		// First minimal draw wins; later ties do not displace it.
		if bestA < 0 || diff < bestDiff {
			bestA, bestB, bestDiff = a, b, diff
		}
	}

	// Every draw collided (tiny or degenerate collections): take the
	// first two in collection order.
	if bestA < 0 {
		return 0, 1, true
	}
	return bestA, bestB, true
}
