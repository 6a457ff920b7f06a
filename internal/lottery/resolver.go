package lottery

import (
	"math"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// WeightedEntry is a pool entry with its normalized draw weight
type WeightedEntry struct {
	Entry  domain.PoolEntry
	Weight float64
}

// Eligible keeps active entries that still have stock, in input order
func Eligible(entries []domain.PoolEntry) []domain.PoolEntry {
	eligible := make([]domain.PoolEntry, 0, len(entries))
	for _, e := range entries {
		if e.Prize.Eligible() {
			eligible = append(eligible, e)
		}
	}
	return eligible
}

// Resolve turns pool entries into normalized weights summing to 1.
// A rating of 0 means no rating was supplied.
func Resolve(entries []domain.PoolEntry, rating int) ([]WeightedEntry, error) {
	eligible := Eligible(entries)
	if len(eligible) == 0 {
		return nil, domain.ErrNoPrizesAvailable
	}

	weighted := make([]WeightedEntry, len(eligible))
	var total float64
	for i, e := range eligible {
		w := rawWeight(e.Probability, rating, len(eligible))
		weighted[i] = WeightedEntry{Entry: e, Weight: w}
		total += w
	}

	if total <= 0 {
		return nil, domain.ErrZeroProbabilityMass
	}

	for i := range weighted {
		weighted[i].Weight /= total
	}
	return weighted, nil
}

// UsesStarFallback reports whether star-based entries were weighted uniformly
// because no rating was supplied
func UsesStarFallback(weighted []WeightedEntry, rating int) bool {
	if rating != 0 {
		return false
	}
	for _, w := range weighted {
		if w.Entry.Probability.Mode == domain.ProbabilityModeStarBased {
			return true
		}
	}
	return false
}

func rawWeight(p domain.Probability, rating, eligibleCount int) float64 {
	var w float64
	switch p.Mode {
	case domain.ProbabilityModeStarBased:
		if rating == 0 {
			// Uniform share is kept for star entries drawn without a rating.
			w = FullProbability / float64(eligibleCount)
		} else if p.StarPercents != nil {
			w = p.StarPercents.ForRating(rating)
		}
	default:
		if p.FixedPercent != nil {
			w = *p.FixedPercent
		}
	}

	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}
