package lottery

import (
	"math"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// Summarize reports configured probability totals for a pool.
// Fixed totals cover active entries; star totals cover active star-based entries per rating.
func Summarize(poolID string, entries []domain.PoolEntry) domain.PoolSummary {
	summary := domain.PoolSummary{
		PoolID:      poolID,
		PrizesCount: len(entries),
	}

	var fixedTotal float64
	starTotals := make(map[int]float64)
	hasStar := false

	for _, e := range entries {
		if !e.Prize.IsActive {
			continue
		}
		summary.ActivePrizes++

		switch e.Probability.Mode {
		case domain.ProbabilityModeStarBased:
			if e.Probability.StarPercents == nil {
				continue
			}
			hasStar = true
			for r := domain.MinRating; r <= domain.MaxRating; r++ {
				starTotals[r] += e.Probability.StarPercents.ForRating(r)
			}
		default:
			if e.Probability.FixedPercent != nil {
				fixedTotal += *e.Probability.FixedPercent
			}
		}
	}

	summary.TotalProbability = roundTenth(fixedTotal)
	summary.IsComplete = IsComplete(fixedTotal)

	if hasStar {
		summary.StarTotals = make(map[int]float64, domain.MaxRating)
		summary.StarComplete = make(map[int]bool, domain.MaxRating)
		for r := domain.MinRating; r <= domain.MaxRating; r++ {
			summary.StarTotals[r] = roundTenth(starTotals[r])
			summary.StarComplete[r] = IsComplete(starTotals[r])
		}
		if fixedTotal == 0 {
			summary.IsComplete = allTrue(summary.StarComplete)
		}
	}

	return summary
}

// IsComplete reports whether a percentage total is within tolerance of 100
func IsComplete(total float64) bool {
	return math.Abs(total-FullProbability) < CompletenessTolerance
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func allTrue(m map[int]bool) bool {
	for _, ok := range m {
		if !ok {
			return false
		}
	}
	return len(m) > 0
}
