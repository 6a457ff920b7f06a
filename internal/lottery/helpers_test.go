package lottery

import (
	"github.com/google/uuid"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// seqSource replays a fixed list of rolls, cycling when exhausted
type seqSource struct {
	values []float64
	i      int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func ptr[T any](v T) *T {
	return &v
}

func fixedEntry(name string, percent float64, stock *int, active bool) domain.PoolEntry {
	return domain.PoolEntry{
		Prize: domain.Prize{
			ID:       uuid.New(),
			Name:     name,
			Stock:    stock,
			IsActive: active,
		},
		Probability: domain.Probability{
			Mode:         domain.ProbabilityModeFixed,
			FixedPercent: ptr(percent),
		},
	}
}

func starEntry(name string, stars domain.StarPercents) domain.PoolEntry {
	return domain.PoolEntry{
		Prize: domain.Prize{
			ID:       uuid.New(),
			Name:     name,
			IsActive: true,
		},
		Probability: domain.Probability{
			Mode:         domain.ProbabilityModeStarBased,
			StarPercents: &stars,
		},
	}
}

// scenarioPool is the reference pool: C is out of stock and must be skipped
func scenarioPool() []domain.PoolEntry {
	return []domain.PoolEntry{
		fixedEntry("A", 40, nil, true),
		fixedEntry("B", 35, ptr(1), true),
		fixedEntry("C", 20, ptr(0), true),
		fixedEntry("D", 5, nil, true),
	}
}
