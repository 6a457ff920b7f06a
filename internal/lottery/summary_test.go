package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

func TestSummarize_FixedPool(t *testing.T) {
	tests := []struct {
		name         string
		entries      []domain.PoolEntry
		wantTotal    float64
		wantComplete bool
		wantActive   int
	}{
		{
			name:         "complete",
			entries:      scenarioPool(),
			wantTotal:    100,
			wantComplete: true,
			wantActive:   4,
		},
		{
			name: "inactive entries ignored",
			entries: []domain.PoolEntry{
				fixedEntry("a", 60, nil, true),
				fixedEntry("b", 40, nil, false),
			},
			wantTotal:    60,
			wantComplete: false,
			wantActive:   1,
		},
		{
			name: "within tolerance",
			entries: []domain.PoolEntry{
				fixedEntry("a", 33.33, nil, true),
				fixedEntry("b", 33.33, nil, true),
				fixedEntry("c", 33.33, nil, true),
			},
			wantTotal:    100,
			wantComplete: true,
			wantActive:   3,
		},
		{
			name: "rounded to one decimal",
			entries: []domain.PoolEntry{
				fixedEntry("a", 50.04, nil, true),
				fixedEntry("b", 49.99, nil, true),
			},
			wantTotal:    100,
			wantComplete: true,
			wantActive:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize("pool-1", tt.entries)
			assert.Equal(t, "pool-1", s.PoolID)
			assert.Equal(t, len(tt.entries), s.PrizesCount)
			assert.Equal(t, tt.wantActive, s.ActivePrizes)
			assert.InDelta(t, tt.wantTotal, s.TotalProbability, 1e-9)
			assert.Equal(t, tt.wantComplete, s.IsComplete)
			assert.Nil(t, s.StarTotals)
		})
	}
}

func TestSummarize_StarPool(t *testing.T) {
	entries := []domain.PoolEntry{
		starEntry("x", domain.StarPercents{Star1: 10, Star2: 20, Star3: 30, Star4: 40, Star5: 60}),
		starEntry("y", domain.StarPercents{Star1: 90, Star2: 80, Star3: 70, Star4: 60, Star5: 30}),
	}

	s := Summarize("pool-2", entries)

	assert.InDelta(t, 0, s.TotalProbability, 1e-9)
	assert.InDelta(t, 90, s.StarTotals[5], 1e-9)
	for r := 1; r <= 4; r++ {
		assert.True(t, s.StarComplete[r], "rating %d", r)
	}
	assert.False(t, s.StarComplete[5])
	assert.False(t, s.IsComplete)
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(100))
	assert.True(t, IsComplete(99.95))
	assert.False(t, IsComplete(99.8))
	assert.False(t, IsComplete(100.2))
}
