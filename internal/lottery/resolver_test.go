package lottery

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

const epsilon = 1e-9

func TestResolve_ScenarioNormalization(t *testing.T) {
	weighted, err := Resolve(scenarioPool(), 0)
	require.NoError(t, err)
	require.Len(t, weighted, 3)

	assert.Equal(t, "A", weighted[0].Entry.Prize.Name)
	assert.Equal(t, "B", weighted[1].Entry.Prize.Name)
	assert.Equal(t, "D", weighted[2].Entry.Prize.Name)

	assert.InDelta(t, 0.5, weighted[0].Weight, epsilon)
	assert.InDelta(t, 0.4375, weighted[1].Weight, epsilon)
	assert.InDelta(t, 0.0625, weighted[2].Weight, epsilon)
}

func TestResolve_WeightConservation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		n := 1 + r.IntN(15)
		entries := make([]domain.PoolEntry, n)
		for j := range entries {
			entries[j] = fixedEntry("p", 0.01+r.Float64()*100, nil, true)
		}

		weighted, err := Resolve(entries, 0)
		require.NoError(t, err)

		var sum float64
		for _, w := range weighted {
			sum += w.Weight
		}
		assert.InDelta(t, 1.0, sum, epsilon)
	}
}

func TestResolve_ExclusionCorrectness(t *testing.T) {
	entries := []domain.PoolEntry{
		fixedEntry("inactive", 90, nil, false),
		fixedEntry("empty", 90, ptr(0), true),
		fixedEntry("inactive-empty", 90, ptr(0), false),
		fixedEntry("ok", 10, ptr(3), true),
	}

	weighted, err := Resolve(entries, 0)
	require.NoError(t, err)
	require.Len(t, weighted, 1)
	assert.Equal(t, "ok", weighted[0].Entry.Prize.Name)
	assert.InDelta(t, 1.0, weighted[0].Weight, epsilon)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.PoolEntry
		rating  int
		wantErr error
	}{
		{
			name:    "empty pool",
			entries: nil,
			wantErr: domain.ErrNoPrizesAvailable,
		},
		{
			name: "all excluded",
			entries: []domain.PoolEntry{
				fixedEntry("a", 50, ptr(0), true),
				fixedEntry("b", 50, nil, false),
			},
			wantErr: domain.ErrNoPrizesAvailable,
		},
		{
			name: "all zero",
			entries: []domain.PoolEntry{
				fixedEntry("a", 0, nil, true),
				fixedEntry("b", 0, nil, true),
			},
			wantErr: domain.ErrZeroProbabilityMass,
		},
		{
			name: "negative treated as zero",
			entries: []domain.PoolEntry{
				fixedEntry("a", -10, nil, true),
			},
			wantErr: domain.ErrZeroProbabilityMass,
		},
		{
			name: "star pool with no mass for rating",
			entries: []domain.PoolEntry{
				starEntry("x", domain.StarPercents{Star1: 100}),
			},
			rating:  4,
			wantErr: domain.ErrZeroProbabilityMass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.entries, tt.rating)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_StarBasedUsesRating(t *testing.T) {
	entries := []domain.PoolEntry{
		starEntry("X", domain.StarPercents{Star1: 10, Star2: 10, Star3: 10, Star4: 10, Star5: 60}),
		starEntry("Y", domain.StarPercents{Star1: 90, Star2: 90, Star3: 90, Star4: 90, Star5: 0}),
	}

	weighted, err := Resolve(entries, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, weighted[0].Weight, epsilon)
	assert.InDelta(t, 0.0, weighted[1].Weight, epsilon)

	weighted, err = Resolve(entries, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, weighted[0].Weight, epsilon)
	assert.InDelta(t, 0.9, weighted[1].Weight, epsilon)
}

func TestResolve_StarBasedWithoutRatingFallsBackToUniform(t *testing.T) {
	entries := []domain.PoolEntry{
		starEntry("X", domain.StarPercents{Star5: 100}),
		starEntry("Y", domain.StarPercents{}),
		starEntry("Z", domain.StarPercents{}),
		fixedEntry("F", 25, nil, true),
	}

	weighted, err := Resolve(entries, 0)
	require.NoError(t, err)
	for _, w := range weighted {
		assert.InDelta(t, 0.25, w.Weight, epsilon, w.Entry.Prize.Name)
	}
}

func TestUsesStarFallback(t *testing.T) {
	stars := []domain.PoolEntry{
		starEntry("X", domain.StarPercents{Star5: 100}),
		fixedEntry("F", 50, nil, true),
	}
	fixedOnly := []domain.PoolEntry{fixedEntry("F", 50, nil, true)}

	tests := []struct {
		name    string
		entries []domain.PoolEntry
		rating  int
		want    bool
	}{
		{"star pool without rating", stars, 0, true},
		{"star pool with rating", stars, 4, false},
		{"fixed pool without rating", fixedOnly, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weighted, err := Resolve(tt.entries, tt.rating)
			require.NoError(t, err)
			assert.Equal(t, tt.want, UsesStarFallback(weighted, tt.rating))

			out, err := NewEngine(SourceFunc(func() float64 { return 0.5 })).Spin(tt.entries, tt.rating)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.StarFallback)
		})
	}
}

func TestResolve_NaNWeightIgnored(t *testing.T) {
	entries := []domain.PoolEntry{
		fixedEntry("nan", math.NaN(), nil, true),
		fixedEntry("ok", 10, nil, true),
	}

	weighted, err := Resolve(entries, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, weighted[0].Weight, epsilon)
	assert.InDelta(t, 1.0, weighted[1].Weight, epsilon)
}
