package lottery

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

func TestEngine_ScenarioDraws(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		wantName string
		wantIdx  int
	}{
		{"roll in first bucket", 0.3, "A", 0},
		{"roll at first boundary picks earlier", 0.5, "A", 0},
		{"roll in second bucket", 0.6, "B", 1},
		{"roll in last bucket", 0.95, "D", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(&seqSource{values: []float64{tt.roll, 0.5, 0.5}})

			out, err := engine.Spin(scenarioPool(), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, out.Entry.Prize.Name)
			assert.Equal(t, tt.wantIdx, out.LogicalSegment)
			assert.Equal(t, tt.wantIdx, out.VisualSegment)
			assert.Equal(t, tt.roll, out.Roll)
		})
	}
}

func TestEngine_StarScenarioAlwaysWins(t *testing.T) {
	entries := []domain.PoolEntry{
		starEntry("W", domain.StarPercents{Star1: 80, Star2: 80, Star3: 80, Star4: 80, Star5: 0}),
		starEntry("X", domain.StarPercents{Star1: 5, Star2: 5, Star3: 5, Star4: 5, Star5: 60}),
		starEntry("Y", domain.StarPercents{Star1: 15, Star2: 15, Star3: 15, Star4: 15, Star5: 0}),
	}
	engine := NewEngine(SourceFunc(rand.New(rand.NewPCG(7, 11)).Float64))

	for i := 0; i < 1000; i++ {
		out, err := engine.Spin(entries, 5)
		require.NoError(t, err)
		require.Equal(t, "X", out.Entry.Prize.Name)
	}
}

func TestEngine_ExcludedPrizesNeverWin(t *testing.T) {
	engine := NewEngine(SourceFunc(rand.New(rand.NewPCG(3, 5)).Float64))

	for i := 0; i < 2000; i++ {
		out, err := engine.Spin(scenarioPool(), 0)
		require.NoError(t, err)
		assert.NotEqual(t, "C", out.Entry.Prize.Name)
	}
}

func TestSelectIndex_Boundaries(t *testing.T) {
	weighted := []WeightedEntry{
		{Weight: 0.25},
		{Weight: 0.25},
		{Weight: 0.5},
	}

	assert.Equal(t, 0, SelectIndex(weighted, 0))
	assert.Equal(t, 0, SelectIndex(weighted, 0.25))
	assert.Equal(t, 1, SelectIndex(weighted, 0.2500001))
	assert.Equal(t, 2, SelectIndex(weighted, 0.9999999))
}

func TestSelectIndex_SkipsZeroWeights(t *testing.T) {
	weighted := []WeightedEntry{
		{Weight: 0},
		{Weight: 1},
		{Weight: 0},
	}

	assert.Equal(t, 1, SelectIndex(weighted, 0))
	assert.Equal(t, 1, SelectIndex(weighted, 0.5))
	assert.Equal(t, 1, SelectIndex(weighted, 0.9999999))
}

func TestSelectIndex_RoundingFallsBackToLastPositive(t *testing.T) {
	weighted := []WeightedEntry{
		{Weight: 0.3},
		{Weight: 0.3},
		{Weight: 0.3999999},
		{Weight: 0},
	}

	assert.Equal(t, 2, SelectIndex(weighted, 0.9999999999))
}

func TestVisualSegment_WrapsAroundWheel(t *testing.T) {
	for idx := 0; idx < 100; idx++ {
		assert.Equal(t, idx%10, VisualSegment(idx))
	}
	assert.Equal(t, 2, VisualSegment(12))
}

func TestEngine_LongPoolMapsOntoTenSegments(t *testing.T) {
	entries := make([]domain.PoolEntry, 13)
	for i := range entries {
		entries[i] = fixedEntry("p", 1, nil, true)
	}
	// 0.99 is past 12/13 so the final entry wins
	engine := NewEngine(&seqSource{values: []float64{0.99, 0, 0}})

	out, err := engine.Spin(entries, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, out.LogicalSegment)
	assert.Equal(t, 2, out.VisualSegment)
}

func TestWheelAngle_Range(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 42))

	for i := 0; i < 5000; i++ {
		segment := r.IntN(WheelSegments)
		offsetRoll, spinsRoll := r.Float64(), r.Float64()

		angle := WheelAngle(segment, offsetRoll, spinsRoll)

		spins := int(angle) / 360
		assert.GreaterOrEqual(t, spins, 5)
		assert.LessOrEqual(t, spins, 7)

		within := angle - float64(spins)*360 - float64(segment)*SegmentDegrees
		assert.GreaterOrEqual(t, within, 3.6-epsilon)
		assert.Less(t, within, 32.4)
	}
}

func TestWheelAngle_Extremes(t *testing.T) {
	assert.InDelta(t, 5*360+3.6, WheelAngle(0, 0, 0), epsilon)
	assert.InDelta(t, 7*360+9*36+32.4, WheelAngle(9, 0.9999999999, 0.9999999999), 1e-6)
	assert.InDelta(t, 6*360+4*36+18, WheelAngle(4, 0.5, 0.5), epsilon)
}

func TestEngine_ConsumesRollsInOrder(t *testing.T) {
	// roll, offset, spins
	engine := NewEngine(&seqSource{values: []float64{0.1, 0.0, 0.99}})

	out, err := engine.Spin([]domain.PoolEntry{fixedEntry("only", 100, nil, true)}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 7*360+3.6, out.Angle, epsilon)

	spin := out.SpinResult()
	assert.Equal(t, out.Angle, spin.Angle)
	assert.Equal(t, 0, spin.Segment)
	assert.Equal(t, 0, spin.VisualSegment)
}

func TestNewEngine_NilSourceUsesDefault(t *testing.T) {
	engine := NewEngine(nil)
	out, err := engine.Spin(scenarioPool(), 0)
	require.NoError(t, err)
	assert.NotEqual(t, "C", out.Entry.Prize.Name)
}

func BenchmarkEngineSpin(b *testing.B) {
	entries := make([]domain.PoolEntry, 10)
	for i := range entries {
		entries[i] = fixedEntry("p", float64(i+1), nil, true)
	}
	engine := NewEngine(nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Spin(entries, 0); err != nil {
			b.Fatal(err)
		}
	}
}
