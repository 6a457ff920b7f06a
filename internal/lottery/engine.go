package lottery

import (
	"math"
	"sort"

	"github.com/osse101/ReviewLottery_Go/internal/domain"
)

// Outcome is a single draw: the winning entry and how the wheel lands on it
type Outcome struct {
	Entry          domain.PoolEntry
	LogicalSegment int
	VisualSegment  int
	Angle          float64
	Roll           float64
	StarFallback   bool
}

// SpinResult converts the outcome to the stored wheel result
func (o Outcome) SpinResult() domain.SpinResult {
	return domain.SpinResult{
		Angle:         o.Angle,
		Segment:       o.LogicalSegment,
		VisualSegment: o.VisualSegment,
	}
}

// Engine samples prizes and computes the wheel stop angle
type Engine struct {
	src Source
}

// NewEngine creates an engine. A nil source falls back to DefaultSource.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = DefaultSource()
	}
	return &Engine{src: src}
}

// Spin resolves weights for the rating and draws one entry
func (e *Engine) Spin(entries []domain.PoolEntry, rating int) (Outcome, error) {
	weighted, err := Resolve(entries, rating)
	if err != nil {
		return Outcome{}, err
	}
	out := e.Draw(weighted)
	out.StarFallback = UsesStarFallback(weighted, rating)
	return out, nil
}

// Draw picks exactly one entry from normalized weights.
// Random values are consumed in a fixed order: roll, offset, spins.
func (e *Engine) Draw(weighted []WeightedEntry) Outcome {
	roll := e.src.Float64()
	idx := SelectIndex(weighted, roll)
	visual := VisualSegment(idx)

	return Outcome{
		Entry:          weighted[idx].Entry,
		LogicalSegment: idx,
		VisualSegment:  visual,
		Angle:          WheelAngle(visual, e.src.Float64(), e.src.Float64()),
		Roll:           roll,
	}
}

// SelectIndex returns the first index whose cumulative weight reaches roll.
// On an exact tie the earlier entry wins. Zero-weight entries are never selected,
// and a roll left above the final cumulative by rounding maps to the last positive entry.
func SelectIndex(weighted []WeightedEntry, roll float64) int {
	cumulative := make([]float64, len(weighted))
	var sum float64
	for i, w := range weighted {
		sum += w.Weight
		cumulative[i] = sum
	}

	idx := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] >= roll
	})
	for idx < len(weighted) && weighted[idx].Weight <= 0 {
		idx++
	}
	if idx < len(weighted) {
		return idx
	}
	return lastPositive(weighted)
}

func lastPositive(weighted []WeightedEntry) int {
	for i := len(weighted) - 1; i >= 0; i-- {
		if weighted[i].Weight > 0 {
			return i
		}
	}
	return len(weighted) - 1
}

// VisualSegment maps a logical prize index onto the fixed wheel
func VisualSegment(logicalIndex int) int {
	return logicalIndex % WheelSegments
}

// WheelAngle computes the stop angle in degrees for a segment.
// offsetRoll and spinsRoll are uniform in [0, 1).
func WheelAngle(segment int, offsetRoll, spinsRoll float64) float64 {
	spins := MinSpins + int(math.Floor(spinsRoll*SpinVariants))
	if spins >= MinSpins+SpinVariants {
		spins = MinSpins + SpinVariants - 1
	}
	margin := SegmentDegrees * OffsetMarginRatio
	offset := offsetRoll*(SegmentDegrees-2*margin) + margin
	return float64(spins)*360 + float64(segment)*SegmentDegrees + offset
}
