package lottery

// Wheel geometry
const (
	// WheelSegments is the fixed number of visual segments on the wheel
	WheelSegments = 10
	// SegmentDegrees is the arc covered by one segment
	SegmentDegrees = 360.0 / WheelSegments
	// MinSpins is the minimum number of full turns before stopping
	MinSpins = 5
	// SpinVariants is how many full-turn counts are possible (5, 6 or 7)
	SpinVariants = 3
	// OffsetMarginRatio keeps the pointer away from segment borders
	OffsetMarginRatio = 0.1
)

// Pool completeness
const (
	// FullProbability is the expected sum of configured percentages
	FullProbability = 100.0
	// CompletenessTolerance is the allowed drift from FullProbability
	CompletenessTolerance = 0.1
)

