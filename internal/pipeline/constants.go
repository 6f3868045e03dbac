package pipeline

// Ordering selects the composition order of the preprocessing stages.
// NOTE: These values mirror gestures.Order because internal packages cannot
// import the main package (would create import cycle).
type Ordering int

const (
	OrderingUnset Ordering = iota
	OrderingRescaleNormalizeFilter
	OrderingFilterRescaleNormalize
	OrderingRescaleNormalize
)

// stepFilter is a placeholder resolved to Params.Filter at build time.
const stepFilter StageType = -1

// orderings maps each ordering to its stage sequence.
var orderings = map[Ordering][]StageType{
	OrderingRescaleNormalizeFilter: {StageRescale, StageNormalize, stepFilter},
	OrderingFilterRescaleNormalize: {stepFilter, StageRescale, StageNormalize},
	OrderingRescaleNormalize:       {StageRescale, StageNormalize},
}

// Pipeline stage capacities and sizes
const (
	defaultStageCapacity = 4 // Stretch plus three transforms
)
