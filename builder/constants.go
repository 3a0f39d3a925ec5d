package builder

// Method tags prefix constructor errors.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes per topology.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarNodes         = 2
	MinWheelNodes        = 4
	MinCompleteNodes     = 1
	MinGridDim           = 1
	MinRandomSparseNodes = 1
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
