package engine

// offset is a (row, col) step.
type offset [2]int

// Step tables. The order fixes the order moves are generated in.
var (
	straightDirs = []offset{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([]offset{}, straightDirs...), diagonalDirs...)
	knightSteps  = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)
