package maze

import "errors"

// Maze errors. Every returned error wraps one of these with the offending
// coordinate or bound, so callers match with errors.Is.
var (
	ErrInvalidConfig     = errors.New("invalid maze configuration")
	ErrInvalidAdjacency  = errors.New("cells are not adjacent")
	ErrMalformedGrid     = errors.New("malformed grid")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidPath       = errors.New("invalid path")
	ErrUnreachableExit   = errors.New("exit is unreachable from entry")
	ErrInconsistentWalls = errors.New("inconsistent walls")
)
