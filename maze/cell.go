package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one side of a cell. Its value is the bit used for that side in a wall mask.
type Direction uint8

const (
	North Direction = 1 << iota // North side, bit 0.
	East                        // East side, bit 1.
	South                       // South side, bit 2.
	West                        // West side, bit 3.
)

// Directions lists every side in the order neighbors are explored.
var Directions = [4]Direction{North, East, South, West}

var deltas = map[Direction]Position{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

// Opposite returns the side facing d across a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	return 0
}

// Valid reports whether d names exactly one side.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

// String returns the single letter used for d in persisted paths.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a path letter (N, E, S or W) into a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'N':
		return North, nil
	case 'E':
		return East, nil
	case 'S':
		return South, nil
	case 'W':
		return West, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidPath, r)
}

// Walls is the 4-bit wall mask of a cell. A set bit means the side is walled.
type Walls uint8

const (
	// NoWalls is a cell open on every side.
	NoWalls Walls = 0
	// AllWalls is a cell closed on every side.
	AllWalls = Walls(North | East | South | West)
)

const hexDigits = "0123456789ABCDEF"

// Has reports whether the side d is walled.
func (w Walls) Has(d Direction) bool {
	return w&Walls(d) != 0
}

// Without returns w with the side d cleared.
func (w Walls) Without(d Direction) Walls {
	return w &^ Walls(d)
}

// With returns w with the side d set.
func (w Walls) With(d Direction) Walls {
	return w | Walls(d)
}

// Hex returns the mask as the uppercase hexadecimal digit used by the codec.
func (w Walls) Hex() byte {
	return hexDigits[w&AllWalls]
}

// Position is a cell coordinate. X grows eastwards and Y grows southwards.
type Position struct {
	X int // Column index of the cell
	Y int // Row index of the cell
}

// Step returns the position one cell away in direction d. The result may be out of bounds.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// DirectionTo returns the side of p that faces q when the two are orthogonally adjacent.
func (p Position) DirectionTo(q Position) (Direction, bool) {
	for _, d := range Directions {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}

// String renders the position as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ParsePosition parses an "x,y" pair. Surrounding spaces are ignored.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q is not an x,y pair", ErrInvalidCoordinate, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad x in %q", ErrInvalidCoordinate, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: bad y in %q", ErrInvalidCoordinate, s)
	}

	return Position{X: x, Y: y}, nil
}
