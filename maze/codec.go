package maze

import (
	"bytes"
	"fmt"
	"strings"
)

// Marshal encodes the maze as text: one row of hex wall masks per grid row, a
// blank separator line, the entry and exit as "x,y" lines and, when the maze
// is solved, the solution as a line of direction letters.
func Marshal(m *Maze) ([]byte, error) {
	if m == nil || m.Grid == nil {
		return nil, fmt.Errorf("%w: nothing to encode", ErrMalformedGrid)
	}

	g := m.Grid
	var buf bytes.Buffer
	buf.Grow((g.Width()+1)*g.Height() + 32 + len(m.Solution))

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			buf.WriteByte(g.Walls(Position{X: x, Y: y}).Hex())
		}
		buf.WriteByte('\n')
	}

	buf.WriteByte('\n')
	buf.WriteString(m.Entry.String() + "\n")
	buf.WriteString(m.Exit.String() + "\n")
	if m.Solved {
		buf.WriteString(m.Solution.String() + "\n")
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes text produced by Marshal. Grid dimensions are taken from
// the data itself; rows must all have the first row's length.
// The grid is reproduced bit for bit, including walls that break symmetry.
func Unmarshal(data []byte) (*Maze, error) {
	return unmarshal(data, 0, 0)
}

// UnmarshalSized is Unmarshal with the grid dimensions known in advance.
func UnmarshalSized(data []byte, width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, width, height)
	}
	return unmarshal(data, width, height)
}

func unmarshal(data []byte, width, height int) (*Maze, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := gridRows(lines)
	if rows == 0 {
		return nil, fmt.Errorf("%w: no grid rows", ErrMalformedGrid)
	}

	if width == 0 {
		width, height = len(lines[0]), rows
	}
	if rows != height {
		return nil, fmt.Errorf("%w: %d rows, expected %d", ErrMalformedGrid, rows, height)
	}

	g, err := decodeRows(lines[:rows], width, height)
	if err != nil {
		return nil, err
	}

	rest := lines[rows:]
	if len(rest) > 0 && rest[0] == "" {
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return nil, fmt.Errorf("%w: missing entry or exit line", ErrInvalidCoordinate)
	}

	m := &Maze{Grid: g}
	if m.Entry, err = decodeEndpoint(g, "entry", rest[0]); err != nil {
		return nil, err
	}
	if m.Exit, err = decodeEndpoint(g, "exit", rest[1]); err != nil {
		return nil, err
	}

	rest = rest[2:]
	if len(rest) > 0 {
		if m.Solution, err = ParsePath(strings.TrimSpace(rest[0])); err != nil {
			return nil, fmt.Errorf("solution line: %w", err)
		}
		end, err := m.Solution.Follow(g, m.Entry)
		if err != nil {
			return nil, fmt.Errorf("solution line: %w", err)
		}
		if end != m.Exit {
			return nil, fmt.Errorf("%w: solution ends at %s, exit is %s", ErrInvalidPath, end, m.Exit)
		}
		m.Solved = true
		rest = rest[1:]
	}
	for _, extra := range rest {
		if strings.TrimSpace(extra) != "" {
			return nil, fmt.Errorf("%w: unexpected trailing line %q", ErrMalformedGrid, extra)
		}
	}

	return m, nil
}

// gridRows returns the number of grid rows. A blank line followed by the entry
// and exit lines ends them; without one they end at the first "x,y" line.
func gridRows(lines []string) int {
	for i, line := range lines {
		if line == "" {
			if i+2 < len(lines) && lines[i+1] != "" && lines[i+2] != "" {
				return i
			}
			break
		}
	}

	for i, line := range lines {
		if line == "" {
			return i
		}
		if _, err := ParsePosition(line); err == nil {
			return i
		}
	}
	return len(lines)
}

func decodeRows(rows []string, width, height int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGrid, err)
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			w, ok := hexValue(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: symbol %q at %d,%d is not a hex digit", ErrMalformedGrid, row[x], x, y)
			}
			g.cells[g.index(Position{X: x, Y: y})] = w
		}
	}

	return g, nil
}

func decodeEndpoint(g *Grid, name, line string) (Position, error) {
	p, err := ParsePosition(line)
	if err != nil {
		return Position{}, fmt.Errorf("%s line: %w", name, err)
	}
	if !g.InBound(p) {
		return Position{}, fmt.Errorf("%w: %s %s outside %dx%d", ErrInvalidCoordinate, name, p, g.Width(), g.Height())
	}
	return p, nil
}

func hexValue(c byte) (Walls, bool) {
	switch {
	case c >= '0' && c <= '9':
		return Walls(c - '0'), true
	case c >= 'A' && c <= 'F':
		return Walls(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return Walls(c-'a') + 10, true
	}
	return 0, false
}
