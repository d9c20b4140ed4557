package mazeapi

import (
	"time"

	"github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service/i"
)

// PositionDTO is a cell coordinate on the wire.
type PositionDTO struct {
	X *int `json:"x" binding:"required,min=0"`
	Y *int `json:"y" binding:"required,min=0"`
}

func (p PositionDTO) position() maze.Position {
	return maze.Position{X: *p.X, Y: *p.Y}
}

func toPositionDTO(p maze.Position) PositionDTO {
	x, y := p.X, p.Y
	return PositionDTO{X: &x, Y: &y}
}

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width   int          `json:"width" binding:"required,min=1"`
	Height  int          `json:"height" binding:"required,min=1"`
	Entry   *PositionDTO `json:"entry" binding:"required"`
	Exit    *PositionDTO `json:"exit" binding:"required"`
	Perfect bool         `json:"perfect"`
	Seed    *int64       `json:"seed"`
	Loops   int          `json:"loops" binding:"min=0"`
}

func (r GenerateRequest) toService() i.GenerateRequest {
	return i.GenerateRequest{
		Width:   r.Width,
		Height:  r.Height,
		Entry:   r.Entry.position(),
		Exit:    r.Exit.position(),
		Perfect: r.Perfect,
		Seed:    r.Seed,
		Loops:   r.Loops,
	}
}

// MazeResponse describes a stored maze. Rows hold one hex digit of wall bits per cell.
type MazeResponse struct {
	ID            string      `json:"id"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	Entry         PositionDTO `json:"entry"`
	Exit          PositionDTO `json:"exit"`
	Perfect       bool        `json:"perfect"`
	Seed          int64       `json:"seed"`
	Imported      bool        `json:"imported"`
	Rows          []string    `json:"rows"`
	CreatedAt     time.Time   `json:"createdAt"`
	SolutionToken string      `json:"solutionToken,omitempty"`
}

func toMazeResponse(record *domain.MazeRecord, m *maze.Maze, token string) *MazeResponse {
	rows := make([]string, m.Grid.Height())
	line := make([]byte, m.Grid.Width())
	for y := range rows {
		for x := range line {
			line[x] = m.Grid.Walls(maze.Position{X: x, Y: y}).Hex()
		}
		rows[y] = string(line)
	}

	return &MazeResponse{
		ID:            record.ID.String(),
		Width:         record.Width,
		Height:        record.Height,
		Entry:         toPositionDTO(m.Entry),
		Exit:          toPositionDTO(m.Exit),
		Perfect:       record.Perfect,
		Seed:          record.Seed,
		Imported:      record.Imported,
		Rows:          rows,
		CreatedAt:     record.CreatedAt,
		SolutionToken: token,
	}
}

// SolutionResponse holds the shortest entry to exit path of a maze.
type SolutionResponse struct {
	ID     string        `json:"id"`
	Path   string        `json:"path"`
	Length int           `json:"length"`
	Cells  []PositionDTO `json:"cells"`
}

func toSolutionResponse(id string, entry maze.Position, path maze.Path) *SolutionResponse {
	cells := path.Cells(entry)
	dtos := make([]PositionDTO, len(cells))
	for k, c := range cells {
		dtos[k] = toPositionDTO(c)
	}
	return &SolutionResponse{
		ID:     id,
		Path:   path.String(),
		Length: len(path),
		Cells:  dtos,
	}
}
