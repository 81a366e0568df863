// Package maze generates and queries rectangular wall/passage grids.
//
// Mazes are carved with an iterative recursive backtracker over a lattice of
// odd coordinates, producing one-cell-wide corridors separated by one-cell
// walls. A Maze is immutable after construction and safe to share read-only.
package maze

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kamstrup/intmap"
)

// Cell values stored in the grid.
const (
	Wall    = true
	Passage = false
)

// MinSize is the smallest width or height Generate supports.
const MinSize = 5

var (
	// ErrInvalidSize is returned when generation dimensions are even or too small.
	ErrInvalidSize = errors.New("maze: dimensions must be odd and at least 5")

	// ErrRaggedGrid is returned when an explicit grid is empty or not rectangular.
	ErrRaggedGrid = errors.New("maze: grid must be rectangular and non-empty")
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Maze is a width×height occupancy grid. true means wall.
type Maze struct {
	width  int
	height int
	cells  [][]bool // indexed [y][x]
}

// lattice steps between carved cells; the wall between is at half the step.
var lattice = []Point{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// New validates the dimensions and generates a maze.
// A zero seed uses the current time.
func New(width, height int, seed int64) (*Maze, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Generate(width, height, rand.New(rand.NewSource(seed))), nil
}

// ValidateSize reports whether width and height can be generated.
func ValidateSize(width, height int) error {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// Generate carves a maze with the recursive backtracker.
// width and height must be odd and at least MinSize; callers are expected to
// check with ValidateSize first.
func Generate(width, height int, rng *rand.Rand) *Maze {
	m := filled(width, height)

	key := func(p Point) int { return p.Y*width + p.X }
	visited := intmap.New[int, struct{}](width * height / 4)

	start := m.Start()
	m.cells[start.Y][start.X] = Passage
	visited.Put(key(start), struct{}{})
	stack := []Point{start}

	candidates := make([]Point, 0, len(lattice))
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range lattice {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			// Keep a margin of 2 so neighbours stay on the interior lattice.
			if next.X < 1 || next.X > width-2 || next.Y < 1 || next.Y > height-2 {
				continue
			}
			if _, seen := visited.Get(key(next)); seen {
				continue
			}
			candidates = append(candidates, next)
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		m.cells[(curr.Y+next.Y)/2][(curr.X+next.X)/2] = Passage
		m.cells[next.Y][next.X] = Passage
		visited.Put(key(next), struct{}{})
		stack = append(stack, next)
	}

	exit := m.Exit()
	m.cells[exit.Y][exit.X] = Passage

	return m
}

// FromCells builds a maze from an explicit grid indexed [y][x].
// The grid is copied.
func FromCells(cells [][]bool) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrRaggedGrid
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
	}

	m := &Maze{width: width, height: len(cells), cells: make([][]bool, len(cells))}
	for y, row := range cells {
		m.cells[y] = append([]bool(nil), row...)
	}
	return m, nil
}

// filled returns a maze where every cell is a wall.
func filled(width, height int) *Maze {
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return &Maze{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Start returns the entrance cell.
func (m *Maze) Start() Point {
	return Point{1, 1}
}

// Exit returns the exit cell, one lattice step from the far corner.
func (m *Maze) Exit() Point {
	return Point{m.width - 2, m.height - 2}
}

// InBounds reports whether (x, y) is a cell of the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsWall reports whether the cell at (x, y) is a wall.
// Cells outside the grid count as walls.
func (m *Maze) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.cells[y][x]
}

// WallAt reports whether the continuous position (x, y) lies in a wall cell.
// Coordinates are truncated to cell indices.
func (m *Maze) WallAt(x, y float64) bool {
	if x < 0 || y < 0 {
		return true
	}
	return m.IsWall(int(x), int(y))
}

// Cells returns a copy of the grid indexed [y][x].
func (m *Maze) Cells() [][]bool {
	out := make([][]bool, m.height)
	for y, row := range m.cells {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// String renders the grid with '#' for walls and ' ' for passages.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y, row := range m.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, wall := range row {
			if wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// MarshalJSON encodes the maze as a rectangular array of rows.
func (m *Maze) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.cells)
}

// UnmarshalJSON decodes a rectangular array of rows.
func (m *Maze) UnmarshalJSON(data []byte) error {
	var cells [][]bool
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("maze: decode grid: %w", err)
	}
	decoded, err := FromCells(cells)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
