// Package engine owns the player pose and maze of one game session. It
// advances the pose from discrete movement intents and projects the view
// from the player's eye into a character frame.
//
// A State is not safe for concurrent use: Update and Render must not overlap.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Defaults for a new session.
const (
	DefaultMazeSize = 41
	MoveSpeed       = 0.05        // grid units per tick
	TurnSpeed       = 0.05        // radians per tick
	FOV             = math.Pi / 3 // 60 degrees
	MaxDistance     = 20.0        // grid units
	StartX          = 1.5
	StartY          = 1.5
	StartAngle      = 0.0
)

// Per-tick limits. A step longer than half a cell could cross a wall
// between two collision checks.
const (
	MaxMoveSpeed = 0.5
	MaxTurnSpeed = 0.5
)

const fullTurn = 2 * math.Pi

// ErrNoMaze is returned when a decoded state carries no maze grid.
var ErrNoMaze = errors.New("engine: state has no maze")

// ErrBadParams wraps every Params validation failure.
var ErrBadParams = errors.New("engine: bad params")

// Params tunes movement and projection.
type Params struct {
	MoveSpeed   float64
	TurnSpeed   float64
	FOV         float64
	MaxDistance float64
}

// DefaultParams returns the standard movement and projection settings.
func DefaultParams() Params {
	return Params{
		MoveSpeed:   MoveSpeed,
		TurnSpeed:   TurnSpeed,
		FOV:         FOV,
		MaxDistance: MaxDistance,
	}
}

// Validate rejects settings that would let the player skip over a wall in a
// single tick or produce a degenerate projection.
func (p Params) Validate() error {
	switch {
	case p.MoveSpeed <= 0 || p.MoveSpeed > MaxMoveSpeed:
		return fmt.Errorf("%w: move speed %v outside (0, %v]", ErrBadParams, p.MoveSpeed, MaxMoveSpeed)
	case p.TurnSpeed <= 0 || p.TurnSpeed > MaxTurnSpeed:
		return fmt.Errorf("%w: turn speed %v outside (0, %v]", ErrBadParams, p.TurnSpeed, MaxTurnSpeed)
	case p.FOV <= 0 || p.FOV >= math.Pi:
		return fmt.Errorf("%w: field of view %v outside (0, π)", ErrBadParams, p.FOV)
	case p.MaxDistance <= 0:
		return fmt.Errorf("%w: max distance %v must be positive", ErrBadParams, p.MaxDistance)
	}
	return nil
}

// PlayerInput holds the six movement intents for one tick.
type PlayerInput struct {
	Forward   bool `json:"forward"`
	Backward  bool `json:"backward"`
	Left      bool `json:"left"`
	Right     bool `json:"right"`
	TurnLeft  bool `json:"turn_left"`
	TurnRight bool `json:"turn_right"`
}

// State is the mutable game state: the player pose and the maze.
// Its JSON form is exactly {x, y, angle, maze}.
type State struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Angle float64    `json:"angle"`
	Maze  *maze.Maze `json:"maze"`

	params Params
}

// NewGameState creates a session with a freshly generated default-size maze
// and the player at the entrance facing +x.
func NewGameState() *State {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return New(maze.Generate(DefaultMazeSize, DefaultMazeSize, rng), DefaultParams())
}

// New places the player at the entrance of m.
func New(m *maze.Maze, params Params) *State {
	return &State{
		X:      StartX,
		Y:      StartY,
		Angle:  StartAngle,
		Maze:   m,
		params: params,
	}
}

// Params returns the movement and projection settings in use.
func (s *State) Params() Params {
	return s.params
}

// Cell returns the maze cell the player stands in.
func (s *State) Cell() maze.Point {
	return maze.Point{X: int(s.X), Y: int(s.Y)}
}

// AtExit reports whether the player stands in the maze exit cell.
func (s *State) AtExit() bool {
	return s.Cell() == s.Maze.Exit()
}

// HeadingDegrees returns the heading in whole degrees, 0 facing +x.
func (s *State) HeadingDegrees() int {
	return int(math.Round(s.Angle*180/math.Pi)) % 360
}

// Update applies one tick of input: turning first, then each movement
// intent on its own. Intents are not combined into a diagonal; each one is
// tried separately and only committed when its target cell is open.
func (s *State) Update(in PlayerInput) {
	if in.TurnLeft {
		s.Angle -= s.params.TurnSpeed
	}
	if in.TurnRight {
		s.Angle += s.params.TurnSpeed
	}
	s.Angle = normalizeAngle(s.Angle)

	dx := math.Cos(s.Angle) * s.params.MoveSpeed
	dy := math.Sin(s.Angle) * s.params.MoveSpeed

	if in.Forward {
		s.tryMove(dx, dy)
	}
	if in.Backward {
		s.tryMove(-dx, -dy)
	}
	if in.Left {
		a := s.Angle - math.Pi/2
		s.tryMove(math.Cos(a)*s.params.MoveSpeed, math.Sin(a)*s.params.MoveSpeed)
	}
	if in.Right {
		a := s.Angle + math.Pi/2
		s.tryMove(math.Cos(a)*s.params.MoveSpeed, math.Sin(a)*s.params.MoveSpeed)
	}
}

func (s *State) tryMove(dx, dy float64) {
	nx, ny := s.X+dx, s.Y+dy
	if s.Maze.WallAt(nx, ny) {
		return
	}
	s.X, s.Y = nx, ny
}

// normalizeAngle folds a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	// -ε + 2π rounds to 2π
	if a >= fullTurn {
		a = 0
	}
	return a
}

// UnmarshalJSON decodes the structural form and restores default params.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("engine: decode state: %w", err)
	}
	if decoded.Maze == nil {
		return ErrNoMaze
	}
	*s = State(decoded)
	s.Angle = normalizeAngle(s.Angle)
	s.params = DefaultParams()
	return nil
}
