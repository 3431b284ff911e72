// Package connectfour is the Connect Four rules engine: board, gravity,
// four-in-a-row detection and the turn/status state machine of one match.
//
// An Engine performs no I/O and holds no global state. It is not safe for
// concurrent use; callers serialise calls to one instance.
package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// Player is an opaque contestant identity. Colour is only echoed back to
// renderers.
type Player struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

// Outcome is the status of a match.
type Outcome struct {
	State  State      `json:"state"`
	Winner *Player    `json:"winner,omitempty"`
	Line   []Position `json:"line,omitempty"`
}

// MoveResult describes an accepted drop.
type MoveResult struct {
	Row     int     `json:"row"`
	Column  int     `json:"column"`
	Player  *Player `json:"player"`
	Outcome Outcome `json:"outcome"`
}

type Engine struct {
	height  int
	width   int
	grid    [][]Seat
	players [2]*Player
	turn    Seat
	state   State
	winner  Seat
	line    []Position
	moves   int
}

// New starts a match on a height×width board; first moves first.
func New(height, width int, first, second *Player) (*Engine, error) {
	engine := &Engine{}
	if err := engine.NewMatch(height, width, first, second); err != nil {
		return nil, err
	}

	return engine, nil
}

// NewMatch discards the current match and starts a fresh one. The engine is
// left untouched on error.
func (that *Engine) NewMatch(height, width int, first, second *Player) error {
	if height < 1 || width < 1 {
		return fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, height, width)
	}

	if first == nil || second == nil || first == second {
		return apperror.ErrInvalidPlayers
	}

	*that = Engine{
		height:  height,
		width:   width,
		grid:    newGrid(height, width),
		players: [2]*Player{first, second},
		turn:    SeatFirst,
		state:   StateInProgress,
	}

	return nil
}

// Restart starts a new match with the same board size and players.
func (that *Engine) Restart() error {
	return that.NewMatch(that.height, that.width, that.players[0], that.players[1])
}

// DropPiece drops the current player's piece into column. Any error leaves
// the engine unchanged.
func (that *Engine) DropPiece(column int) (MoveResult, error) {
	if that.state != StateInProgress {
		return MoveResult{}, apperror.ErrMatchAlreadyOver
	}

	if column < 0 || column >= that.width {
		return MoveResult{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	row := findSpotForColumn(that.grid, column)
	if row < 0 {
		return MoveResult{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	mover := that.turn
	that.grid[row][column] = mover
	that.moves++

	switch line := winningLine(that.grid, mover); {
	case line != nil:
		that.state = StateWon
		that.winner = mover
		that.line = line
	case isFull(that.grid):
		that.state = StateDraw
	default:
		that.turn = mover.other()
	}

	return MoveResult{
		Row:     row,
		Column:  column,
		Player:  that.playerAt(mover),
		Outcome: that.Status(),
	}, nil
}

func (that *Engine) Status() Outcome {
	outcome := Outcome{State: that.state}
	if that.state == StateWon {
		outcome.Winner = that.playerAt(that.winner)
		outcome.Line = append([]Position(nil), that.line...)
	}

	return outcome
}

// CellAt returns the player occupying the cell, or nil when it is empty.
func (that *Engine) CellAt(row, col int) (*Player, error) {
	if row < 0 || row >= that.height || col < 0 || col >= that.width {
		return nil, fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	return that.playerAt(that.grid[row][col]), nil
}

// Turn returns the player allowed to move next. After a terminal move it
// still points at the player who made that move.
func (that *Engine) Turn() *Player {
	return that.playerAt(that.turn)
}

func (that *Engine) Players() (*Player, *Player) {
	return that.players[0], that.players[1]
}

func (that *Engine) Height() int { return that.height }

func (that *Engine) Width() int { return that.width }

// Moves is the number of pieces on the board.
func (that *Engine) Moves() int { return that.moves }

// Cells returns a copy of the grid as seats, row 0 first.
func (that *Engine) Cells() [][]Seat {
	return copyGrid(that.grid)
}

func (that *Engine) IsOver() bool {
	return that.state == StateWon || that.state == StateDraw
}

func (that *Engine) playerAt(seat Seat) *Player {
	switch seat {
	case SeatFirst:
		return that.players[0]
	case SeatSecond:
		return that.players[1]
	default:
		return nil
	}
}

// Message is the end-of-match announcement, empty while the match runs or
// when a won outcome names no winner.
func (that Outcome) Message() string {
	switch that.State {
	case StateWon:
		if that.Winner == nil {
			return ""
		}

		name := that.Winner.Color
		if name == "" {
			name = that.Winner.ID
		}
		return fmt.Sprintf("Player %s won!", name)
	case StateDraw:
		return "Tie!"
	default:
		return ""
	}
}
