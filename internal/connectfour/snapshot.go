package connectfour

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

// Snapshot is the complete state of an Engine in serialisable form.
type Snapshot struct {
	Height  int        `json:"height"`
	Width   int        `json:"width"`
	Grid    [][]Seat   `json:"grid"`
	Players [2]*Player `json:"players"`
	Turn    Seat       `json:"turn"`
	State   State      `json:"state"`
	Winner  Seat       `json:"winner,omitempty"`
}

func (that *Engine) Snapshot() Snapshot {
	return Snapshot{
		Height:  that.height,
		Width:   that.width,
		Grid:    copyGrid(that.grid),
		Players: [2]*Player{copyPlayer(that.players[0]), copyPlayer(that.players[1])},
		Turn:    that.turn,
		State:   that.state,
		Winner:  that.winner,
	}
}

func copyPlayer(player *Player) *Player {
	if player == nil {
		return nil
	}

	cp := *player

	return &cp
}

// Restore rebuilds an engine from a snapshot after checking that the
// snapshot describes a reachable position.
func Restore(snapshot Snapshot) (*Engine, error) {
	if snapshot.Height < 1 || snapshot.Width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, snapshot.Height, snapshot.Width)
	}

	first, second := snapshot.Players[0], snapshot.Players[1]
	if first == nil || second == nil || first == second {
		return nil, apperror.ErrInvalidPlayers
	}

	moves, err := validateGrid(snapshot)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		height:  snapshot.Height,
		width:   snapshot.Width,
		grid:    copyGrid(snapshot.Grid),
		players: snapshot.Players,
		turn:    snapshot.Turn,
		state:   snapshot.State,
		moves:   moves,
	}

	if snapshot.Turn != SeatFirst && snapshot.Turn != SeatSecond {
		return nil, fmt.Errorf("%w: turn seat %d", apperror.ErrCorruptSnapshot, snapshot.Turn)
	}

	if err = validateState(engine, snapshot); err != nil {
		return nil, err
	}

	return engine, nil
}

// validateState checks the recorded state against the board: a running match
// has no line and room to move, a draw is a full board without a line, and
// only the winner of a won match has a line.
func validateState(engine *Engine, snapshot Snapshot) error {
	firstLine := winningLine(engine.grid, SeatFirst)
	secondLine := winningLine(engine.grid, SeatSecond)
	full := isFull(engine.grid)

	switch snapshot.State {
	case StateInProgress:
		if firstLine != nil || secondLine != nil {
			return fmt.Errorf("%w: match in progress already has a line", apperror.ErrCorruptSnapshot)
		}
		if full {
			return fmt.Errorf("%w: match in progress on a full board", apperror.ErrCorruptSnapshot)
		}
	case StateDraw:
		if firstLine != nil || secondLine != nil {
			return fmt.Errorf("%w: drawn match has a line", apperror.ErrCorruptSnapshot)
		}
		if !full {
			return fmt.Errorf("%w: drawn match on a board with empty cells", apperror.ErrCorruptSnapshot)
		}
	case StateWon:
		if snapshot.Winner != SeatFirst && snapshot.Winner != SeatSecond {
			return fmt.Errorf("%w: winner seat %d", apperror.ErrCorruptSnapshot, snapshot.Winner)
		}

		engine.winner = snapshot.Winner
		engine.line = winningLine(engine.grid, snapshot.Winner)
		if engine.line == nil {
			return fmt.Errorf("%w: winner seat %d has no line", apperror.ErrCorruptSnapshot, snapshot.Winner)
		}
		if winningLine(engine.grid, snapshot.Winner.other()) != nil {
			return fmt.Errorf("%w: both seats have a line", apperror.ErrCorruptSnapshot)
		}
	default:
		return fmt.Errorf("%w: unknown state %q", apperror.ErrCorruptSnapshot, snapshot.State)
	}

	return nil
}

// validateGrid checks the shape, seat values and gravity of the grid and
// returns the number of pieces on it.
func validateGrid(snapshot Snapshot) (int, error) {
	if len(snapshot.Grid) != snapshot.Height {
		return 0, fmt.Errorf("%w: %d rows, want %d", apperror.ErrCorruptSnapshot, len(snapshot.Grid), snapshot.Height)
	}

	moves := 0
	for y, row := range snapshot.Grid {
		if len(row) != snapshot.Width {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrCorruptSnapshot, y, len(row), snapshot.Width)
		}

		for x, cell := range row {
			switch cell {
			case SeatNone:
				continue
			case SeatFirst, SeatSecond:
			default:
				return 0, fmt.Errorf("%w: cell (%d, %d) holds seat %d", apperror.ErrCorruptSnapshot, y, x, cell)
			}

			if y+1 < snapshot.Height && snapshot.Grid[y+1][x] == SeatNone {
				return 0, fmt.Errorf("%w: cell (%d, %d) is floating", apperror.ErrCorruptSnapshot, y, x)
			}

			moves++
		}
	}

	return moves, nil
}

func (that *Engine) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Snapshot())
}

func (that *Engine) UnmarshalJSON(data []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	engine, err := Restore(snapshot)
	if err != nil {
		return err
	}

	*that = *engine

	return nil
}
