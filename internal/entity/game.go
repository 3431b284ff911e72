package entity

import (
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

// Game is a hosted match: one engine plus the bookkeeping needed to serve it.
type Game struct {
	ID        string              `json:"id"`
	Match     *connectfour.Engine `json:"match"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewGame(id string, match *connectfour.Engine, now time.Time) *Game {
	return &Game{
		ID:        id,
		Match:     match,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Game) IsFinished() bool {
	return that.Match != nil && that.Match.IsOver()
}

// ConfirmInProgress reports whether the match can still accept moves.
func (that *Game) ConfirmInProgress() error {
	if that.Match == nil || that.IsFinished() {
		return apperror.ErrMatchAlreadyOver
	}

	return nil
}

// Touch records a state change.
func (that *Game) Touch(now time.Time) {
	that.UpdatedAt = now
}
