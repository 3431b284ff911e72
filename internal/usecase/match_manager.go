package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type matchRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// NewMatch describes a match to start. Zero dimensions use the configured
// board; players without an ID get a generated one.
type NewMatch struct {
	Height int                `json:"height"`
	Width  int                `json:"width"`
	First  connectfour.Player `json:"first"`
	Second connectfour.Player `json:"second"`
}

// MatchManager hosts one engine per match. Every mutation goes through
// matchRepo.Update, so concurrent requests on one match are applied one at a
// time.
type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	board     config.Board

	now   func() time.Time
	newID func() string
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, board config.Board) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match_manager"),
		matchRepo: matchRepo,
		board:     board,

		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (that *MatchManager) CreateMatch(ctx context.Context, req NewMatch) (*entity.Game, error) {
	log := that.logger.With("method", "CreateMatch")

	height, width := req.Height, req.Width
	if height == 0 {
		height = that.board.Height
	}
	if width == 0 {
		width = that.board.Width
	}

	first, second := req.First, req.Second
	if first.ID == "" {
		first.ID = that.newID()
	}
	if second.ID == "" {
		second.ID = that.newID()
	}

	match, err := connectfour.New(height, width, &first, &second)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	game := entity.NewGame(that.newID(), match, that.now())
	if err = that.matchRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match created", "matchID", game.ID, "height", height, "width", width)

	return game, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return game, nil
}

// CellAt returns the occupant of a cell, nil when it is empty.
func (that *MatchManager) CellAt(ctx context.Context, id string, row, col int) (*connectfour.Player, error) {
	game, err := that.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	player, err := game.Match.CellAt(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to read cell: %w", err)
	}

	return player, nil
}

func (that *MatchManager) DropPiece(ctx context.Context, id string, column int) (*entity.Game, connectfour.MoveResult, error) {
	log := that.logger.With("method", "DropPiece", "matchID", id, "column", column)

	var result connectfour.MoveResult
	game, err := that.matchRepo.Update(ctx, id, func(game *entity.Game) error {
		if err := game.ConfirmInProgress(); err != nil {
			return err
		}

		var err error
		if result, err = game.Match.DropPiece(column); err != nil {
			return err //nolint: wrapcheck // wrapped once below
		}

		game.Touch(that.now())

		return nil
	})
	if err != nil {
		log.Debug("move rejected", "error", err)
		return nil, connectfour.MoveResult{}, fmt.Errorf("failed to drop piece: %w", err)
	}

	if result.Outcome.State != connectfour.StateInProgress {
		log.Info("match finished", "state", result.Outcome.State, "message", result.Outcome.Message())
	}

	return game, result, nil
}

// RestartMatch clears the board and keeps the players and board size.
func (that *MatchManager) RestartMatch(ctx context.Context, id string) (*entity.Game, error) {
	log := that.logger.With("method", "RestartMatch", "matchID", id)

	game, err := that.matchRepo.Update(ctx, id, func(game *entity.Game) error {
		if game.Match == nil {
			return fmt.Errorf("match %s has no board", id)
		}

		if err := game.Match.Restart(); err != nil {
			return err //nolint: wrapcheck // wrapped once below
		}

		game.Touch(that.now())

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restart match: %w", err)
	}

	log.Info("match restarted")

	return game, nil
}

func (that *MatchManager) EndMatch(ctx context.Context, id string) error {
	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end match: %w", err)
	}

	that.logger.Info("match ended", "method", "EndMatch", "matchID", id)

	return nil
}
