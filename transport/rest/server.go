package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type matchUseCase interface {
	CreateMatch(ctx context.Context, req usecase.NewMatch) (*entity.Game, error)
	GetMatch(ctx context.Context, id string) (*entity.Game, error)
	CellAt(ctx context.Context, id string, row, col int) (*connectfour.Player, error)
	DropPiece(ctx context.Context, id string, column int) (*entity.Game, connectfour.MoveResult, error)
	RestartMatch(ctx context.Context, id string) (*entity.Game, error)
	EndMatch(ctx context.Context, id string) error
}

type Server struct {
	logger       *slog.Logger
	matchUseCase matchUseCase
}

func New(logger *slog.Logger, matchUseCase matchUseCase) *Server {
	return &Server{
		logger:       logger.With("component", "rest"),
		matchUseCase: matchUseCase,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /matches", that.handleCreateMatch)
	mux.HandleFunc("GET /matches/{id}", that.handleGetMatch)
	mux.HandleFunc("DELETE /matches/{id}", that.handleEndMatch)
	mux.HandleFunc("POST /matches/{id}/drops", that.handleDropPiece)
	mux.HandleFunc("POST /matches/{id}/restart", that.handleRestartMatch)
	mux.HandleFunc("GET /matches/{id}/cells/{row}/{col}", that.handleCellAt)

	return mux
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
