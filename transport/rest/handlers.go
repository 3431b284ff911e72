package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

var errBadRequest = errors.New("malformed request")

// matchView is everything a renderer needs to draw a match.
type matchView struct {
	ID        string                 `json:"id"`
	Height    int                    `json:"height"`
	Width     int                    `json:"width"`
	Cells     [][]connectfour.Seat   `json:"cells"`
	Players   [2]*connectfour.Player `json:"players"`
	Turn      *connectfour.Player    `json:"turn"`
	Status    connectfour.Outcome    `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Moves     int                    `json:"moves"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type dropRequest struct {
	Column *int `json:"column"`
}

type dropResponse struct {
	Match matchView              `json:"match"`
	Move  connectfour.MoveResult `json:"move"`
}

type cellResponse struct {
	Row    int                 `json:"row"`
	Column int                 `json:"column"`
	Player *connectfour.Player `json:"player"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newMatchView(game *entity.Game) matchView {
	first, second := game.Match.Players()
	status := game.Match.Status()

	return matchView{
		ID:        game.ID,
		Height:    game.Match.Height(),
		Width:     game.Match.Width(),
		Cells:     game.Match.Cells(),
		Players:   [2]*connectfour.Player{first, second},
		Turn:      game.Match.Turn(),
		Status:    status,
		Message:   status.Message(),
		Moves:     game.Match.Moves(),
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req usecase.NewMatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.sendError(w, r, errBadRequest)
		return
	}

	game, err := that.matchUseCase.CreateMatch(r.Context(), req)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusCreated, newMatchView(game))
}

func (that *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	game, err := that.matchUseCase.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newMatchView(game))
}

func (that *Server) handleDropPiece(w http.ResponseWriter, r *http.Request) {
	var req dropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Column == nil {
		that.sendError(w, r, errBadRequest)
		return
	}

	game, move, err := that.matchUseCase.DropPiece(r.Context(), r.PathValue("id"), *req.Column)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, dropResponse{
		Match: newMatchView(game),
		Move:  move,
	})
}

func (that *Server) handleCellAt(w http.ResponseWriter, r *http.Request) {
	row, rowErr := strconv.Atoi(r.PathValue("row"))
	col, colErr := strconv.Atoi(r.PathValue("col"))
	if rowErr != nil || colErr != nil {
		that.sendError(w, r, errBadRequest)
		return
	}

	player, err := that.matchUseCase.CellAt(r.Context(), r.PathValue("id"), row, col)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, cellResponse{Row: row, Column: col, Player: player})
}

func (that *Server) handleRestartMatch(w http.ResponseWriter, r *http.Request) {
	game, err := that.matchUseCase.RestartMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newMatchView(game))
}

func (that *Server) handleEndMatch(w http.ResponseWriter, r *http.Request) {
	if err := that.matchUseCase.EndMatch(r.Context(), r.PathValue("id")); err != nil {
		that.sendError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidDimensions),
		errors.Is(err, apperror.ErrInvalidPlayers),
		errors.Is(err, apperror.ErrInvalidColumn),
		errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrColumnFull),
		errors.Is(err, apperror.ErrMatchAlreadyOver),
		errors.Is(err, apperror.ErrMatchExists):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCorruptSnapshot):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) sendError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.sendJSON(w, status, errorResponse{Error: message})
}

func (that *Server) sendJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
