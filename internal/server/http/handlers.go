package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

const maxJSONBodyBytes int64 = 1 << 20

var errBadSquare = errors.New("square outside the board")

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var handle func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		handle = h.handleNewGame
	case "/api/resume":
		handle = h.handleResume
	case "/api/state":
		handle = h.handleState
	case "/api/select":
		handle = h.handleSelect
	case "/api/play":
		handle = h.handlePlay
	case "/api/click":
		handle = h.handleClick
	case "/api/restart":
		handle = h.handleRestart
	case "/api/delete":
		handle = h.handleDelete
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.Body != nil && r.Body != http.NoBody {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	}
	handle(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	gs := h.games.NewGame()
	var resp NewGameResponse
	err := h.games.Do(gs.ID, func(gs *game.GameState) error {
		resp = NewGameResponse{GameID: gs.ID, State: stateToDTO(gs)}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("new game %s", gs.ID)
	writeJSON(w, resp)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if !decode(w, r, &req) {
		return
	}
	gs, err := h.games.Resume(req.History)
	if err != nil {
		writeError(w, err)
		return
	}
	var resp NewGameResponse
	err = h.games.Do(gs.ID, func(gs *game.GameState) error {
		resp = NewGameResponse{GameID: gs.ID, State: stateToDTO(gs)}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("resumed game %s at move %d", gs.ID, len(req.History))
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	var resp StateResponse
	err := h.games.Do(req.GameID, func(gs *game.GameState) error {
		resp.State = stateToDTO(gs)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

// handleSelect only queries destinations; the session selection is driven
// by /api/click.
func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Square.Valid() {
		writeError(w, errBadSquare)
		return
	}
	var resp SelectResponse
	err := h.games.Do(req.GameID, func(gs *game.GameState) error {
		dests, ok := gs.Session.Game().SelectPiece(req.Square)
		resp = SelectResponse{
			Accepted:     ok,
			Destinations: nonNil(dests),
			State:        stateToDTO(gs),
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.From.Valid() || !req.To.Valid() {
		writeError(w, errBadSquare)
		return
	}
	var resp PlayResponse
	err := h.games.Do(req.GameID, func(gs *game.GameState) error {
		resp.Accepted = gs.Session.Play(req.From, req.To)
		resp.State = stateToDTO(gs)
		if resp.Accepted {
			if out, over := gs.Session.Game().Terminal(); over {
				log.Printf("game %s over: %s wins, %s", gs.ID, out.Winner, out.Reason)
			}
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req SquareRequest
	if !decode(w, r, &req) {
		return
	}
	var resp ClickResponse
	err := h.games.Do(req.GameID, func(gs *game.GameState) error {
		res := gs.Session.Click(req.Square)
		resp = ClickResponse{Result: res.String(), State: stateToDTO(gs)}
		if res == xiangqi.ClickMoved && gs.Session.Phase() == xiangqi.GameOver {
			out, _ := gs.Session.Game().Terminal()
			log.Printf("game %s over: %s wins, %s", gs.ID, out.Winner, out.Reason)
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	var resp StateResponse
	err := h.games.Do(req.GameID, func(gs *game.GameState) error {
		gs.Session.Restart()
		resp.State = stateToDTO(gs)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.games.Delete(req.GameID); err != nil {
		writeError(w, err)
		return
	}
	log.Printf("deleted game %s", req.GameID)
	writeJSON(w, DeleteResponse{GameID: req.GameID, Deleted: true})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, errBadSquare):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, xiangqi.ErrIllegalMove):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
