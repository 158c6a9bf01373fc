package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhvt/sudoku-board/internal/board"
	"github.com/minhvt/sudoku-board/internal/session"
)

type Handler struct {
	S *session.Service
}

func New(s *session.Service) *Handler { return &Handler{S: s} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/board", h.handleBoard)
	mux.HandleFunc("/api/set", h.handleSet)
	mux.HandleFunc("/api/adjust", h.handleAdjust)
}

type viewResp struct {
	View  *session.View `json:"view,omitempty"`
	Error string        `json:"error,omitempty"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNoGame):
		return http.StatusNotFound
	case errors.Is(err, board.ErrCellLocked):
		return http.StatusConflict
	case errors.Is(err, board.ErrOutOfRange), errors.Is(err, board.ErrInvalidSeed),
		errors.Is(err, session.ErrUnknownSource):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeView(w http.ResponseWriter, v session.View) {
	_ = json.NewEncoder(w).Encode(viewResp{View: &v})
}

func writeError(w http.ResponseWriter, err error) {
	w.WriteHeader(statusFor(err))
	_ = json.NewEncoder(w).Encode(viewResp{Error: err.Error()})
}

// ---- New game ----

type newReq struct {
	Source string       `json:"source,omitempty"` // example|seed|random
	Grid   *[9][9]uint8 `json:"grid,omitempty"`
	Seed   int64        `json:"seed,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(viewResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	gr := session.NewGameRequest{Source: session.Source(req.Source), Rand: req.Seed}
	if req.Grid != nil {
		seed := board.Seed(*req.Grid)
		gr.Seed = &seed
		gr.Source = session.SourceSeed
	}
	v, err := h.S.NewGame(r.Context(), gr)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, v)
}

// ---- Current board ----

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	v, err := h.S.View(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, v)
}

// ---- Set / Adjust ----

type setReq struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req setReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(viewResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	v, err := h.S.SetCell(r.Context(), req.Row, req.Col, req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, v)
}

type adjustReq struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Delta int `json:"delta"`
}

func (h *Handler) handleAdjust(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req adjustReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(viewResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Delta == 0 {
		req.Delta = 1 // plain click cycles forward
	}
	v, err := h.S.Adjust(r.Context(), req.Row, req.Col, req.Delta)
	if err != nil {
		writeError(w, err)
		return
	}
	writeView(w, v)
}
