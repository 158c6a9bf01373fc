// Package session hosts the single live game: it owns the board for its
// whole lifetime, serializes access from the concurrent HTTP layer, and
// hands back a fresh render view after every mutation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/minhvt/sudoku-board/internal/board"
	"github.com/minhvt/sudoku-board/internal/ports"
)

var (
	// ErrNoGame is returned by queries and mutations before the first NewGame.
	ErrNoGame = errors.New("no active game")
	// ErrUnknownSource is returned when a new game names a source the
	// session does not recognize.
	ErrUnknownSource = errors.New("unknown board source")
)

// Source selects where a new game's board comes from.
type Source string

const (
	SourceExample Source = "example" // the built-in starter puzzle
	SourceSeed    Source = "seed"    // an explicit 81-value grid
	SourceRandom  Source = "random"  // the generator
)

// NewGameRequest describes the board wanted for a new game.
type NewGameRequest struct {
	Source Source
	Seed   *board.Seed // required for SourceSeed
	Rand   int64       // generator seed; 0 picks the clock
}

// View is the full render state a front end repaints from.
type View struct {
	Cells      [9][9]board.Cell  `json:"cells"`
	Consistent bool              `json:"consistent"`
	Solved     bool              `json:"solved"`
	Conflicts  []board.CellCoord `json:"conflicts,omitempty"`
}

// Service owns at most one board at a time. A new game replaces the old
// one; the board never escapes the session.
type Service struct {
	gen ports.Generator
	log *slog.Logger

	mu sync.Mutex
	b  *board.Board
}

func New(gen ports.Generator, log *slog.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// NewGame discards any current board and starts over from the requested
// source.
func (s *Service) NewGame(ctx context.Context, req NewGameRequest) (View, error) {
	var (
		b   *board.Board
		err error
	)
	switch req.Source {
	case SourceSeed:
		if req.Seed == nil {
			return View{}, fmt.Errorf("%w: missing grid", board.ErrInvalidSeed)
		}
		b, err = board.New(*req.Seed)
		if err != nil {
			return View{}, err
		}
	case SourceRandom:
		if s.gen == nil {
			return View{}, errors.New("no generator configured")
		}
		seed := req.Rand
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		var st ports.Stats
		b, st, err = s.gen.Generate(ctx, seed)
		if err != nil {
			return View{}, fmt.Errorf("generate board: %w", err)
		}
		s.log.Debug("generated board", "seed", seed, "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	case SourceExample, "":
		b = board.Example()
	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownSource, req.Source)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.b = b
	s.log.Info("new game", "source", string(req.Source))
	return s.viewLocked(), nil
}

// View returns the current render state.
func (s *Service) View(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.b == nil {
		return View{}, ErrNoGame
	}
	return s.viewLocked(), nil
}

// Cell returns a snapshot of one cell.
func (s *Service) Cell(ctx context.Context, row, col int) (board.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.b == nil {
		return board.Cell{}, ErrNoGame
	}
	return s.b.Get(row, col)
}

// SetCell writes value at (row, col) and returns the refreshed view.
func (s *Service) SetCell(ctx context.Context, row, col int, value uint8) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.b == nil {
		return View{}, ErrNoGame
	}
	if err := s.b.SetCell(row, col, value); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

// Adjust cycles the value at (row, col) by delta and returns the refreshed
// view.
func (s *Service) Adjust(ctx context.Context, row, col int, delta int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.b == nil {
		return View{}, ErrNoGame
	}
	if err := s.b.Adjust(row, col, delta); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

func (s *Service) viewLocked() View {
	return View{
		Cells:      s.b.Snapshot(),
		Consistent: s.b.IsConsistent(),
		Solved:     s.b.IsSolved(),
		Conflicts:  s.b.Conflicts(),
	}
}
