package ports

import (
	"context"
	"time"

	"github.com/minhvt/sudoku-board/internal/board"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver answers uniqueness queries over a partially filled grid.
type Solver interface {
	Unique(ctx context.Context, b *board.Board) (bool, Stats, error)
}

// Generator creates new boards from a random seed.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*board.Board, Stats, error)
}
