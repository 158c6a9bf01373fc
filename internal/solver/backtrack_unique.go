package solver

import (
	"context"
	"time"

	"github.com/minhvt/sudoku-board/internal/board"
	"github.com/minhvt/sudoku-board/internal/ports"
)

// Backtracker is a straightforward recursive solver.
type Backtracker struct{}

func NewBacktracker() *Backtracker { return &Backtracker{} }

// CountSolutions counts completions of b up to limit and stops early once
// the limit is reached or the context is canceled.
func (s *Backtracker) CountSolutions(ctx context.Context, b *board.Board, limit int) (int, ports.Stats) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := nextEmpty(&grid)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if canPlace(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// Unique reports whether exactly one solution exists.
func (s *Backtracker) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	count, st := s.CountSolutions(ctx, b, 2)
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
