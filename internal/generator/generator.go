// Package generator builds playable boards: a full legal solution filled
// by seeded randomized backtracking, then carved down to a target number
// of givens while every removal keeps the solution unique.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/minhvt/sudoku-board/internal/board"
	"github.com/minhvt/sudoku-board/internal/ports"
)

// targetGivens is the clue count carving aims for. Carving stops earlier
// when the time budget runs out or no further cell can be cleared without
// losing uniqueness.
const targetGivens = 34

// carveBudget bounds the uniqueness-preserving carve so generation stays
// interactive.
const carveBudget = 900 * time.Millisecond

// UniqueGenerator creates boards with a unique solution using a provided
// Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

// Generate produces a board from seed. The same seed yields the same board
// on the same build. Non-empty cells of the result are fixed givens.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64) (*board.Board, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	puz := full
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	deadline := start.Add(carveBudget)
	nodes := 0
	givens := 81
	for _, pos := range positions {
		if givens <= targetGivens || time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		unique, st, err := g.Solver.Unique(ctx, &board.Board{Values: puz})
		nodes += st.Nodes
		if err != nil || !unique {
			puz[r][c] = old // revert
			continue
		}
		fixed[r][c] = false
		givens--
	}

	out := &board.Board{Values: puz, Fixed: fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by trying
// digits in a per-cell random order.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := nums
		for _, v := range order {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
