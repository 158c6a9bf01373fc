package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvt/sudoku-board/internal/solver"
)

func TestGenerateProducesPlayableBoard(t *testing.T) {
	s := solver.NewBacktracker()
	g := NewUniqueGenerator(s)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	b, st, err := g.Generate(ctx, 12345)
	require.NoError(t, err)
	t.Logf("generated in %v, nodes=%d", st.Duration, st.Nodes)

	assert.True(t, b.IsConsistent())
	assert.False(t, b.IsSolved(), "a fresh puzzle must have empty cells")

	givens := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			filled := b.Values[r][c] != 0
			assert.Equal(t, filled, b.Fixed[r][c], "fixed flag at r=%d c=%d", r, c)
			if filled {
				givens++
			}
		}
	}
	// 17 is the known minimum for a uniquely solvable sudoku
	assert.GreaterOrEqual(t, givens, 17)
	assert.Less(t, givens, 81)

	unique, _, err := s.Unique(ctx, b)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktracker())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := g.Generate(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSameSeedSameBoard(t *testing.T) {
	s := solver.NewBacktracker()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 12345)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 12345)
	require.NoError(t, err)

	// Holds as long as both runs finish carving inside carveBudget; a
	// starved machine could cut one carve short.
	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Fixed, b.Fixed)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	s := solver.NewBacktracker()
	g := NewUniqueGenerator(s)
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 1)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, b.Values)
}
