// Package solver implements the recursive backtracking search the
// generator relies on to keep carved puzzles uniquely solvable.
package solver

// canPlace reports whether putting v at (r, c) leaves the grid free of
// duplicates in that row, column, and box.
func canPlace(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// nextEmpty returns the first unfilled position in row-major order.
func nextEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
