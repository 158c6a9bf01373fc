// Package board holds the reusable Sudoku board model: the 9x9 grid of
// cells, the single mutation entry point used by a front end, and the
// row/column/box consistency checks. The model never blocks an illegal
// placement; it only reports whether any currently exist.
package board

import (
	"errors"
	"fmt"
)

// Errors reported by board operations. All are recoverable and leave the
// board unchanged; callers match them with errors.Is.
var (
	ErrOutOfRange  = errors.New("coordinate out of range")
	ErrCellLocked  = errors.New("cell is a fixed given")
	ErrInvalidSeed = errors.New("seed violates sudoku constraints")
)

// Highlight is transient presentation state derived from the current
// values. It is computed on demand and never stored.
type Highlight int

const (
	HighlightNone     Highlight = iota
	HighlightConflict           // value duplicated in its row, column, or box
	HighlightComplete           // row, column, or box already holds all nine digits
)

// Cell is a read snapshot of one grid position.
type Cell struct {
	Value     uint8     `json:"value"`
	Fixed     bool      `json:"fixed,omitempty"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Seed is an explicit starting grid. 0 means empty; non-zero cells become
// fixed givens on the board built from it.
type Seed [9][9]uint8

// Board holds current values and which cells are fixed givens.
// It is single-owner data: the hosting session serializes access.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// New builds a board from an explicit seed. Every non-empty seed cell
// becomes a fixed given. The seed must not already contain a duplicate in
// any row, column, or box, nor a value outside 0..9.
func New(seed Seed) (*Board, error) {
	b := &Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := seed[r][c]
			if v > 9 {
				return nil, fmt.Errorf("%w: value %d at r=%d c=%d", ErrInvalidSeed, v, r, c)
			}
			b.Values[r][c] = v
			b.Fixed[r][c] = v != 0
		}
	}
	if conf := b.Conflicts(); len(conf) > 0 {
		return nil, fmt.Errorf("%w: duplicate at r=%d c=%d", ErrInvalidSeed, conf[0].Row, conf[0].Col)
	}
	return b, nil
}

// Example returns the fixed starter puzzle used when no generated board is
// requested.
func Example() *Board {
	b, err := New(Seed{
		{1, 6, 7, 8, 9, 2, 3, 4, 5},
		{4, 2, 8, 0, 0, 0, 0, 0, 0},
		{5, 9, 3, 0, 0, 0, 0, 0, 0},
		{6, 0, 0, 4, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 5, 0, 0, 0, 0},
		{8, 0, 0, 0, 0, 6, 0, 0, 0},
		{9, 0, 0, 0, 0, 0, 7, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 8, 0},
		{3, 0, 0, 0, 0, 0, 0, 0, 9},
	})
	if err != nil {
		panic("board: example puzzle invalid: " + err.Error())
	}
	return b
}

func inRange(row, col int) bool {
	return row >= 0 && row <= 8 && col >= 0 && col <= 8
}

// Get returns a snapshot of the cell at (row, col) with its highlight
// computed from the current values.
func (b *Board) Get(row, col int) (Cell, error) {
	if !inRange(row, col) {
		return Cell{}, fmt.Errorf("%w: r=%d c=%d", ErrOutOfRange, row, col)
	}
	return Cell{
		Value:     b.Values[row][col],
		Fixed:     b.Fixed[row][col],
		Highlight: b.highlight(row, col),
	}, nil
}

// SetCell overwrites the cell at (row, col) with value (0 clears it).
// Fixed cells reject the write with ErrCellLocked. The placement is not
// checked against the sudoku constraints; call IsConsistent for that.
func (b *Board) SetCell(row, col int, value uint8) error {
	if !inRange(row, col) {
		return fmt.Errorf("%w: r=%d c=%d", ErrOutOfRange, row, col)
	}
	if value > 9 {
		return fmt.Errorf("%w: value %d", ErrOutOfRange, value)
	}
	if b.Fixed[row][col] {
		return fmt.Errorf("%w: r=%d c=%d", ErrCellLocked, row, col)
	}
	b.Values[row][col] = value
	return nil
}

// Adjust cycles the cell's value by delta through 0..9 with wrap-around,
// the click-to-cycle input mode. Same range and locking rules as SetCell.
func (b *Board) Adjust(row, col int, delta int) error {
	if !inRange(row, col) {
		return fmt.Errorf("%w: r=%d c=%d", ErrOutOfRange, row, col)
	}
	if b.Fixed[row][col] {
		return fmt.Errorf("%w: r=%d c=%d", ErrCellLocked, row, col)
	}
	n := (int(b.Values[row][col]) + delta) % 10
	if n < 0 {
		n += 10
	}
	b.Values[row][col] = uint8(n)
	return nil
}

// IsConsistent reports whether no row, column, or box currently contains
// two cells with the same non-empty value.
func (b *Board) IsConsistent() bool {
	// rows and cols in one pass
	for i := 0; i < 9; i++ {
		rm, cm := 0, 0
		for j := 0; j < 9; j++ {
			if v := b.Values[i][j]; v != 0 {
				bit := 1 << v
				if rm&bit != 0 {
					return false
				}
				rm |= bit
			}
			if v := b.Values[j][i]; v != 0 {
				bit := 1 << v
				if cm&bit != 0 {
					return false
				}
				cm |= bit
			}
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					v := b.Values[br*3+dr][bc*3+dc]
					if v == 0 {
						continue
					}
					bit := 1 << v
					if m&bit != 0 {
						return false
					}
					m |= bit
				}
			}
		}
	}
	return true
}

// IsSolved reports whether every cell is filled and the board is consistent.
func (b *Board) IsSolved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return b.IsConsistent()
}

// Conflicts returns the coordinates of cells whose value repeats an earlier
// one in some row, column, or box. Empty when the board is consistent.
func (b *Board) Conflicts() []CellCoord {
	conf := make([]CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			bit := 1 << v
			if m&bit != 0 {
				conf = append(conf, CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					v := b.Values[r][c]
					if v == 0 {
						continue
					}
					bit := 1 << v
					if m&bit != 0 {
						conf = append(conf, CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}

// Snapshot returns the full grid as cell snapshots with highlights
// computed, the render view a front end repaints after every mutation.
func (b *Board) Snapshot() [9][9]Cell {
	var out [9][9]Cell
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = Cell{
				Value:     b.Values[r][c],
				Fixed:     b.Fixed[r][c],
				Highlight: b.highlight(r, c),
			}
		}
	}
	return out
}

const fullMask = 0b1111111110 // bits 1..9 set

// highlight derives the presentation state of one cell: conflict wins,
// then complete when its row, column, or box already holds all nine
// digits. Empty cells are never highlighted.
func (b *Board) highlight(row, col int) Highlight {
	v := b.Values[row][col]
	rm, cm := 0, 0
	for i := 0; i < 9; i++ {
		rv, cv := b.Values[row][i], b.Values[i][col]
		rm |= 1 << rv
		cm |= 1 << cv
		if v != 0 {
			if i != col && rv == v {
				return HighlightConflict
			}
			if i != row && cv == v {
				return HighlightConflict
			}
		}
	}
	bm := 0
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			r, c := br+dr, bc+dc
			bv := b.Values[r][c]
			bm |= 1 << bv
			if v != 0 && !(r == row && c == col) && bv == v {
				return HighlightConflict
			}
		}
	}
	if v == 0 {
		return HighlightNone
	}
	if rm&fullMask == fullMask || cm&fullMask == fullMask || bm&fullMask == fullMask {
		return HighlightComplete
	}
	return HighlightNone
}
