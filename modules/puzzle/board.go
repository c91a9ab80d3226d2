package puzzle

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Board is a sliding puzzle grid. Tiles hold the values 1..rows*cols-1 with
// 0 marking the blank; the solved position has tiles in row-major order
// with the blank in the bottom-right corner.
type Board struct {
	rows, cols int
	tiles      []int
	blank      int
}

// NewBoard returns a solved board of the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinDim || rows > MaxDim || cols < MinDim || cols > MaxDim {
		return nil, fmt.Errorf("grid dimensions must be between %d and %d, got %dx%d", MinDim, MaxDim, rows, cols)
	}
	n := rows * cols
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	return &Board{rows: rows, cols: cols, tiles: tiles, blank: n - 1}, nil
}

// Grid dimension bounds, as in the original puzzle.
const (
	MinDim = 3
	MaxDim = 8
)

// Solved reports whether every tile is home.
func (b *Board) Solved() bool {
	for i, v := range b.tiles[:len(b.tiles)-1] {
		if v != i+1 {
			return false
		}
	}
	return b.tiles[len(b.tiles)-1] == 0
}

// Shuffle scrambles the board by applying random legal moves from the
// current position. Because every step is a legal move, the result is
// always solvable, and it keeps going until the board is actually scrambled.
func (b *Board) Shuffle(rng *rand.Rand) {
	steps := 20 * b.rows * b.cols
	for {
		for i := 0; i < steps; i++ {
			nbs := b.neighbors(b.blank)
			b.swap(b.blank, nbs[rng.Intn(len(nbs))])
		}
		if !b.Solved() {
			return
		}
	}
}

// MoveTile slides the numbered tile into the blank. It reports false when
// the tile is not adjacent to the blank.
func (b *Board) MoveTile(tile int) bool {
	if tile < 1 || tile >= b.rows*b.cols {
		return false
	}
	for _, idx := range b.neighbors(b.blank) {
		if b.tiles[idx] == tile {
			b.swap(b.blank, idx)
			return true
		}
	}
	return false
}

// MoveBlank slides the blank one cell in the given direction, i.e. the
// neighboring tile moves the opposite way. It reports false at an edge.
func (b *Board) MoveBlank(dr, dc int) bool {
	r, c := b.blank/b.cols, b.blank%b.cols
	r, c = r+dr, c+dc
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return false
	}
	b.swap(b.blank, r*b.cols+c)
	return true
}

// Render writes the grid to w, the blank drawn as a dot.
func (b *Board) Render(w io.Writer) {
	width := len(fmt.Sprint(b.rows*b.cols - 1))
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			v := b.tiles[r*b.cols+c]
			if v == 0 {
				fmt.Fprintf(&sb, " %*s", width, ".")
			} else {
				fmt.Fprintf(&sb, " %*d", width, v)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

func (b *Board) neighbors(idx int) []int {
	r, c := idx/b.cols, idx%b.cols
	var nbs []int
	if r > 0 {
		nbs = append(nbs, idx-b.cols)
	}
	if r < b.rows-1 {
		nbs = append(nbs, idx+b.cols)
	}
	if c > 0 {
		nbs = append(nbs, idx-1)
	}
	if c < b.cols-1 {
		nbs = append(nbs, idx+1)
	}
	return nbs
}

func (b *Board) swap(i, j int) {
	b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	if b.tiles[i] == 0 {
		b.blank = i
	} else {
		b.blank = j
	}
}
