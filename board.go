// board.go
// This file implements the Board: a 15x15 character grid, its
// traversal primitives, word enumeration for a candidate move, and
// scoring.

package skrafl

import (
	"iter"
	"strings"
)

// Empty is the character occupying an empty Board cell.
const Empty byte = ' '

// Board is a 15x15 grid of single-character cells. The zero Board is
// not ready for use; call NewBoard.
type Board struct {
	cells [BoardSize][BoardSize]byte
}

// NewBoard returns a Board with every cell empty.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = Empty
		}
	}
}

// Get returns the character at pos.
func (b *Board) Get(pos Position) byte {
	return b.cells[pos.Row][pos.Col]
}

// Set writes tile into pos.
func (b *Board) Set(pos Position, tile byte) {
	b.cells[pos.Row][pos.Col] = tile
}

// IsEmpty returns true if pos holds the empty character.
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == Empty
}

// Apply writes each of the move's tiles into its cell. The caller
// must have validated the move; Apply performs no checking.
func (b *Board) Apply(m Move) {
	for _, p := range m.tiles {
		b.Set(p.Pos, p.Tile)
	}
}

// Unapply writes the empty character into each of the move's cells.
func (b *Board) Unapply(m Move) {
	for _, p := range m.tiles {
		b.Set(p.Pos, Empty)
	}
}

// Copy returns an independent copy of the Board.
func (b *Board) Copy() *Board {
	cp := &Board{}
	cp.cells = b.cells
	return cp
}

// Transpose returns a new Board with rows and columns swapped.
func (b *Board) Transpose() *Board {
	cp := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cp.cells[col][row] = b.cells[row][col]
		}
	}
	return cp
}

// Equal reports whether two Boards hold identical cell contents.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// stopPred decides whether the cell (tile, pos) halts a traversal;
// the halting cell itself is not yielded.
type stopPred func(tile byte, pos Position) bool

// Traverse yields (tile, pos) pairs starting one step from start,
// advancing by step each time, stopping (without yielding the
// stopping cell) at the board edge or when stop returns true.
func (b *Board) Traverse(start Position, step Position, stop stopPred) []Placement {
	var out []Placement
	pos := start.Add(step)
	for !pos.OutOfBounds() {
		tile := b.Get(pos)
		if stop(tile, pos) {
			break
		}
		out = append(out, Placement{Tile: tile, Pos: pos})
		pos = pos.Add(step)
	}
	return out
}

// reverseStep returns the negation of step, i.e. the opposite
// direction along the same axis.
func reverseStep(step Position) Position {
	return Position{-step.Row, -step.Col}
}

// TraverseAxis concatenates the reverse-direction traversal from pos
// (reversed back into reading order), the tile at pos itself, and the
// forward-direction traversal, all stopping per stop.
func (b *Board) TraverseAxis(pos Position, axis Position, stop stopPred) []Placement {
	backward := b.Traverse(pos, reverseStep(axis), stop)
	// backward is nearest-to-farthest; reverse it into reading order.
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	forward := b.Traverse(pos, axis, stop)
	out := make([]Placement, 0, len(backward)+1+len(forward))
	out = append(out, backward...)
	out = append(out, Placement{Tile: b.Get(pos), Pos: pos})
	out = append(out, forward...)
	return out
}

// TraverseAxisUntilEmpty specializes TraverseAxis with a stop
// predicate of "cell is empty".
func (b *Board) TraverseAxisUntilEmpty(pos Position, axis Position) []Placement {
	return b.TraverseAxis(pos, axis, func(tile byte, _ Position) bool { return tile == Empty })
}

// axisOf returns the axis a move lies along: AxisAcross for an
// across move, AxisDown otherwise.
func axisOf(m Move) Position {
	if m.Across() {
		return AxisAcross
	}
	return AxisDown
}

// perpendicular returns the axis perpendicular to axis.
func perpendicular(axis Position) Position {
	if axis == AxisAcross {
		return AxisDown
	}
	return AxisAcross
}

func placementsToWord(placements []Placement) string {
	var sb strings.Builder
	for _, p := range placements {
		sb.WriteByte(p.Tile)
	}
	return sb.String()
}

func placementsToMove(placements []Placement) Move {
	return NewMove(placements...)
}

// WordsFormed returns the primary word and every cross word formed
// by applying m to the board, as a lazy sequence of Moves (each
// yielded Move's GetWord reproduces the formed word). The board is
// temporarily mutated to compute the result but is restored,
// bit-identical, before WordsFormed returns control past its final
// yield (including on early consumer break).
func (b *Board) WordsFormed(m Move) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if m.IsEmpty() {
			return
		}
		b.Apply(m)
		defer b.Unapply(m)

		stop := func(tile byte, pos Position) bool {
			return tile == Empty && !m.HasPosition(pos)
		}

		axis := axisOf(m)
		// Any tile of m lies on the primary word's line, so
		// traversing outward from it in both directions recovers the
		// whole word regardless of which tile we start from.
		primary := b.TraverseAxis(m.tiles[0].Pos, axis, stop)
		if !yield(placementsToMove(primary)) {
			return
		}

		cross := perpendicular(axis)
		for _, p := range m.tiles {
			word := b.TraverseAxis(p.Pos, cross, stop)
			if len(word) < 2 {
				continue
			}
			if !yield(placementsToMove(word)) {
				return
			}
		}
	}
}

// CalcScore computes the score of m against the words it forms,
// under rules. Premium squares apply only to the tiles m itself
// newly places; a move placing exactly 7 tiles earns the +50 bingo
// bonus.
func (b *Board) CalcScore(m Move, rules *RulesTable) int {
	total := 0
	for word := range b.WordsFormed(m) {
		wordMul := 1
		score := 0
		for _, p := range word.tiles {
			letterMul := 1
			if m.HasPosition(p.Pos) {
				if rules.DL[p.Pos] {
					letterMul = 2
				} else if rules.TL[p.Pos] {
					letterMul = 3
				}
				if rules.DW[p.Pos] {
					wordMul *= 2
				} else if rules.TW[p.Pos] {
					wordMul *= 3
				}
			}
			score += rules.TileValue[p.Tile] * letterMul
		}
		total += score * wordMul
	}
	if m.Len() == RackSize {
		total += 50
	}
	return total
}

// String renders the board as 15 lines of 15 characters, for
// debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.Write(b.cells[row][:])
		sb.WriteByte('\n')
	}
	return sb.String()
}
