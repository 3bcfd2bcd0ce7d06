// move.go
// This file implements the Move type: an ordered collection of
// (tile, position) pairs representing a single candidate play.

package skrafl

import (
	"sort"
)

// Placement is a single tile laid on a single board square as part
// of a Move.
type Placement struct {
	Tile byte
	Pos  Position
}

// Move is a collection of Placements. All tiles in a non-empty Move
// lie on a single line (same row, or same column); the empty Move is
// legal and denotes a pass. By convention a real tile is an uppercase
// letter and a blank standing in for that letter is lowercase;
// callers are responsible for supplying characters in that form.
//
// Moves are equal iff their (tile, position) multisets are equal;
// Add/Remove model a multiset with position uniqueness enforced by
// the caller, not full set semantics.
type Move struct {
	tiles []Placement
}

// NewMove builds a Move from the given placements. Callers are
// responsible for the tile-case convention: uppercase for a real
// tile, lowercase for a blank standing in for that letter.
func NewMove(placements ...Placement) Move {
	tiles := make([]Placement, len(placements))
	copy(tiles, placements)
	return Move{tiles: tiles}
}

// Len returns the number of tiles placed by the Move.
func (m Move) Len() int {
	return len(m.tiles)
}

// IsEmpty returns true if the Move places no tiles (a pass).
func (m Move) IsEmpty() bool {
	return len(m.tiles) == 0
}

// Across returns true if the Move's orientation is across: the move
// has at most one tile, or all of its tiles share a row. Otherwise
// the Move is oriented down.
func (m Move) Across() bool {
	if len(m.tiles) <= 1 {
		return true
	}
	row := m.tiles[0].Pos.Row
	for _, p := range m.tiles[1:] {
		if p.Pos.Row != row {
			return false
		}
	}
	return true
}

// AllPositions returns the set of positions occupied by the Move.
func (m Move) AllPositions() []Position {
	positions := make([]Position, len(m.tiles))
	for i, p := range m.tiles {
		positions[i] = p.Pos
	}
	return positions
}

// HasPosition returns true if the Move places a tile at pos.
func (m Move) HasPosition(pos Position) bool {
	for _, p := range m.tiles {
		if p.Pos == pos {
			return true
		}
	}
	return false
}

// GetTile returns the tile the Move places at pos, or
// ErrNoTileAtPosition if the Move has no placement there.
func (m Move) GetTile(pos Position) (byte, error) {
	for _, p := range m.tiles {
		if p.Pos == pos {
			return p.Tile, nil
		}
	}
	return 0, ErrNoTileAtPosition
}

// GetWord returns the word formed by the Move's tiles, read in
// row-major (reading) order. Sorting happens at read time, not at
// construction, so insertion order carries no meaning.
func (m Move) GetWord() string {
	if len(m.tiles) == 0 {
		return ""
	}
	sorted := make([]Placement, len(m.tiles))
	copy(sorted, m.tiles)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Row != sorted[j].Pos.Row {
			return sorted[i].Pos.Row < sorted[j].Pos.Row
		}
		return sorted[i].Pos.Col < sorted[j].Pos.Col
	})
	word := make([]byte, len(sorted))
	for i, p := range sorted {
		word[i] = p.Tile
	}
	return string(word)
}

// Transpose returns a copy of the Move with every placement's
// position transposed.
func (m Move) Transpose() Move {
	tiles := make([]Placement, len(m.tiles))
	for i, p := range m.tiles {
		tiles[i] = Placement{Tile: p.Tile, Pos: p.Pos.Transpose()}
	}
	return Move{tiles: tiles}
}

// Copy returns an independent copy of the Move.
func (m Move) Copy() Move {
	tiles := make([]Placement, len(m.tiles))
	copy(tiles, m.tiles)
	return Move{tiles: tiles}
}

// Add returns a copy of the Move with the given placement appended.
// The caller is responsible for not introducing a duplicate position.
func (m Move) Add(p Placement) Move {
	tiles := make([]Placement, len(m.tiles), len(m.tiles)+1)
	copy(tiles, m.tiles)
	tiles = append(tiles, p)
	return Move{tiles: tiles}
}

// Remove returns a copy of the Move with the first placement at pos
// removed, if any.
func (m Move) Remove(pos Position) Move {
	tiles := make([]Placement, 0, len(m.tiles))
	removed := false
	for _, p := range m.tiles {
		if !removed && p.Pos == pos {
			removed = true
			continue
		}
		tiles = append(tiles, p)
	}
	return Move{tiles: tiles}
}

// AnchoredToMove builds the Move whose anchorIndex-th letter of word
// sits at anchorPos, laid out across or down from there.
func AnchoredToMove(word string, anchorPos Position, anchorIndex int, across bool) Move {
	tiles := make([]Placement, len(word))
	for i := 0; i < len(word); i++ {
		var pos Position
		if across {
			pos = Position{anchorPos.Row, anchorPos.Col - anchorIndex + i}
		} else {
			pos = Position{anchorPos.Row - anchorIndex + i, anchorPos.Col}
		}
		tiles[i] = Placement{Tile: word[i], Pos: pos}
	}
	return NewMove(tiles...)
}
