package skrafl

import (
	"strings"
	"testing"
)

func TestMoveGetWordSortsAtReadTime(t *testing.T) {
	m := NewMove(
		Placement{Tile: 'T', Pos: Position{7, 9}},
		Placement{Tile: 'A', Pos: Position{7, 8}},
		Placement{Tile: 'C', Pos: Position{7, 7}},
	)
	if got, want := m.GetWord(), "CAT"; got != want {
		t.Errorf("GetWord() = %q, want %q", got, want)
	}
}

func TestMoveGetTileMiss(t *testing.T) {
	m := NewMove(Placement{Tile: 'A', Pos: Position{0, 0}})
	if _, err := m.GetTile(Position{1, 1}); err != ErrNoTileAtPosition {
		t.Errorf("GetTile() on missing position = %v, want ErrNoTileAtPosition", err)
	}
	tile, err := m.GetTile(Position{0, 0})
	if err != nil || tile != 'A' {
		t.Errorf("GetTile() = (%q, %v), want ('A', nil)", tile, err)
	}
}

func TestMoveTransposeRoundTrip(t *testing.T) {
	m := NewMove(
		Placement{Tile: 'C', Pos: Position{7, 7}},
		Placement{Tile: 'A', Pos: Position{7, 8}},
	)
	if got := m.Transpose().Transpose(); got.GetWord() != m.GetWord() || !samePositions(got, m) {
		t.Errorf("Transpose().Transpose() did not round-trip: %v", got)
	}
}

func samePositions(a, b Move) bool {
	ap, bp := a.AllPositions(), b.AllPositions()
	if len(ap) != len(bp) {
		return false
	}
	seen := make(map[Position]bool)
	for _, p := range ap {
		seen[p] = true
	}
	for _, p := range bp {
		if !seen[p] {
			return false
		}
	}
	return true
}

func TestMoveAcrossOrientation(t *testing.T) {
	across := NewMove(
		Placement{Tile: 'C', Pos: Position{7, 7}},
		Placement{Tile: 'A', Pos: Position{7, 8}},
	)
	if !across.Across() {
		t.Errorf("expected across move to report Across() == true")
	}
	down := NewMove(
		Placement{Tile: 'C', Pos: Position{7, 7}},
		Placement{Tile: 'A', Pos: Position{8, 7}},
	)
	if down.Across() {
		t.Errorf("expected down move to report Across() == false")
	}
}

func TestAnchoredToMovePlacesWordInBounds(t *testing.T) {
	m := AnchoredToMove("BANANA", Position{7, 7}, 0, true)
	if got, want := m.GetWord(), strings.ToUpper("BANANA"); got != want {
		t.Errorf("AnchoredToMove().GetWord() = %q, want %q", got, want)
	}
	tile, err := m.GetTile(Position{7, 7})
	if err != nil || tile != 'B' {
		t.Errorf("anchor tile = (%q, %v), want ('B', nil)", tile, err)
	}
	last, err := m.GetTile(Position{7, 12})
	if err != nil || last != 'A' {
		t.Errorf("last tile = (%q, %v), want ('A', nil)", last, err)
	}
}

func TestMoveAddRemove(t *testing.T) {
	m := NewMove()
	m = m.Add(Placement{Tile: 'Q', Pos: Position{0, 0}})
	if m.Len() != 1 {
		t.Fatalf("Len() after Add = %d, want 1", m.Len())
	}
	m = m.Remove(Position{0, 0})
	if !m.IsEmpty() {
		t.Errorf("expected move to be empty after Remove, got %v", m)
	}
}
