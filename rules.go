// rules.go
// This file implements the RulesTable: per-letter tile values, the
// bag's tile-count distribution, and the four premium-square sets.

package skrafl

import (
	"encoding/json"
	"io"
)

// RulesTable is a process-wide, immutable set of scoring and board
// configuration values. It is loaded once at startup and passed by
// reference into the Board scorer and the move Generator rather than
// accessed via ambient global state.
type RulesTable struct {
	// TileValue maps an uppercase letter to its nominal point value.
	// Blanks (lowercase letters on the board) are not present here;
	// a missing key is treated as worth 0 points.
	TileValue map[byte]int
	// TileCount maps an uppercase letter, plus ' ' for the blank
	// tile, to the number of such tiles in a full bag.
	TileCount map[byte]int
	// TilePool is TileCount flattened into one tile per occurrence,
	// the starting contents of the bag.
	TilePool []byte
	// DL, TL, DW, TW are the double-letter, triple-letter,
	// double-word and triple-word premium square sets.
	DL, TL, DW, TW map[Position]bool
}

// rulesFile mirrors the reference JSON rules format: tileValue and
// tileCount keyed by single-letter strings, and bonusSquares grouped
// by premium kind, each square given as a [row, col] pair.
type rulesFile struct {
	TileValue    map[string]int `json:"tileValue"`
	TileCount    map[string]int `json:"tileCount"`
	BonusSquares struct {
		DoubleLetter [][2]int `json:"doubleLetter"`
		TripleLetter [][2]int `json:"tripleLetter"`
		DoubleWord   [][2]int `json:"doubleWord"`
		TripleWord   [][2]int `json:"tripleWord"`
	} `json:"bonusSquares"`
}

func toPositionSet(coords [][2]int) map[Position]bool {
	set := make(map[Position]bool, len(coords))
	for _, c := range coords {
		set[Position{c[0], c[1]}] = true
	}
	return set
}

func buildTilePool(tileCount map[byte]int) []byte {
	pool := make([]byte, 0, RackSize*RackSize)
	for letter, count := range tileCount {
		for i := 0; i < count; i++ {
			pool = append(pool, letter)
		}
	}
	return pool
}

// LoadRulesTable reads a RulesTable from its reference JSON
// representation (tileValue, tileCount, bonusSquares.*). Loading and
// parsing the file itself is an ambient configuration concern; the
// shape matched here is the one spec.md names as canonical.
func LoadRulesTable(r io.Reader) (*RulesTable, error) {
	var rf rulesFile
	if err := json.NewDecoder(r).Decode(&rf); err != nil {
		return nil, err
	}
	tileValue := make(map[byte]int, len(rf.TileValue))
	for letter, value := range rf.TileValue {
		tileValue[letter[0]] = value
	}
	tileCount := make(map[byte]int, len(rf.TileCount))
	for letter, count := range rf.TileCount {
		tileCount[letter[0]] = count
	}
	rt := &RulesTable{
		TileValue: tileValue,
		TileCount: tileCount,
		TilePool:  buildTilePool(tileCount),
		DL:        toPositionSet(rf.BonusSquares.DoubleLetter),
		TL:        toPositionSet(rf.BonusSquares.TripleLetter),
		DW:        toPositionSet(rf.BonusSquares.DoubleWord),
		TW:        toPositionSet(rf.BonusSquares.TripleWord),
	}
	return rt, nil
}

// standardPremiumSquares lists the premium squares of a standard
// 15x15 Scrabble board, in the familiar symmetric layout.
func standardPremiumSquares() (dl, tl, dw, tw []Position) {
	tw = []Position{
		{0, 0}, {0, 7}, {0, 14}, {7, 0}, {7, 14},
		{14, 0}, {14, 7}, {14, 14},
	}
	dw = []Position{
		{1, 1}, {2, 2}, {3, 3}, {4, 4},
		{1, 13}, {2, 12}, {3, 11}, {4, 10},
		{13, 1}, {12, 2}, {11, 3}, {10, 4},
		{13, 13}, {12, 12}, {11, 11}, {10, 10},
		{7, 7},
	}
	tl = []Position{
		{1, 5}, {1, 9}, {5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13}, {13, 5}, {13, 9},
	}
	dl = []Position{
		{0, 3}, {0, 11}, {2, 6}, {2, 8}, {3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12},
		{7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12},
		{11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8}, {14, 3}, {14, 11},
	}
	return
}

func positionSet(positions []Position) map[Position]bool {
	set := make(map[Position]bool, len(positions))
	for _, p := range positions {
		set[p] = true
	}
	return set
}

// newDefaultRulesTable builds the standard English RulesTable: tile
// values and counts per the reference Scrabble distribution, and the
// standard board's premium squares.
func newDefaultRulesTable() *RulesTable {
	tileValue := map[byte]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10,
	}
	tileCount := map[byte]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, ' ': 2,
	}
	dl, tl, dw, tw := standardPremiumSquares()
	return &RulesTable{
		TileValue: tileValue,
		TileCount: tileCount,
		TilePool:  buildTilePool(tileCount),
		DL:        positionSet(dl),
		TL:        positionSet(tl),
		DW:        positionSet(dw),
		TW:        positionSet(tw),
	}
}

// DefaultRulesTable is the standard English Scrabble RulesTable.
var DefaultRulesTable = newDefaultRulesTable()
