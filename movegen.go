// movegen.go
// This file implements the move generator: anchor computation,
// cross-check sets, and the recursive left-part / right-part search
// that enumerates every legal play for a rack against a board.

package skrafl

import (
	"iter"
	"sort"
	"strings"

	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/zap"
)

// crossCacheSize bounds the cross-check LRU. A single generation call
// touches at most 15*15 distinct flanking-fragment keys per axis pass;
// this comfortably covers both passes with room for reuse.
const crossCacheSize = 512

// Generator computes every legal move for a rack against a board
// under a lexicon and a rules table. A Generator is single-threaded
// and non-reentrant: callers must not mutate Board or share a
// Generator across concurrent CalcAllMoves calls.
type Generator struct {
	Board   *Board
	Lexicon *Trie
	Rules   *RulesTable

	// Logger receives diagnostics (the rack of each CalcAllMoves call
	// and the anchor count of each axis pass). Defaults to a no-op logger; set directly to observe a
	// generation run.
	Logger *zap.Logger

	crossCache *simplelru.LRU
}

// NewGenerator returns a Generator for the given board, lexicon and
// rules table.
func NewGenerator(board *Board, lexicon *Trie, rules *RulesTable) *Generator {
	cache, _ := simplelru.NewLRU(crossCacheSize, nil)
	return &Generator{Board: board, Lexicon: lexicon, Rules: rules, Logger: zap.NewNop(), crossCache: cache}
}

// CalcAllMoves is the generator's single public operation: a lazy
// stream of every legal move for rack, across moves first, then down
// moves, with the empty (pass) move always last.
func (g *Generator) CalcAllMoves(rack []byte) iter.Seq[Move] {
	g.Logger.Debug("generating moves", zap.String("rack", string(rack)))
	return func(yield func(Move) bool) {
		for m := range g.genAxisMoves(g.Board, rack) {
			if !yield(m) {
				return
			}
		}
		transposed := g.Board.Transpose()
		for m := range g.genAxisMoves(transposed, rack) {
			if !yield(m.Transpose()) {
				return
			}
		}
		yield(NewMove())
	}
}

func stopAtEmpty(tile byte, _ Position) bool {
	return tile == Empty
}

// anchors returns the anchor squares of b: empty cells adjacent to at
// least one occupied cell, or just the center square on an empty
// board.
func (g *Generator) anchors(b *Board) map[Position]bool {
	anchors := make(map[Position]bool)
	neighbors := []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	empty := true
loop:
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.IsEmpty(Position{row, col}) {
				empty = false
				break loop
			}
		}
	}
	if empty {
		anchors[Position{7, 7}] = true
		return anchors
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{row, col}
			if !b.IsEmpty(pos) {
				continue
			}
			for _, step := range neighbors {
				np := pos.Add(step)
				if !np.OutOfBounds() && !b.IsEmpty(np) {
					anchors[pos] = true
					break
				}
			}
		}
	}
	return anchors
}

// crossCheckSet returns the set of letters allowed at pos such that
// the perpendicular (vertical, in b's own orientation) word formed is
// legal, or nil to mean "every letter allowed" (pos has no vertical
// neighbor).
func (g *Generator) crossCheckSet(b *Board, pos Position) map[byte]bool {
	up := pos.Add(reverseStep(AxisDown))
	down := pos.Add(AxisDown)
	hasNeighbor := (!up.OutOfBounds() && !b.IsEmpty(up)) || (!down.OutOfBounds() && !b.IsEmpty(down))
	if !hasNeighbor {
		return nil
	}
	above := b.Traverse(pos, reverseStep(AxisDown), stopAtEmpty)
	below := b.Traverse(pos, AxisDown, stopAtEmpty)
	key := placementsToWord(above) + "|" + placementsToWord(below)
	if cached, ok := g.crossCache.Get(key); ok {
		return cached.(map[byte]bool)
	}
	allowed := make(map[byte]bool)
	saved := b.Get(pos)
	for letter := byte('A'); letter <= 'Z'; letter++ {
		b.Set(pos, letter)
		run := b.TraverseAxisUntilEmpty(pos, AxisDown)
		b.Set(pos, saved)
		if len(run) > 1 && g.Lexicon.Lookup(placementsToWord(run)) != nil {
			allowed[letter] = true
		}
	}
	g.crossCache.Add(key, allowed)
	return allowed
}

func isAllowed(set map[byte]bool, letter byte) bool {
	return set == nil || set[letter]
}

// removeFirst returns a copy of rack with the first occurrence of
// tile removed, and whether tile was present.
func removeFirst(rack []byte, tile byte) ([]byte, bool) {
	for i, t := range rack {
		if t == tile {
			out := make([]byte, 0, len(rack)-1)
			out = append(out, rack[:i]...)
			out = append(out, rack[i+1:]...)
			return out, true
		}
	}
	return rack, false
}

// leftLimit returns the number of consecutive empty, non-anchor cells
// immediately to the left of a, stopping at the board edge, another
// anchor, or an occupied cell, capped at RackSize-1.
func leftLimit(b *Board, anchors map[Position]bool, a Position) int {
	limit := 0
	pos := Position{a.Row, a.Col - 1}
	for limit < RackSize-1 {
		if pos.OutOfBounds() || !b.IsEmpty(pos) || anchors[pos] {
			break
		}
		limit++
		pos = Position{pos.Row, pos.Col - 1}
	}
	return limit
}

// fixedPrefix walks leftward from a collecting the contiguous tiles
// already on the board, returning them in reading order.
func fixedPrefix(b *Board, a Position) string {
	var tiles []byte
	pos := Position{a.Row, a.Col - 1}
	for !pos.OutOfBounds() && !b.IsEmpty(pos) {
		tiles = append(tiles, b.Get(pos))
		pos = Position{pos.Row, pos.Col - 1}
	}
	for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return string(tiles)
}

// prefixBranch is one yield of leftPart: a prefix string, the trie
// node it reaches, and the rack remaining after consuming it.
type prefixBranch struct {
	prefix string
	node   *TrieNode
	rack   []byte
}

// leftPart enumerates every free prefix the rack can form, up to
// limit letters, walking the trie from node. It always includes the
// zero-length prefix (the anchor itself starting the word).
func leftPart(rack []byte, prefix string, node *TrieNode, limit int) []prefixBranch {
	out := []prefixBranch{{prefix: prefix, node: node, rack: rack}}
	if limit == 0 {
		return out
	}
	for _, e := range node.Edges() {
		child := node.Edge(e)
		if newRack, ok := removeFirst(rack, e); ok {
			out = append(out, leftPart(newRack, prefix+string(e), child, limit-1)...)
		}
		if newRack, ok := removeFirst(rack, Empty); ok {
			out = append(out, leftPart(newRack, prefix+strings.ToLower(string(e)), child, limit-1)...)
		}
	}
	return out
}

// rightPart extends rightward from pos, yielding a copy of placed
// each time a legal word is completed beyond the anchor.
func (g *Generator) rightPart(b *Board, rack []byte, anchorIndex int, prefix string, node *TrieNode, pos Position, placed Move) []Move {
	var out []Move
	if pos.OutOfBounds() {
		if len(prefix) != anchorIndex && node.Terminal() {
			out = append(out, placed.Copy())
		}
		return out
	}
	cell := b.Get(pos)
	if cell == Empty {
		if len(prefix) != anchorIndex && node.Terminal() {
			out = append(out, placed.Copy())
		}
		if placed.Len() >= RackSize {
			return out
		}
		cross := g.crossCheckSet(b, pos)
		for _, e := range node.Edges() {
			if !isAllowed(cross, e) {
				continue
			}
			child := node.Edge(e)
			if newRack, ok := removeFirst(rack, e); ok {
				newPlaced := placed.Add(Placement{Tile: e, Pos: pos})
				out = append(out, g.rightPart(b, newRack, anchorIndex, prefix+string(e), child, pos.Add(AxisAcross), newPlaced)...)
			}
			if newRack, ok := removeFirst(rack, Empty); ok {
				blank := strings.ToLower(string(e))[0]
				newPlaced := placed.Add(Placement{Tile: blank, Pos: pos})
				out = append(out, g.rightPart(b, newRack, anchorIndex, prefix+string(e), child, pos.Add(AxisAcross), newPlaced)...)
			}
		}
		return out
	}
	letter := upperTile(cell)
	child := node.Edge(letter)
	if child != nil {
		out = append(out, g.rightPart(b, rack, anchorIndex, prefix+string(letter), child, pos.Add(AxisAcross), placed)...)
	}
	return out
}

// upperTile returns tile's uppercase letter, mapping a lowercase
// blank-placed letter to the trie edge it occupies.
func upperTile(tile byte) byte {
	if tile >= 'a' && tile <= 'z' {
		return tile - ('a' - 'A')
	}
	return tile
}

// anchorMoves returns every move anchored at a.
func (g *Generator) anchorMoves(b *Board, rack []byte, anchors map[Position]bool, a Position) []Move {
	L := leftLimit(b, anchors, a)
	if L > 0 {
		var out []Move
		for _, branch := range leftPart(rack, "", g.Lexicon.Root, L) {
			anchorIndex := len(branch.prefix)
			placed := AnchoredToMove(branch.prefix, a, anchorIndex, true)
			out = append(out, g.rightPart(b, branch.rack, anchorIndex, branch.prefix, branch.node, a, placed)...)
		}
		return out
	}
	prefix := fixedPrefix(b, a)
	node, err := g.Lexicon.GetNode(prefix)
	if err != nil {
		return nil
	}
	return g.rightPart(b, rack, len(prefix), prefix, node, a, NewMove())
}

// genAxisMoves enumerates every across move on b (b is the live board
// for an across pass, or a transposed board for a down pass).
func (g *Generator) genAxisMoves(b *Board, rack []byte) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		anchors := g.anchors(b)
		g.Logger.Debug("computed anchors", zap.Int("count", len(anchors)))
		positions := make([]Position, 0, len(anchors))
		for p := range anchors {
			positions = append(positions, p)
		}
		sort.Slice(positions, func(i, j int) bool {
			if positions[i].Row != positions[j].Row {
				return positions[i].Row < positions[j].Row
			}
			return positions[i].Col < positions[j].Col
		})
		for _, a := range positions {
			for _, m := range g.anchorMoves(b, rack, anchors, a) {
				if !yield(m) {
					return
				}
			}
		}
	}
}
