// trie.go
// This file implements the lexicon trie: a pure tree keyed on
// uppercase letters, with no suffix sharing.

package skrafl

import (
	"bufio"
	"encoding/binary"
	"io"
	"sort"
	"strings"
)

// TrieNode is one node of the lexicon trie: an edge map from
// uppercase letter to child node, plus a terminal flag marking
// whether the root-to-node path spells a complete word.
type TrieNode struct {
	children map[byte]*TrieNode
	terminal bool
}

// newTrieNode returns an empty, non-terminal node.
func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[byte]*TrieNode)}
}

// Terminal reports whether the path reaching this node spells a
// complete word.
func (n *TrieNode) Terminal() bool {
	return n.terminal
}

// Edge returns the child reached by letter, or nil if no such edge
// exists.
func (n *TrieNode) Edge(letter byte) *TrieNode {
	return n.children[letter]
}

// Edges returns the node's outgoing letters in deterministic,
// alphabetically sorted order, so the move generator visits edges
// in a fixed order.
func (n *TrieNode) Edges() []byte {
	letters := make([]byte, 0, len(n.children))
	for letter := range n.children {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// AddChild adds a new edge labeled letter to a fresh child node. It
// fails with ErrDuplicateEdge if the edge already exists.
func (n *TrieNode) AddChild(letter byte) (*TrieNode, error) {
	if _, ok := n.children[letter]; ok {
		return nil, ErrDuplicateEdge
	}
	child := newTrieNode()
	n.children[letter] = child
	return child, nil
}

// Trie is the lexicon: a root TrieNode plus the word-building and
// lookup operations the generator needs.
type Trie struct {
	Root *TrieNode
}

// NewTrie returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{Root: newTrieNode()}
}

// BuildFromList builds a Trie from a list of words, uppercasing each
// one and walking/extending the tree as needed.
func BuildFromList(words []string) *Trie {
	t := NewTrie()
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts word (uppercased) into the trie, creating any missing
// edges, and marks its terminal node.
func (t *Trie) Add(word string) {
	word = strings.ToUpper(word)
	node := t.Root
	for i := 0; i < len(word); i++ {
		letter := word[i]
		child, ok := node.children[letter]
		if !ok {
			child = newTrieNode()
			node.children[letter] = child
		}
		node = child
	}
	node.terminal = true
}

// GetNode walks path (uppercased) from the root and returns the node
// reached, or ErrPathNotFound if any edge along the way is missing.
func (t *Trie) GetNode(path string) (*TrieNode, error) {
	path = strings.ToUpper(path)
	node := t.Root
	for i := 0; i < len(path); i++ {
		child, ok := node.children[path[i]]
		if !ok {
			return nil, ErrPathNotFound
		}
		node = child
	}
	return node, nil
}

// Lookup returns the terminal node for word (uppercased), or nil if
// the path is absent or the node reached is not terminal.
func (t *Trie) Lookup(word string) *TrieNode {
	node, err := t.GetNode(word)
	if err != nil || !node.terminal {
		return nil
	}
	return node
}

// Serialize writes the trie to w in a length-prefixed preorder
// stream: for each node, a uint8 terminal flag, a uint8 child count,
// then for each child a uint8 edge letter followed by the child's own
// serialized form.
func (t *Trie) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := serializeNode(bw, t.Root); err != nil {
		return err
	}
	return bw.Flush()
}

func serializeNode(w *bufio.Writer, n *TrieNode) error {
	var terminalByte byte
	if n.terminal {
		terminalByte = 1
	}
	if err := w.WriteByte(terminalByte); err != nil {
		return err
	}
	letters := n.Edges()
	if err := binary.Write(w, binary.LittleEndian, uint8(len(letters))); err != nil {
		return err
	}
	for _, letter := range letters {
		if err := w.WriteByte(letter); err != nil {
			return err
		}
		if err := serializeNode(w, n.children[letter]); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeTrie reads the format written by Trie.Serialize.
func DeserializeTrie(r io.Reader) (*Trie, error) {
	br := bufio.NewReader(r)
	root, err := deserializeNode(br)
	if err != nil {
		return nil, err
	}
	return &Trie{Root: root}, nil
}

func deserializeNode(r *bufio.Reader) (*TrieNode, error) {
	terminalByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	n := newTrieNode()
	n.terminal = terminalByte == 1
	var childCount uint8
	if err := binary.Read(r, binary.LittleEndian, &childCount); err != nil {
		return nil, err
	}
	for i := uint8(0); i < childCount; i++ {
		letter, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		child, err := deserializeNode(r)
		if err != nil {
			return nil, err
		}
		n.children[letter] = child
	}
	return n, nil
}
