// errors.go
// This file declares the sentinel errors surfaced by the skrafl
// package, per the error kinds named in the move-generator
// specification.

package skrafl

import "errors"

// ErrNoTileAtPosition is returned by Move.GetTile when the move does
// not place a tile at the requested Position.
var ErrNoTileAtPosition = errors.New("skrafl: no tile at position")

// ErrPathNotFound is returned by Trie.GetNode when no edge sequence
// in the trie matches the requested path.
var ErrPathNotFound = errors.New("skrafl: path not found")

// ErrDuplicateEdge is returned by TrieNode.AddChild when an edge for
// the given letter already exists.
var ErrDuplicateEdge = errors.New("skrafl: duplicate edge")

// ErrTileNotAvailable reports that a tile was removed from a rack or
// tile pool that does not contain it. No function of this package
// returns it.
var ErrTileNotAvailable = errors.New("skrafl: tile not available")

// ErrRackRange reports that a rack would hold more than RackSize
// tiles. No function of this package returns it.
var ErrRackRange = errors.New("skrafl: rack size exceeded")
