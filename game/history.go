package game

import "github.com/domino14/goban/board"

// A Snapshot is the owner grid after one completed ply, with its zobrist
// hash. It is never modified after it is recorded.
type Snapshot struct {
	squares []board.Owner
	hash    uint64
}

// Squares returns a copy of the snapshot's grid.
func (s Snapshot) Squares() []board.Owner {
	sq := make([]board.Owner, len(s.squares))
	copy(sq, s.squares)
	return sq
}

func (s Snapshot) Hash() uint64 {
	return s.hash
}

// Matches compares the hashes first and only compares the grids when they
// agree, so a hash collision can never report a false repetition.
func (s Snapshot) Matches(sq []board.Owner, hash uint64) bool {
	if s.hash != hash || len(s.squares) != len(sq) {
		return false
	}
	for i := range sq {
		if s.squares[i] != sq[i] {
			return false
		}
	}
	return true
}

// History is the log of every board state in the game, starting with the
// empty board. Index 0 is the newest entry: the board as it stood after the
// last completed ply. Entries are stored oldest first, so pushing and
// truncating from the newest end are both O(1).
type History struct {
	entries []Snapshot
}

func newHistory(initial []board.Owner, hash uint64) *History {
	h := &History{}
	h.push(initial, hash)
	return h
}

func (h *History) Len() int {
	return len(h.entries)
}

// At returns the snapshot i plies back. At(0) is the newest.
func (h *History) At(i int) Snapshot {
	return h.entries[len(h.entries)-1-i]
}

func (h *History) push(sq []board.Owner, hash uint64) {
	h.entries = append(h.entries, Snapshot{squares: sq, hash: hash})
}

// truncate discards the n newest snapshots.
func (h *History) truncate(n int) {
	for i := len(h.entries) - n; i < len(h.entries); i++ {
		h.entries[i] = Snapshot{}
	}
	h.entries = h.entries[:len(h.entries)-n]
}

// Find returns the smallest index i >= from whose snapshot matches the
// given grid, or -1.
func (h *History) Find(sq []board.Owner, hash uint64, from int) int {
	for i := from; i < h.Len(); i++ {
		if h.At(i).Matches(sq, hash) {
			return i
		}
	}
	return -1
}
