package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/goban/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a goban position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
// Only stones are hashed. Territory markers hash the same as an empty
// intersection, so a scored board hashes like the position it came from.
type Zobrist struct {
	posTable [][2]uint64
	boardDim int
}

func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][2]uint64, boardDim*boardDim)
	for i := 0; i < boardDim*boardDim; i++ {
		z.posTable[i][0] = frand.Uint64n(bignum) + 1
		z.posTable[i][1] = frand.Uint64n(bignum) + 1
	}
}

func (z *Zobrist) BoardDim() int {
	return z.boardDim
}

func stoneIdx(o board.Owner) int {
	if o == board.White {
		return 1
	}
	return 0
}

func (z *Zobrist) Hash(squares []board.Owner) uint64 {
	key := uint64(0)
	for i, o := range squares {
		if !o.IsStone() {
			continue
		}
		key ^= z.posTable[i][stoneIdx(o)]
	}
	return key
}

// Toggle adds a stone to, or removes a stone from, an existing key. XOR is
// its own inverse so the same call does both.
func (z *Zobrist) Toggle(key uint64, p board.Position, color board.Owner) uint64 {
	if !color.IsStone() {
		return key
	}
	return key ^ z.posTable[p.Row*z.boardDim+p.Col][stoneIdx(color)]
}

// AddMove updates key for a stone placed at p by color that captured the
// given opposing stones.
func (z *Zobrist) AddMove(key uint64, p board.Position, color board.Owner,
	captured []board.Position) uint64 {

	key = z.Toggle(key, p, color)
	opp := color.Opponent()
	for _, c := range captured {
		key = z.Toggle(key, c, opp)
	}
	return key
}
