package board

import "github.com/rs/zerolog/log"

// A Group is a maximal set of same-owner intersections connected
// orthogonally. It is transient; it describes the board at the time it was
// found and is not updated afterwards.
type Group struct {
	Owner   Owner
	Members []Position

	hasLiberty bool
}

// ZeroLiberties is true when no member touches an empty intersection. The
// board edge is never a liberty.
func (gr Group) ZeroLiberties() bool {
	return !gr.hasLiberty
}

// Size is the number of members.
func (gr Group) Size() int {
	return len(gr.Members)
}

// Liberties counts the distinct empty intersections adjacent to the group.
// Unlike ZeroLiberties this always walks every member.
func (gr Group) Liberties(g *GameBoard) int {
	seen := map[Position]bool{}
	for _, m := range gr.Members {
		for _, n := range g.Neighbors(m) {
			if g.Get(n) == Empty {
				seen[n] = true
			}
		}
	}
	return len(seen)
}

// flood collects every intersection connected to start through cells with
// the same owner as start. It uses an explicit stack instead of recursion,
// so group size is not bounded by goroutine stack depth. The traversal
// order is north, west, east, south. visit is called once for every
// (member, non-member neighbor) edge.
func (g *GameBoard) flood(start Position, visit func(Position, Owner)) []Position {
	owner := g.Get(start)
	visited := make([]bool, len(g.cells))
	members := []Position{}
	stack := []Position{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[g.index(p)] {
			continue
		}
		visited[g.index(p)] = true
		members = append(members, p)

		ns := p.neighbors()
		// ns is north, east, west, south. Push in reverse of N, W, E, S
		// so that north is popped first.
		for _, n := range [4]Position{ns[3], ns[1], ns[2], ns[0]} {
			if !g.InBounds(n) {
				continue
			}
			o := g.Get(n)
			if o == owner {
				if !visited[g.index(n)] {
					stack = append(stack, n)
				}
				continue
			}
			if visit != nil {
				visit(n, o)
			}
		}
	}
	return members
}

// FindGroup returns the group containing start. Every member is collected
// even after a liberty has been seen, since removal needs the full set.
func (g *GameBoard) FindGroup(start Position) Group {
	gr := Group{Owner: g.Get(start)}
	gr.Members = g.flood(start, func(_ Position, o Owner) {
		if !gr.hasLiberty && o == Empty {
			gr.hasLiberty = true
		}
	})
	return gr
}

// CaptureAround removes every group of the mover's opponent that touches p
// and has no liberties. Neighbors are examined north, east, west, south.
// Groups of the mover's own color are never examined, so a stone with no
// liberties of its own stays on the board.
// It returns the removed positions in removal order.
func (g *GameBoard) CaptureAround(p Position, mover Owner) []Position {
	opp := mover.Opponent()
	var captured []Position
	for _, n := range p.neighbors() {
		if !g.InBounds(n) || g.Get(n) != opp {
			continue
		}
		gr := g.FindGroup(n)
		if !gr.ZeroLiberties() {
			continue
		}
		log.Debug().Stringer("at", n).Int("stones", gr.Size()).
			Stringer("color", opp).Msg("capturing group")
		g.RemoveCells(gr.Members)
		captured = append(captured, gr.Members...)
	}
	return captured
}

// A Region is a maximal connected set of empty intersections, together with
// the stone colors found on its boundary.
type Region struct {
	Members      []Position
	BordersBlack bool
	BordersWhite bool
}

// Owner classifies the region: territory of the single bordering color, or
// Neutral if it touches both colors or none.
func (r Region) Owner() Owner {
	switch {
	case r.BordersBlack && !r.BordersWhite:
		return BlackTerritory
	case r.BordersWhite && !r.BordersBlack:
		return WhiteTerritory
	}
	return Neutral
}

// FindRegion flood-fills the empty region containing start.
func (g *GameBoard) FindRegion(start Position) Region {
	var r Region
	r.Members = g.flood(start, func(_ Position, o Owner) {
		switch o {
		case Black:
			r.BordersBlack = true
		case White:
			r.BordersWhite = true
		}
	})
	return r
}
