//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package attacks

import (
	"fmt"

	. "github.com/frankkopp/chesscore/internal/types"
)

// magic holds, for one square and one slider piece kind, the data needed
// to turn an occupancy bitboard into an index into that piece's shared
// attack table.
type magic struct {
	mask   Bitboard
	number Bitboard
	shift  uint
	offset int
}

// index maps an occupancy bitboard to this magic's slot in the shared
// attack table.
func (m *magic) index(occupied Bitboard) int {
	occ := occupied & m.mask
	return m.offset + int((uint64(occ)*uint64(m.number))>>m.shift)
}

const (
	rookTableSize   = 0x19000 // 102400
	bishopTableSize = 0x1480  // 5248
)

var (
	rookMagics   [SqLength]magic
	bishopMagics [SqLength]magic
	rookTable    []Bitboard
	bishopTable  []Bitboard
)

// per-rank seeds for the magic-candidate RNG, ordered by the square's rank;
// low ranks need fewer candidate draws before a good magic is found.
var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func init() {
	rookTable = make([]Bitboard, rookTableSize)
	bishopTable = make([]Bitboard, bishopTableSize)
	buildMagics(&rookMagics, rookTable, RookDirections)
	buildMagics(&bishopMagics, bishopTable, BishopDirections)
	assertInjective(&rookMagics, rookTable, RookDirections)
	assertInjective(&bishopMagics, bishopTable, BishopDirections)
}

// relevantOccupancy computes the mask of squares (excluding sq itself and
// the board edge in each of dirs) whose occupancy can affect the slider's
// attack set from sq.
func relevantOccupancy(sq Square, dirs [4]Direction) Bitboard {
	var b Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			next := cur.To(d)
			if !next.IsValid() {
				break
			}
			if after := next.To(d); !after.IsValid() {
				break // next is the far edge square; excluded from the mask
			}
			b = b.Add(next)
			cur = next
		}
	}
	return b
}

// slidingAttack ray-casts from sq in each of dirs over the given occupancy,
// including the first blocker square on each ray (or the board edge) and
// stopping there. Used only at table-build time.
func slidingAttack(sq Square, dirs [4]Direction, occupied Bitboard) Bitboard {
	var b Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			next := cur.To(d)
			if !next.IsValid() {
				break
			}
			b = b.Add(next)
			if occupied.Contains(next) {
				break
			}
			cur = next
		}
	}
	return b
}

// buildMagics fills magics[sq] and the shared table for every square, for
// one slider piece (rook or bishop, selected by dirs).
func buildMagics(magics *[SqLength]magic, table []Bitboard, dirs [4]Direction) {
	offset := 0
	var epoch [rookTableSize]int // reused for both tables; bishop's is smaller
	attempt := 0                 // monotonic across every square and candidate tried
	occupancy := make([]Bitboard, 1<<12)
	reference := make([]Bitboard, 1<<12)

	for sq := SqA1; sq < SqNone; sq++ {
		mask := relevantOccupancy(sq, dirs)
		bitsN := mask.PopCount()
		size := 1 << uint(bitsN)

		n := 0
		rippler := NewCarryRippler(mask)
		for {
			b, ok := rippler.Next()
			if !ok {
				break
			}
			occupancy[n] = b
			reference[n] = slidingAttack(sq, dirs, b)
			n++
		}
		if n != size {
			panic(fmt.Sprintf("attacks: carry-rippler produced %d subsets, expected %d", n, size))
		}

		rng := newPrnG(magicSeeds[sq.RankOf()])
		shift := uint(64 - bitsN)

		var m magic
		m.mask = mask
		m.shift = shift
		m.offset = offset

	search:
		for {
			// Stockfish-style pre-filter: keep only candidates whose product
			// with the mask has at least 6 bits set.
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparseRand())
				if Bitboard(uint64(mask)*uint64(candidate)).PopCount() >= 6 {
					break
				}
			}
			m.number = candidate
			attempt++
			for i := 0; i < size; i++ {
				idx := m.index(occupancy[i]) - offset
				if epoch[idx] != attempt {
					epoch[idx] = attempt
					table[offset+idx] = reference[i]
				} else if table[offset+idx] != reference[i] {
					continue search
				}
			}
			break search
		}

		magics[sq] = m
		offset += size
	}

	expected := rookTableSize
	if dirs == BishopDirections {
		expected = bishopTableSize
	}
	if offset != expected {
		panic(fmt.Sprintf("attacks: magic table filled %d entries, expected %d", offset, expected))
	}
}

// assertInjective re-verifies, from scratch, that every occupancy subset of
// every square's mask maps to a table slot holding exactly the attack set a
// direct ray-cast computes. This is the explicit injectivity assertion the
// magic-table build must perform; a failure here is a fatal initialization
// error (the engine cannot function with a broken attack table).
func assertInjective(magics *[SqLength]magic, table []Bitboard, dirs [4]Direction) {
	for sq := SqA1; sq < SqNone; sq++ {
		m := &magics[sq]
		rippler := NewCarryRippler(m.mask)
		for {
			b, ok := rippler.Next()
			if !ok {
				break
			}
			want := slidingAttack(sq, dirs, b)
			got := table[m.index(b)]
			if got != want {
				panic(fmt.Sprintf("attacks: magic collision detected for square %s", sq))
			}
		}
	}
}

// GetRookAttacks returns the rook attack set from sq given total board
// occupancy.
func GetRookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return rookTable[m.index(occupied)]
}

// GetBishopAttacks returns the bishop attack set from sq given total board
// occupancy.
func GetBishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return bishopTable[m.index(occupied)]
}

// GetQueenAttacks returns the queen attack set from sq: the union of the
// rook and bishop attack sets.
func GetQueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return GetRookAttacks(sq, occupied) | GetBishopAttacks(sq, occupied)
}

// GetSliderAttacks dispatches to the rook/bishop/queen table for pk. Panics
// if pk is not a slider (callers should use GetKingAttacks/GetKnightAttacks/
// GetPawnAttacks for leaping pieces).
func GetSliderAttacks(pk PieceKind, sq Square, occupied Bitboard) Bitboard {
	switch pk {
	case Rook:
		return GetRookAttacks(sq, occupied)
	case Bishop:
		return GetBishopAttacks(sq, occupied)
	case Queen:
		return GetQueenAttacks(sq, occupied)
	default:
		panic(fmt.Sprintf("attacks: %s is not a slider", pk))
	}
}
