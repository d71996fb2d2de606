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

// Package types holds the leaf value types shared by every other package in
// this module: squares, files, ranks, colors, piece kinds, castling rights,
// bitboards, moves and the zobrist random tables. Nothing here depends on
// anything above it in the module.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of the 64 board squares, one bit per square; bit i is
// set iff square i is a member.
type Bitboard uint64

// BbZero is the empty set. BbAll is the full board.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
	BbOne  Bitboard = 1
)

// per-square, per-file, per-rank precomputed masks.
var (
	squareBb [SqLength]Bitboard
	fileBb   [8]Bitboard
	rankBb   [8]Bitboard
)

// Named file masks, for readability at call sites.
var (
	FileABb Bitboard
	FileBBb Bitboard
	FileCBb Bitboard
	FileDBb Bitboard
	FileEBb Bitboard
	FileFBb Bitboard
	FileGBb Bitboard
	FileHBb Bitboard
)

// Named rank masks.
var (
	Rank1Bb Bitboard
	Rank2Bb Bitboard
	Rank3Bb Bitboard
	Rank4Bb Bitboard
	Rank5Bb Bitboard
	Rank6Bb Bitboard
	Rank7Bb Bitboard
	Rank8Bb Bitboard
)

func init() {
	rankFileBbPreCompute()
	squareToPreCompute()
	castlingUpdateMaskPreCompute()
}

func rankFileBbPreCompute() {
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b |= Bitboard(1) << uint(SquareOf(f, r))
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b |= Bitboard(1) << uint(SquareOf(f, r))
		}
		rankBb[r] = b
	}
	for sq := SqA1; sq < SqNone; sq++ {
		squareBb[sq] = Bitboard(1) << uint(sq)
	}
	FileABb, FileBBb, FileCBb, FileDBb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileEBb, FileFBb, FileGBb, FileHBb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb = rankBb[Rank1], rankBb[Rank2], rankBb[Rank3], rankBb[Rank4]
	Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb = rankBb[Rank5], rankBb[Rank6], rankBb[Rank7], rankBb[Rank8]
}

// --- set algebra, all pure and total ---

// Not returns the complement of b.
func (b Bitboard) Not() Bitboard { return ^b }

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard { return b | o }

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard { return b & o }

// Xor returns the symmetric difference of b and o.
func (b Bitboard) Xor(o Bitboard) Bitboard { return b ^ o }

// AndNot returns the relative complement of o in b (b with o's bits cleared).
func (b Bitboard) AndNot(o Bitboard) Bitboard { return b &^ o }

// Contains reports whether sq is a member of b.
func (b Bitboard) Contains(sq Square) bool { return b&squareBb[sq] != 0 }

// Has is an alias for Contains, matching common bitboard idiom.
func (b Bitboard) Has(sq Square) bool { return b.Contains(sq) }

// Any reports whether b has at least one member.
func (b Bitboard) Any() bool { return b != 0 }

// IsEmpty reports whether b has no members.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// IsSubsetOf reports whether every member of b is also a member of o.
func (b Bitboard) IsSubsetOf(o Bitboard) bool { return b&^o == 0 }

// IsSupersetOf reports whether every member of o is also a member of b.
func (b Bitboard) IsSupersetOf(o Bitboard) bool { return o.IsSubsetOf(b) }

// IsDisjoint reports whether b and o share no members.
func (b Bitboard) IsDisjoint(o Bitboard) bool { return b&o == 0 }

// Add returns b with sq added.
func (b Bitboard) Add(sq Square) Bitboard { return b | squareBb[sq] }

// Discard returns b with sq removed.
func (b Bitboard) Discard(sq Square) Bitboard { return b &^ squareBb[sq] }

// Toggle returns b with sq's membership flipped.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ squareBb[sq] }

// PushSquare sets sq's bit in *b.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= squareBb[sq]
	return *b
}

// PopSquare clears sq's bit in *b.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= squareBb[sq]
	return *b
}

// Lsb returns the lowest-index set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the highest-index set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-index set square (square order).
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// PopMsb clears and returns the highest-index set square.
func (b *Bitboard) PopMsb() Square {
	sq := b.Msb()
	if sq != SqNone {
		*b &^= squareBb[sq]
	}
	return sq
}

// PopCount returns the number of set squares (the set's cardinality).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Clear empties *b.
func (b *Bitboard) Clear() { *b = BbZero }

// --- iteration ---

// Squares returns the squares of b in low-bit-first order. The length of
// the result is exact: len(result) == b.PopCount().
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for t := b; t != 0; {
		sqs = append(sqs, t.PopLsb())
	}
	return sqs
}

// SquaresReverse returns the squares of b in high-bit-first order,
// equivalent to a double-ended iterator's next_back().
func (b Bitboard) SquaresReverse() []Square {
	sqs := make([]Square, 0, b.PopCount())
	for t := b; t != 0; {
		sqs = append(sqs, t.PopMsb())
	}
	return sqs
}

// CarryRippler enumerates every subset of mask exactly once, starting at
// the empty set and ending at mask itself, via the classic
// `subset = (subset - mask) & mask` recurrence (the subtraction wraps,
// which is well defined for the unsigned Bitboard type). It is finite and
// fused: once exhausted it yields no further values.
type CarryRippler struct {
	mask Bitboard
	sub  Bitboard
	done bool
}

// NewCarryRippler returns a rippler over every subset of mask, emitting
// exactly 2^popcount(mask) values.
func NewCarryRippler(mask Bitboard) *CarryRippler {
	return &CarryRippler{mask: mask}
}

// Next returns the next subset and true, or (0, false) once exhausted.
func (cr *CarryRippler) Next() (Bitboard, bool) {
	if cr.done {
		return 0, false
	}
	cur := cr.sub
	if cur == cr.mask {
		cr.done = true
	} else {
		cr.sub = (cr.sub - cr.mask) & cr.mask
	}
	return cur, true
}

// ShiftBitboard shifts every member of b by one step in direction d,
// masking out squares that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		panic("invalid direction")
	}
}

// String renders b as its 64-bit binary pattern.
func (b Bitboard) String() string {
	var os strings.Builder
	for i := 63; i >= 0; i-- {
		if b&(Bitboard(1)<<uint(i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	return os.String()
}

// StringBoard renders b as an 8x8 grid, rank 8 at the top, matching how a
// chess board is normally drawn.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Contains(SquareOf(f, r)) {
				os.WriteString("1 ")
			} else {
				os.WriteString(". ")
			}
		}
		os.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}
