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

package types

import "fmt"

// Color represents the two sides of a chess game.
type Color uint8

// Constants for each color.
const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// pawn advance direction per color.
var pawnDir = [2]Direction{North, South}

// MoveDirection returns the direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

// PromotionRankBb returns the rank on which a pawn of this color promotes.
// Computed from rankBb at call time rather than cached in a package var,
// since rankBb itself is only populated once types' init() has run.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return rankBb[Rank8]
	}
	return rankBb[Rank1]
}

// PawnDoubleRank returns the rank a pawn of this color lands on after a
// double step from its start rank.
func (c Color) PawnDoubleRank() Bitboard {
	if c == White {
		return rankBb[Rank4]
	}
	return rankBb[Rank5]
}

// PawnStartRank returns the rank on which this color's pawns begin the game
// (and from which a double step is legal).
func (c Color) PawnStartRank() Bitboard {
	if c == White {
		return rankBb[Rank2]
	}
	return rankBb[Rank7]
}

var epCaptureRank = [2]Rank{Rank5, Rank4}

// EpCaptureRank returns the rank a pawn of this color must stand on to make
// an en passant capture (rank 5 for White, rank 4 for Black).
func (c Color) EpCaptureRank() Rank {
	return epCaptureRank[c]
}
