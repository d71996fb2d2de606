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

// Package attacks builds, once at process start, every precomputed
// attack table the move generator needs: the leaping-piece tables (king,
// knight, pawn captures) and the magic-bitboard sliding-piece tables for
// rooks and bishops. Everything here is built once into read-only,
// process-scoped memory and is safe to share by reference across threads.
package attacks

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

var (
	kingAttacks   [SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
)

func init() {
	leaperAttacksPreCompute()
}

// knightDeltas are the eight L-shaped (file, rank) offsets a knight jumps.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func leaperAttacksPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		// King: every one of the 8 ray directions, clipped at the edge by
		// Square.To, which returns SqNone for a wrapping step.
		var k Bitboard
		for _, d := range Directions {
			if to := sq.To(d); to.IsValid() {
				k = k.Add(to)
			}
		}
		kingAttacks[sq] = k

		// Knight: clipped by rank/file distance, since an offset that
		// wraps a file edge would otherwise land on a real but wrong
		// square rather than falling off the board.
		var n Bitboard
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				to := SquareOf(File(nf), Rank(nr))
				if SquareDistance(sq, to) == 2 {
					n = n.Add(to)
				}
			}
		}
		knightAttacks[sq] = n

		// Pawn captures: the two diagonal targets, clipped at file A/H.
		pawnAttacks[White][sq] = pawnCaptureTargets(sq, White)
		pawnAttacks[Black][sq] = pawnCaptureTargets(sq, Black)
	}
}

func pawnCaptureTargets(sq Square, c Color) Bitboard {
	var b Bitboard
	var left, right Direction
	if c == White {
		left, right = Northwest, Northeast
	} else {
		left, right = Southwest, Southeast
	}
	if to := sq.To(left); to.IsValid() {
		b = b.Add(to)
	}
	if to := sq.To(right); to.IsValid() {
		b = b.Add(to)
	}
	return b
}

// GetKingAttacks returns the precomputed king attack set for sq.
func GetKingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// GetKnightAttacks returns the precomputed knight attack set for sq.
func GetKnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// GetPawnAttacks returns the two (or one, on the a/h files) diagonal
// capture targets for a pawn of color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }
