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

// ZobristKey is a 64-bit incremental position hash.
type ZobristKey uint64

// zobristSeed seeds the xorshift64star generator that builds every random
// table below. Fixed so that the tables (and therefore every ZobristKey
// computed anywhere) are stable across process runs and machines.
const zobristSeed = 1070372

var (
	zobristPiece    [ColorLength][PieceKindLength][SqLength]ZobristKey
	zobristCastling [16]ZobristKey
	zobristEnPassant [8]ZobristKey // indexed by File of the ep target square
	zobristSide     ZobristKey
)

// zobristPrnG is the same xorshift64star generator attacks.prnG uses to
// build the magic-bitboard tables, duplicated here since it is unexported
// in that package and the two tables are built independently at init time.
type zobristPrnG struct {
	s uint64
}

func (r *zobristPrnG) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}

func init() {
	r := zobristPrnG{s: zobristSeed}
	for c := 0; c < ColorLength; c++ {
		for pk := 0; pk < PieceKindLength; pk++ {
			for sq := SqA1; sq < SqNone; sq++ {
				zobristPiece[c][pk][sq] = ZobristKey(r.rand64())
			}
		}
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = ZobristKey(r.rand64())
	}
	for i := range zobristCastling {
		zobristCastling[i] = ZobristKey(r.rand64())
	}
	zobristSide = ZobristKey(r.rand64())
}

// ZobristPiece returns the random key associated with piece kind pk of
// color c standing on sq.
func ZobristPiece(c Color, pk PieceKind, sq Square) ZobristKey {
	return zobristPiece[c][pk][sq]
}

// ZobristCastling returns the random key for a given castling rights mask.
func ZobristCastling(cr CastlingRights) ZobristKey {
	return zobristCastling[cr]
}

// ZobristEnPassant returns the random key for an en passant target square.
// The absence of an en passant target contributes nothing: it is the XOR
// identity element, not a sentinel key, so toggling en passant on and then
// immediately off again (or never having one at all) never perturbs the
// hash.
func ZobristEnPassant(sq Square) ZobristKey {
	if sq == SqNone {
		return 0
	}
	return zobristEnPassant[sq.FileOf()]
}

// ZobristSide returns the random key toggled whenever the side to move
// changes.
func ZobristSide() ZobristKey {
	return zobristSide
}
