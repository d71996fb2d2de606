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

import "strings"

// CastlingRights encodes which castling moves are still available as a
// 4-bit mask.
//  CastlingNone     CastlingRights = 0  // 0000
//  CastlingWhiteOO  CastlingRights = 1  // 0001
//  CastlingWhiteOOO CastlingRights = 2  // 0010
//  CastlingBlackOO  CastlingRights = 4  // 0100
//  CastlingBlackOOO CastlingRights = 8  // 1000
type CastlingRights uint8

// Constants for castling rights.
const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO     CastlingRights = 2
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO      CastlingRights = 4
	CastlingBlackOOO     CastlingRights = 8
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                         = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has checks if the given right is present.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the given right(s) and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the given right(s) and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String returns the FEN castling-rights substring (e.g. "KQkq", "-").
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}

// castlingUpdateMask holds, for each square, the rights mask to AND into
// the current rights whenever a piece moves from or is captured on that
// square. Only A1/E1/H1/A8/E8/H8 clear anything; every other square is
// all-ones (no change).
var castlingUpdateMask [SqLength]CastlingRights

func castlingUpdateMaskPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		castlingUpdateMask[sq] = CastlingAny
	}
	castlingUpdateMask[SqA1] = CastlingAny &^ CastlingWhiteOOO
	castlingUpdateMask[SqE1] = CastlingAny &^ CastlingWhite
	castlingUpdateMask[SqH1] = CastlingAny &^ CastlingWhiteOO
	castlingUpdateMask[SqA8] = CastlingAny &^ CastlingBlackOOO
	castlingUpdateMask[SqE8] = CastlingAny &^ CastlingBlack
	castlingUpdateMask[SqH8] = CastlingAny &^ CastlingBlackOO
}

// CastlingUpdateMask returns the per-square update mask described above.
func CastlingUpdateMask(sq Square) CastlingRights {
	return castlingUpdateMask[sq]
}
