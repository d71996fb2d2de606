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

// PieceKind is a small closed enum identifying a chess piece's type,
// independent of color. The numeric values are fixed: they are packed
// directly into a Move's piece/capture/promotion fields (3 bits each).
type PieceKind uint8

// Piece kind constants. None is the sentinel used by Move to mark the
// absence of a capture or promotion; it must fit in 3 bits (hence 7,
// not the next free value after King).
const (
	Pawn   PieceKind = 0
	Knight PieceKind = 1
	Bishop PieceKind = 2
	Rook   PieceKind = 3
	Queen  PieceKind = 4
	King   PieceKind = 5
	None   PieceKind = 7

	PieceKindLength = 6
)

// IsValid reports whether pk is one of the six real piece kinds.
func (pk PieceKind) IsValid() bool {
	return pk < PieceKindLength
}

var pieceKindToString = [8]string{"p", "n", "b", "r", "q", "k", "-", "-"}

// String returns the lower-case algebraic letter for the piece kind
// ("p", "n", "b", "r", "q", "k"), or "-" for None.
func (pk PieceKind) String() string {
	return pieceKindToString[pk]
}

var pieceKindToChar = [8]string{"P", "N", "B", "R", "Q", "K", "-", "-"}

// Char returns the upper-case algebraic letter for the piece kind.
func (pk PieceKind) Char() string {
	return pieceKindToChar[pk]
}

// PromotionPieces lists the piece kinds a pawn may promote to, in the
// fixed emission order the move generator uses.
var PromotionPieces = [4]PieceKind{Knight, Bishop, Rook, Queen}
