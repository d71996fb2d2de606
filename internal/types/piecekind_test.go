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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceKindEncodingMatchesFixedLayout(t *testing.T) {
	assert := assert.New(t)
	assert.EqualValues(0, Pawn)
	assert.EqualValues(1, Knight)
	assert.EqualValues(2, Bishop)
	assert.EqualValues(3, Rook)
	assert.EqualValues(4, Queen)
	assert.EqualValues(5, King)
	assert.EqualValues(7, None)
}

func TestPieceKindIsValid(t *testing.T) {
	assert := assert.New(t)
	assert.True(Pawn.IsValid())
	assert.True(King.IsValid())
	assert.False(None.IsValid())
	assert.False(PieceKind(6).IsValid())
}

func TestPieceKindStringAndChar(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("p", Pawn.String())
	assert.Equal("P", Pawn.Char())
	assert.Equal("q", Queen.String())
	assert.Equal("Q", Queen.Char())
	assert.Equal("-", None.String())
}

func TestPromotionPiecesOrder(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([4]PieceKind{Knight, Bishop, Rook, Queen}, PromotionPieces)
}
