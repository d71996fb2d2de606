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

func TestCastlingRightsEncoding(t *testing.T) {
	assert := assert.New(t)
	assert.EqualValues(1, CastlingWhiteOO)
	assert.EqualValues(2, CastlingWhiteOOO)
	assert.EqualValues(4, CastlingBlackOO)
	assert.EqualValues(8, CastlingBlackOOO)
	assert.EqualValues(15, CastlingAny)
}

func TestCastlingRightsHasAddRemove(t *testing.T) {
	assert := assert.New(t)
	cr := CastlingAny
	assert.True(cr.Has(CastlingWhiteOO))
	cr.Remove(CastlingWhiteOO)
	assert.False(cr.Has(CastlingWhiteOO))
	assert.True(cr.Has(CastlingBlackOOO))
	cr.Add(CastlingWhiteOO)
	assert.True(cr.Has(CastlingWhiteOO))
}

func TestCastlingRightsString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("KQkq", CastlingAny.String())
	assert.Equal("-", CastlingNone.String())
	assert.Equal("Kq", (CastlingWhiteOO | CastlingBlackOOO).String())
}

func TestCastlingUpdateMaskOnlyAffectsRookAndKingSquares(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(CastlingAny&^CastlingWhiteOOO, CastlingUpdateMask(SqA1))
	assert.Equal(CastlingAny&^CastlingWhite, CastlingUpdateMask(SqE1))
	assert.Equal(CastlingAny&^CastlingWhiteOO, CastlingUpdateMask(SqH1))
	assert.Equal(CastlingAny&^CastlingBlackOOO, CastlingUpdateMask(SqA8))
	assert.Equal(CastlingAny&^CastlingBlack, CastlingUpdateMask(SqE8))
	assert.Equal(CastlingAny&^CastlingBlackOO, CastlingUpdateMask(SqH8))
	assert.Equal(CastlingAny, CastlingUpdateMask(SqD4))
}

func TestCastlingUpdateMaskAppliedViaAnd(t *testing.T) {
	assert := assert.New(t)
	// the intended use: rights = rights & CastlingUpdateMask(fromOrToSquare).
	cr := CastlingAny
	cr &= CastlingUpdateMask(SqE1) // White king moves
	assert.False(cr.Has(CastlingWhiteOO))
	assert.False(cr.Has(CastlingWhiteOOO))
	assert.True(cr.Has(CastlingBlackOO))
	assert.True(cr.Has(CastlingBlackOOO))
}
