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

func TestBitboardSetAlgebra(t *testing.T) {
	assert := assert.New(t)
	b := BbZero.Add(SqA1).Add(SqH8)
	assert.True(b.Contains(SqA1))
	assert.True(b.Contains(SqH8))
	assert.False(b.Contains(SqD4))
	assert.EqualValues(2, b.PopCount())

	b2 := b.Discard(SqA1)
	assert.False(b2.Contains(SqA1))
	assert.True(b2.Contains(SqH8))

	b3 := b.Toggle(SqA1).Toggle(SqA1)
	assert.Equal(b, b3)
}

func TestBitboardSubsetSuperset(t *testing.T) {
	assert := assert.New(t)
	whole := FileABb
	part := SqA1.Bb().Add(SqA4)
	assert.True(part.IsSubsetOf(whole))
	assert.True(whole.IsSupersetOf(part))
	assert.False(whole.IsSubsetOf(part))
	assert.True(FileABb.IsDisjoint(FileBBb))
}

func TestBitboardLsbMsbPop(t *testing.T) {
	assert := assert.New(t)
	b := SqC3.Bb().Add(SqF6)
	assert.Equal(SqC3, b.Lsb())
	assert.Equal(SqF6, b.Msb())

	popped := b.PopLsb()
	assert.Equal(SqC3, popped)
	assert.Equal(SqF6, b.Lsb())

	empty := BbZero
	assert.Equal(SqNone, empty.Lsb())
	assert.Equal(SqNone, empty.Msb())
}

func TestBitboardSquaresOrdering(t *testing.T) {
	assert := assert.New(t)
	b := SqH8.Bb().Add(SqA1)
	asc := b.Squares()
	assert.Equal([]Square{SqA1, SqH8}, asc)
	desc := b.SquaresReverse()
	assert.Equal([]Square{SqH8, SqA1}, desc)
}

func TestCarryRipplerEnumeratesEverySubsetExactlyOnce(t *testing.T) {
	assert := assert.New(t)
	mask := SqA1.Bb().Add(SqB2).Add(SqC3)
	seen := make(map[Bitboard]int)
	rippler := NewCarryRippler(mask)
	count := 0
	for {
		b, ok := rippler.Next()
		if !ok {
			break
		}
		assert.True(b.IsSubsetOf(mask))
		seen[b]++
		count++
	}
	assert.Equal(1<<mask.PopCount(), count)
	for b, n := range seen {
		assert.Equal(1, n, "subset %v enumerated more than once", b)
	}
	// the empty set and the full mask must both appear.
	assert.Equal(1, seen[BbZero])
	assert.Equal(1, seen[mask])
}

func TestCarryRipplerEmptyMask(t *testing.T) {
	assert := assert.New(t)
	rippler := NewCarryRippler(BbZero)
	b, ok := rippler.Next()
	assert.True(ok)
	assert.Equal(BbZero, b)
	_, ok = rippler.Next()
	assert.False(ok)
}

func TestShiftBitboardClipsFileWrap(t *testing.T) {
	assert := assert.New(t)
	h := SqH4.Bb()
	assert.Equal(BbZero, ShiftBitboard(h, East))
	a := SqA4.Bb()
	assert.Equal(BbZero, ShiftBitboard(a, West))
	assert.Equal(SqA5.Bb(), ShiftBitboard(a, North))
}

func TestNamedFileAndRankMasks(t *testing.T) {
	assert := assert.New(t)
	assert.EqualValues(8, FileABb.PopCount())
	assert.EqualValues(8, Rank1Bb.PopCount())
	assert.True(FileABb.Contains(SqA1))
	assert.True(FileABb.Contains(SqA8))
	assert.True(Rank1Bb.Contains(SqA1))
	assert.True(Rank1Bb.Contains(SqH1))
}
