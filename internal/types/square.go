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

// Square is a board square, 0..63, index = file + 8*rank.
type Square uint8

// Square constants, A1..H8 in rank-major order, plus the SqNone sentinel.
//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square((uint8(r) << 3) + uint8(f))
}

// MakeSquare parses a two-character algebraic square name (e.g. "e4").
// Returns SqNone if s is not a valid square name.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return SquareOf(File(f-'a'), Rank(r-'1'))
}

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	return squareBb[sq]
}

// sqTo[sq][d] is SqNone when moving from sq in direction d would wrap
// around a board edge, otherwise the destination square.
var sqTo [SqLength][8]Square

// To returns the square reached by moving one step in direction d from sq,
// or SqNone if that step would cross a board edge.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][d.index()]
}

// index maps a Direction to its position in the Directions array.
func (d Direction) index() int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	case Northeast:
		return 4
	case Southeast:
		return 5
	case Southwest:
		return 6
	case Northwest:
		return 7
	default:
		panic("invalid direction")
	}
}

func squareToPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()
		for i, d := range Directions {
			dest := Square(int8(sq) + int8(d))
			switch d {
			case East:
				if f == FileH {
					dest = SqNone
				}
			case West:
				if f == FileA {
					dest = SqNone
				}
			case North:
				if r == Rank8 {
					dest = SqNone
				}
			case South:
				if r == Rank1 {
					dest = SqNone
				}
			case Northeast:
				if f == FileH || r == Rank8 {
					dest = SqNone
				}
			case Southeast:
				if f == FileH || r == Rank1 {
					dest = SqNone
				}
			case Southwest:
				if f == FileA || r == Rank1 {
					dest = SqNone
				}
			case Northwest:
				if f == FileA || r == Rank8 {
					dest = SqNone
				}
			}
			sqTo[sq][i] = dest
		}
	}
}

// String returns the algebraic name of the square (e.g. "e4"), or "-" if
// sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// FileDistance returns the absolute difference in files between two squares.
func FileDistance(s1, s2 Square) int {
	d := int(s1.FileOf()) - int(s2.FileOf())
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute difference in ranks between two squares.
func RankDistance(s1, s2 Square) int {
	d := int(s1.RankOf()) - int(s2.RankOf())
	if d < 0 {
		return -d
	}
	return d
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1, s2)
	rd := RankDistance(s1, s2)
	if fd > rd {
		return fd
	}
	return rd
}
