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

// Package board implements the mutable chess position: the Board type, its
// piece placement, and the make_move/unmake_move pair that is the only way
// to mutate it. Everything in internal/attacks is precomputed and read-only;
// Board is where that data gets put to use against an actual position.
package board

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// State is the cheap-to-copy part of a position: everything needed to
// describe "whose move, what rights, what's en passant-able" without the
// board itself. Move records the move that produced this exact state; it is
// None for the state a Board is constructed with and is otherwise only
// consulted by UnmakeMove.
type State struct {
	SideToMove      Color
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfmoveClock   int
	FullmoveNumber  int
	ZobristKey      ZobristKey
	Move            Move
}

// NewState returns the starting-position State.
func NewState() State {
	return State{
		SideToMove:      White,
		CastlingRights:  CastlingAny,
		EnPassantSquare: SqNone,
		HalfmoveClock:   0,
		FullmoveNumber:  1,
		Move:            MoveNone,
	}
}
