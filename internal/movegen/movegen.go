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

// Package movegen generates pseudo-legal moves for a board position and
// confirms legality by probing each one through Board.MakeMove/UnmakeMove.
// There is no move ordering, no killer/PV bookkeeping and no on-demand
// staged generation here: the core has no search loop to feed, so
// GenerateMoves always produces the complete pseudo-legal set in one pass.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/moveslice"
	. "github.com/frankkopp/chesscore/internal/types"
)

// GenerateMoves returns every pseudo-legal move for the side to move on b.
// The returned MoveSlice is freshly allocated with MaxMoves capacity, per
// §5's fixed-capacity move list.
func GenerateMoves(b *board.Board) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(MaxMoves)
	GenerateMovesInto(b, moves)
	return moves
}

// GenerateMovesInto appends every pseudo-legal move for the side to move on
// b to moves, without clearing it first. Callers that generate moves at
// high frequency (perft) can reuse one MoveSlice across calls by Clear()ing
// it between generations instead of paying a fresh allocation each time.
func GenerateMovesInto(b *board.Board, moves *moveslice.MoveSlice) {
	us := b.State().SideToMove
	them := us.Flip()
	own := b.OccupiedBy(us)
	opponent := b.OccupiedBy(them)
	occ := own | opponent

	generateKingMoves(b, moves, us, own)
	generateKnightMoves(b, moves, us, own)
	generateSliderMoves(b, moves, us, own, occ, Bishop)
	generateSliderMoves(b, moves, us, own, occ, Rook)
	generateSliderMoves(b, moves, us, own, occ, Queen)
	generatePawnMoves(b, moves, us, them, own, opponent, occ)
	generateCastlingMoves(b, moves, us, occ)
}

func generateKingMoves(b *board.Board, moves *moveslice.MoveSlice, us Color, own Bitboard) {
	from := b.KingSquare(us)
	targets := attacks.GetKingAttacks(from).AndNot(own)
	for _, to := range targets.Squares() {
		emitMove(b, moves, us, King, from, to)
	}
}

func generateKnightMoves(b *board.Board, moves *moveslice.MoveSlice, us Color, own Bitboard) {
	for _, from := range b.PiecesBb(us, Knight).Squares() {
		targets := attacks.GetKnightAttacks(from).AndNot(own)
		for _, to := range targets.Squares() {
			emitMove(b, moves, us, Knight, from, to)
		}
	}
}

func generateSliderMoves(b *board.Board, moves *moveslice.MoveSlice, us Color, own, occ Bitboard, pk PieceKind) {
	for _, from := range b.PiecesBb(us, pk).Squares() {
		targets := attacks.GetSliderAttacks(pk, from, occ).AndNot(own)
		for _, to := range targets.Squares() {
			emitMove(b, moves, us, pk, from, to)
		}
	}
}

// emitMove builds and appends a single king/knight/slider move; capture is
// whatever piece kind (or None) sits on the destination square.
func emitMove(b *board.Board, moves *moveslice.MoveSlice, us Color, pk PieceKind, from, to Square) {
	m := NewMoveBuilder().Piece(pk).From(from).To(to).Capture(b.PieceAt(to)).Build()
	moves.PushBack(m)
}

func generatePawnMoves(b *board.Board, moves *moveslice.MoveSlice, us, them Color, own, opponent, occ Bitboard) {
	pawns := b.PiecesBb(us, Pawn)
	empty := occ.Not()
	d := us.MoveDirection()
	promotionRank := us.PromotionRankBb()

	oneStep := ShiftBitboard(pawns, d).And(empty)
	for _, to := range oneStep.Squares() {
		from := Square(int8(to) - int8(d))
		generatePawnPush(moves, us, from, to, promotionRank)
	}

	twoStep := ShiftBitboard(oneStep, d).And(empty).And(us.PawnDoubleRank())
	for _, to := range twoStep.Squares() {
		from := Square(int8(to) - 2*int8(d))
		m := NewMoveBuilder().Piece(Pawn).From(from).To(to).Capture(None).DoubleStep().Build()
		moves.PushBack(m)
	}

	epSquare := b.State().EnPassantSquare
	for _, from := range pawns.Squares() {
		captures := attacks.GetPawnAttacks(us, from).And(opponent)
		for _, to := range captures.Squares() {
			generatePawnCapture(b, moves, us, from, to, promotionRank, false)
		}
		if epSquare != SqNone && attacks.GetPawnAttacks(us, from).Contains(epSquare) {
			generatePawnCapture(b, moves, us, from, epSquare, promotionRank, true)
		}
	}
}

func generatePawnPush(moves *moveslice.MoveSlice, us Color, from, to Square, promotionRank Bitboard) {
	if promotionRank.Contains(to) {
		for _, promo := range PromotionPieces {
			m := NewMoveBuilder().Piece(Pawn).From(from).To(to).Capture(None).Promotion(promo).Build()
			moves.PushBack(m)
		}
		return
	}
	m := NewMoveBuilder().Piece(Pawn).From(from).To(to).Capture(None).Build()
	moves.PushBack(m)
}

func generatePawnCapture(b *board.Board, moves *moveslice.MoveSlice, us Color, from, to Square, promotionRank Bitboard, isEp bool) {
	capture := Pawn
	if !isEp {
		capture = b.PieceAt(to)
	}
	if promotionRank.Contains(to) {
		for _, promo := range PromotionPieces {
			m := NewMoveBuilder().Piece(Pawn).From(from).To(to).Capture(capture).Promotion(promo).Build()
			moves.PushBack(m)
		}
		return
	}
	mb := NewMoveBuilder().Piece(Pawn).From(from).To(to).Capture(capture)
	if isEp {
		mb = mb.EnPassant()
	}
	moves.PushBack(mb.Build())
}

// castlingSpec pairs a castling right with the king's origin and
// destination squares, the squares that must be empty, and the one square
// the king passes through, which (like the king's own square) must not be
// attacked for the move to be generated.
type castlingSpec struct {
	right         CastlingRights
	kingFrom      Square
	kingTo        Square
	emptySquares  Bitboard
	transitSquare Square
}

func squaresBb(squares ...Square) Bitboard {
	var bb Bitboard
	for _, sq := range squares {
		bb = bb.Add(sq)
	}
	return bb
}

func castlingSpecs(us Color) (kingSide, queenSide castlingSpec) {
	if us == White {
		return castlingSpec{CastlingWhiteOO, SqE1, SqG1, squaresBb(SqF1, SqG1), SqF1},
			castlingSpec{CastlingWhiteOOO, SqE1, SqC1, squaresBb(SqB1, SqC1, SqD1), SqD1}
	}
	return castlingSpec{CastlingBlackOO, SqE8, SqG8, squaresBb(SqF8, SqG8), SqF8},
		castlingSpec{CastlingBlackOOO, SqE8, SqC8, squaresBb(SqB8, SqC8, SqD8), SqD8}
}

func generateCastlingMoves(b *board.Board, moves *moveslice.MoveSlice, us Color, occ Bitboard) {
	them := us.Flip()
	rights := b.State().CastlingRights
	kingSide, queenSide := castlingSpecs(us)

	if rights.Has(kingSide.right) && kingSide.emptySquares.IsDisjoint(occ) {
		if !b.IsSquareAttacked(them, kingSide.kingFrom) && !b.IsSquareAttacked(them, kingSide.transitSquare) {
			m := NewMoveBuilder().Piece(King).From(kingSide.kingFrom).To(kingSide.kingTo).Capture(None).Castling().Build()
			moves.PushBack(m)
		}
	}
	if rights.Has(queenSide.right) && queenSide.emptySquares.IsDisjoint(occ) {
		if !b.IsSquareAttacked(them, queenSide.kingFrom) && !b.IsSquareAttacked(them, queenSide.transitSquare) {
			m := NewMoveBuilder().Piece(King).From(queenSide.kingFrom).To(queenSide.kingTo).Capture(None).Castling().Build()
			moves.PushBack(m)
		}
	}
}

// HasLegalMove reports whether the side to move has at least one legal
// move, by probing pseudo-legal moves through make/unmake until one
// survives. Lives in movegen rather than board because it must generate
// candidates, and board must never import movegen.
func HasLegalMove(b *board.Board) bool {
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if b.MakeMove(m) {
			b.UnmakeMove()
			return true
		}
	}
	return false
}
