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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/fen"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestGenerateMovesStartPositionCount(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	moves := GenerateMoves(b)
	assrt.Equal(20, moves.Len())
}

func TestGenerateMovesIncludesBothKnightTargetsPerKnight(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	moves := GenerateMoves(b)
	knightMoves := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).Piece() == Knight {
			knightMoves++
		}
	}
	assrt.Equal(4, knightMoves)
}

func TestGenerateMovesPromotionExpandsToFourMoves(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	promotions := 0
	seen := map[PieceKind]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromotion() {
			promotions++
			seen[m.Promotion()] = true
		}
	}
	assrt.Equal(4, promotions)
	for _, pk := range PromotionPieces {
		assrt.True(seen[pk], "missing promotion to %s", pk)
	}
}

func TestGenerateMovesEnPassantCaptureIsFlagged(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsEnPassant() {
			found = true
			assrt.Equal(SqE5, m.From())
			assrt.Equal(SqD6, m.To())
		}
	}
	assrt.True(found, "expected an en passant capture to d6")
}

func TestGenerateMovesCastlingBothSidesFromOpenPosition(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	castles := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsCastling() {
			castles++
		}
	}
	assrt.Equal(2, castles)
}

func TestGenerateMovesCastlingBlockedWhenSquaresOccupied(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastling() {
			assrt.NotEqual(SqC1, m.To(), "queenside castle should be blocked by the queen on d1")
		}
	}
}

func TestGenerateMovesCastlingBlockedWhenTransitAttacked(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("r3k2r/8/b7/8/8/8/8/R3K2R w KQkq - 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastling() {
			assrt.NotEqual(SqG1, m.To(), "kingside castle transits f1, attacked by the bishop on a6")
		}
	}
}

func TestHasLegalMoveFalseOnStalemate(t *testing.T) {
	assrt := assert.New(t)
	// Classic stalemate: king h8 boxed in by the queen on g6 and the king on
	// f7, with h8 itself not attacked.
	b, err := fen.ParseFen("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	assrt.NoError(err)
	assrt.False(b.IsInCheck())
	assrt.False(HasLegalMove(b))
}

func TestHasLegalMoveTrueOnCheckWithEscape(t *testing.T) {
	assrt := assert.New(t)
	// White king on e1 in check from the rook on e8; it can step aside to d2.
	b, err := fen.ParseFen("k3r3/8/8/8/8/8/8/4K3 w - - 0 1")
	assrt.NoError(err)
	assrt.True(b.IsInCheck())
	assrt.True(HasLegalMove(b))
}

func TestGenerateMovesNeverExceedsMaxMoves(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	assrt.True(moves.Len() <= MaxMoves)
}
