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

package board

import (
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/attacks"
	. "github.com/frankkopp/chesscore/internal/types"
)

// MaxHistory bounds the make/unmake history stack. 6000 plies is far beyond
// any game or perft walk the driver will ever push onto one Board.
const MaxHistory = 6000

// undoRecord is everything UnmakeMove needs beyond the pre-move State
// itself: the captured piece (if any) and the square it was removed from,
// which for an en passant capture differs from the move's "to" square.
type undoRecord struct {
	state          State
	capturedKind   PieceKind
	capturedSquare Square
}

// Board is the mutable chess position: piece placement plus the current
// State, mutated exclusively through MakeMove/UnmakeMove.
type Board struct {
	pieceBitboards [ColorLength][PieceKindLength]Bitboard
	sideBitboards  [ColorLength]Bitboard
	pieceList      [SqLength]PieceKind

	state State

	history    [MaxHistory]undoRecord
	historyLen int

	// sem enforces the single-owner-thread contract: MakeMove/UnmakeMove
	// and any movegen call that reads the board must come from one
	// goroutine at a time. Acquired non-blockingly; a failed acquire means
	// a caller violated the contract; it is never held across a suspend.
	sem *semaphore.Weighted
}

// NewBoard returns an empty board (no pieces placed, State zero-valued).
// Callers that want a playable board should place pieces with Place and
// then call SetState, or use NewStartBoard / the fen package.
func NewBoard() *Board {
	b := &Board{sem: semaphore.NewWeighted(1)}
	for sq := SqA1; sq < SqNone; sq++ {
		b.pieceList[sq] = None
	}
	return b
}

// NewStartBoard returns a board set up for the standard chess starting
// position.
func NewStartBoard() *Board {
	b := NewBoard()
	placeStartPosition(b)
	b.SetState(NewState())
	return b
}

func placeStartPosition(b *Board) {
	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		b.Place(White, backRank[f], SquareOf(f, Rank1))
		b.Place(White, Pawn, SquareOf(f, Rank2))
		b.Place(Black, Pawn, SquareOf(f, Rank7))
		b.Place(Black, backRank[f], SquareOf(f, Rank8))
	}
}

func (b *Board) lock() {
	if !b.sem.TryAcquire(1) {
		panic("board: concurrent access detected; make/unmake/generate_moves require a single owner thread")
	}
}

func (b *Board) unlock() {
	b.sem.Release(1)
}

// Place puts a piece of the given color and kind on sq. Used only to build
// up a board before play starts (the FEN boundary, tests, Clone); it does
// not touch the zobrist key, castling rights or any other State field —
// call SetState once placement is complete.
func (b *Board) Place(c Color, pk PieceKind, sq Square) {
	b.pieceBitboards[c][pk] = b.pieceBitboards[c][pk].Add(sq)
	b.sideBitboards[c] = b.sideBitboards[c].Add(sq)
	b.pieceList[sq] = pk
}

// SetState installs st as the board's current state and recomputes the
// zobrist key from scratch against the pieces already placed. This is the
// boundary operation the FEN parser (and any other bootstrap path) uses
// after placement; nothing in make/unmake ever calls it.
func (b *Board) SetState(st State) {
	b.state = st
	b.state.ZobristKey = b.computeZobristFromScratch()
}

// State returns the current State.
func (b *Board) State() State { return b.state }

// PieceAt returns the piece kind on sq, or None if sq is empty.
func (b *Board) PieceAt(sq Square) PieceKind { return b.pieceList[sq] }

// ColorAt returns the color of the piece on sq and true, or (White, false)
// if sq is empty.
func (b *Board) ColorAt(sq Square) (Color, bool) {
	if b.sideBitboards[White].Contains(sq) {
		return White, true
	}
	if b.sideBitboards[Black].Contains(sq) {
		return Black, true
	}
	return White, false
}

// PiecesBb returns the bitboard of pieces of kind pk and color c.
func (b *Board) PiecesBb(c Color, pk PieceKind) Bitboard { return b.pieceBitboards[c][pk] }

// OccupiedBy returns the bitboard of every piece of color c.
func (b *Board) OccupiedBy(c Color) Bitboard { return b.sideBitboards[c] }

// Occupied returns the bitboard of every occupied square.
func (b *Board) Occupied() Bitboard { return b.sideBitboards[White] | b.sideBitboards[Black] }

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.pieceBitboards[c][King].Lsb()
}

func (b *Board) computeZobristFromScratch() ZobristKey {
	var key ZobristKey
	for c := White; c <= Black; c++ {
		for pk := PieceKind(0); pk < PieceKindLength; pk++ {
			for _, sq := range b.pieceBitboards[c][pk].Squares() {
				key ^= ZobristPiece(c, pk, sq)
			}
		}
	}
	key ^= ZobristCastling(b.state.CastlingRights)
	key ^= ZobristEnPassant(b.state.EnPassantSquare)
	if b.state.SideToMove == Black {
		key ^= ZobristSide()
	}
	return key
}

// --- placement primitives used by MakeMove (incremental zobrist) ---

func (b *Board) placePiece(c Color, pk PieceKind, sq Square) {
	b.pieceBitboards[c][pk] = b.pieceBitboards[c][pk].Add(sq)
	b.sideBitboards[c] = b.sideBitboards[c].Add(sq)
	b.pieceList[sq] = pk
	b.state.ZobristKey ^= ZobristPiece(c, pk, sq)
}

func (b *Board) removePiece(c Color, pk PieceKind, sq Square) {
	b.pieceBitboards[c][pk] = b.pieceBitboards[c][pk].Discard(sq)
	b.sideBitboards[c] = b.sideBitboards[c].Discard(sq)
	b.pieceList[sq] = None
	b.state.ZobristKey ^= ZobristPiece(c, pk, sq)
}

func (b *Board) movePieceIncr(c Color, pk PieceKind, from, to Square) {
	b.removePiece(c, pk, from)
	b.placePiece(c, pk, to)
}

// --- placement primitives used by UnmakeMove (no zobrist bookkeeping;
// the final State assignment restores the key wholesale) ---

func (b *Board) placePieceBare(c Color, pk PieceKind, sq Square) {
	b.pieceBitboards[c][pk] = b.pieceBitboards[c][pk].Add(sq)
	b.sideBitboards[c] = b.sideBitboards[c].Add(sq)
	b.pieceList[sq] = pk
}

func (b *Board) removePieceBare(c Color, pk PieceKind, sq Square) {
	b.pieceBitboards[c][pk] = b.pieceBitboards[c][pk].Discard(sq)
	b.sideBitboards[c] = b.sideBitboards[c].Discard(sq)
	b.pieceList[sq] = None
}

func (b *Board) movePieceBare(c Color, pk PieceKind, from, to Square) {
	b.removePieceBare(c, pk, from)
	b.placePieceBare(c, pk, to)
}

// castlingRookSquares maps a king's castling destination to the rook's
// (from, to) squares for that side.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("board: %s is not a valid castling destination", kingTo))
	}
}

// MakeMove applies m to the board. It returns false (and leaves the board
// exactly as it was, via an internal UnmakeMove) if the move leaves the
// mover's own king in check — the only outcome that separates a
// pseudo-legal move from a legal one.
func (b *Board) MakeMove(m Move) bool {
	b.lock()
	defer b.unlock()

	prev := b.state
	prev.Move = m
	b.history[b.historyLen] = undoRecord{state: prev, capturedKind: None, capturedSquare: SqNone}
	b.historyLen++

	us := b.state.SideToMove
	them := us.Flip()
	piece := m.Piece()
	from := m.From()
	to := m.To()
	capture := m.Capture()
	promotion := m.Promotion()

	b.state.HalfmoveClock++

	// Step 2: clear any existing en passant square. ZobristEnPassant(SqNone)
	// is the XOR identity, so this is correct even when none was set.
	b.state.ZobristKey ^= ZobristEnPassant(b.state.EnPassantSquare)
	b.state.EnPassantSquare = SqNone

	capturedSquare := SqNone
	if capture != None {
		if m.IsEnPassant() {
			capturedSquare = Square(int8(to) - int8(us.MoveDirection()))
		} else {
			capturedSquare = to
		}
		b.removePiece(them, capture, capturedSquare)
		b.state.HalfmoveClock = 0
		b.history[b.historyLen-1].capturedKind = capture
		b.history[b.historyLen-1].capturedSquare = capturedSquare
	}

	if piece != Pawn {
		b.movePieceIncr(us, piece, from, to)
	} else {
		if promotion != None {
			b.removePiece(us, Pawn, from)
			b.placePiece(us, promotion, to)
		} else {
			b.movePieceIncr(us, Pawn, from, to)
		}
		b.state.HalfmoveClock = 0
		if m.IsDoubleStep() {
			epSq := Square(int8(to) - int8(us.MoveDirection()))
			b.state.EnPassantSquare = epSq
			b.state.ZobristKey ^= ZobristEnPassant(epSq)
		}
	}

	// Castling-rights update: AND the per-square masks for both the
	// mover's origin and (if a rook was captured) the capture square,
	// then XOR the net zobrist change once.
	oldCr := b.state.CastlingRights
	newCr := oldCr & CastlingUpdateMask(from)
	if capture == Rook {
		newCr &= CastlingUpdateMask(capturedSquare)
	}
	if newCr != oldCr {
		b.state.ZobristKey ^= ZobristCastling(oldCr) ^ ZobristCastling(newCr)
		b.state.CastlingRights = newCr
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(to)
		b.movePieceIncr(us, Rook, rookFrom, rookTo)
	}

	b.state.ZobristKey ^= ZobristSide()
	b.state.SideToMove = them
	if us == Black {
		b.state.FullmoveNumber++
	}

	if assert.DEBUG {
		assert.Assert(b.computeZobristFromScratch() == b.state.ZobristKey,
			"board: zobrist key out of sync after move %s", m)
	}

	kingSq := b.KingSquare(us)
	if b.isSquareAttackedNoLock(them, kingSq) {
		b.unmakeMoveNoLock()
		return false
	}
	return true
}

// UnmakeMove reverses the most recent MakeMove.
func (b *Board) UnmakeMove() {
	b.lock()
	defer b.unlock()
	b.unmakeMoveNoLock()
}

func (b *Board) unmakeMoveNoLock() {
	if b.historyLen == 0 {
		panic("board: unmake with empty history")
	}

	b.historyLen--
	rec := b.history[b.historyLen]
	m := rec.state.Move
	us := rec.state.SideToMove
	them := us.Flip()

	piece := m.Piece()
	from := m.From()
	to := m.To()
	promotion := m.Promotion()

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(to)
		b.movePieceBare(us, Rook, rookTo, rookFrom)
	}

	if piece == Pawn && promotion != None {
		b.removePieceBare(us, promotion, to)
		b.placePieceBare(us, Pawn, from)
	} else {
		b.movePieceBare(us, piece, to, from)
	}

	if rec.capturedKind != None {
		b.placePieceBare(them, rec.capturedKind, rec.capturedSquare)
	}

	b.state = rec.state
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// attacker, per the fixed early-exit ordering: king, knight, pawn,
// rook/queen, bishop/queen.
func (b *Board) IsSquareAttacked(attacker Color, sq Square) bool {
	b.lock()
	defer b.unlock()
	return b.isSquareAttackedNoLock(attacker, sq)
}

func (b *Board) isSquareAttackedNoLock(attacker Color, sq Square) bool {
	if attacks.GetKingAttacks(sq).And(b.pieceBitboards[attacker][King]).Any() {
		return true
	}
	if attacks.GetKnightAttacks(sq).And(b.pieceBitboards[attacker][Knight]).Any() {
		return true
	}
	if attacks.GetPawnAttacks(attacker.Flip(), sq).And(b.pieceBitboards[attacker][Pawn]).Any() {
		return true
	}
	occ := b.sideBitboards[White] | b.sideBitboards[Black]
	rooksAndQueens := b.pieceBitboards[attacker][Rook].Or(b.pieceBitboards[attacker][Queen])
	if attacks.GetRookAttacks(sq, occ).And(rooksAndQueens).Any() {
		return true
	}
	bishopsAndQueens := b.pieceBitboards[attacker][Bishop].Or(b.pieceBitboards[attacker][Queen])
	if attacks.GetBishopAttacks(sq, occ).And(bishopsAndQueens).Any() {
		return true
	}
	return false
}

// IsInCheck reports whether the side to move's king is currently attacked.
func (b *Board) IsInCheck() bool {
	return b.IsSquareAttacked(b.state.SideToMove.Flip(), b.KingSquare(b.state.SideToMove))
}

// Repetitions reports whether the current position has already occurred at
// least n times earlier in the board's history. Repetitions(2) is the
// standard threefold-repetition test: it turns true the moment the current
// occurrence is the third. Positions are two plies apart when the side to
// move matches, so the search steps backwards by two; it stops as soon as
// it crosses an irreversible move (the halfmove clock failing to have
// decreased from the previous step means a capture or pawn move reset it
// further back), since no position before that boundary can recur here.
func (b *Board) Repetitions(n int) bool {
	counter := 0
	lastHalfmoveClock := b.state.HalfmoveClock
	for i := b.historyLen - 2; i >= 0; i -= 2 {
		if b.history[i].state.HalfmoveClock >= lastHalfmoveClock {
			break
		}
		lastHalfmoveClock = b.history[i].state.HalfmoveClock
		if b.history[i].state.ZobristKey == b.state.ZobristKey {
			counter++
		}
		if counter >= n {
			return true
		}
	}
	return false
}

// Clone returns a deep, independent copy of the board. Used to hand each
// worker goroutine in PerftParallel its own board, preserving the
// single-owner-thread-per-board contract while still parallelizing across
// boards.
func (b *Board) Clone() *Board {
	b.lock()
	defer b.unlock()
	nb := &Board{
		pieceBitboards: b.pieceBitboards,
		sideBitboards:  b.sideBitboards,
		pieceList:      b.pieceList,
		state:          b.state,
		history:        b.history,
		historyLen:     b.historyLen,
		sem:            semaphore.NewWeighted(1),
	}
	return nb
}
