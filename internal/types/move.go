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

// Move is a packed 32-bit move record. The layout is fixed:
//
// @formatter:off
//  bit   0- 2  piece       (PieceKind, or None)
//  bit   3- 8  from        (0..63)
//  bit   9-14  to          (0..63)
//  bit  15-17  capture     (PieceKind, or None)
//  bit  18-20  promotion   (PieceKind, or None)
//  bit     21  en_passant
//  bit     22  double_step
//  bit     23  castling
// @formatter:on
//
// A null move has from == to (both A1) and piece == None; MoveNone is the
// recognizable sentinel for "no move".
type Move uint32

// MaxMoves is the initial capacity of a move list. 218 is the largest
// legal move count reachable from a reachable chess position; a list still
// grows past it when a pseudo-legal generation produces more.
const MaxMoves = 218

const (
	moveShiftPiece      = 0
	moveShiftFrom       = 3
	moveShiftTo         = 9
	moveShiftCapture    = 15
	moveShiftPromotion  = 18
	moveShiftEnPassant  = 21
	moveShiftDoubleStep = 22
	moveShiftCastling   = 23

	moveMaskKind   Move = 0x7 // 3 bits
	moveMaskSquare Move = 0x3F
	moveMaskFlag   Move = 0x1
)

// MoveNone is the null move: from == to == A1, piece == None.
var MoveNone = buildMove(None, SqA1, SqA1, None, None, false, false, false)

func buildMove(piece PieceKind, from, to Square, capture, promotion PieceKind, ep, ds, castle bool) Move {
	m := Move(piece)&moveMaskKind |
		(Move(from)&moveMaskSquare)<<moveShiftFrom |
		(Move(to)&moveMaskSquare)<<moveShiftTo |
		(Move(capture)&moveMaskKind)<<moveShiftCapture |
		(Move(promotion)&moveMaskKind)<<moveShiftPromotion
	if ep {
		m |= moveMaskFlag << moveShiftEnPassant
	}
	if ds {
		m |= moveMaskFlag << moveShiftDoubleStep
	}
	if castle {
		m |= moveMaskFlag << moveShiftCastling
	}
	return m
}

// MoveBuilder constructs a Move. Piece, From and To must be set; Capture and
// Promotion default to None.
type MoveBuilder struct {
	piece            PieceKind
	from, to         Square
	capture          PieceKind
	promotion        PieceKind
	havePiece        bool
	haveFrom, haveTo bool
	ep, ds, castle   bool
}

// NewMoveBuilder returns an empty builder with capture/promotion defaulted
// to None.
func NewMoveBuilder() *MoveBuilder {
	return &MoveBuilder{capture: None, promotion: None}
}

// Piece sets the moving piece's kind.
func (b *MoveBuilder) Piece(pk PieceKind) *MoveBuilder { b.piece = pk; b.havePiece = true; return b }

// From sets the origin square.
func (b *MoveBuilder) From(sq Square) *MoveBuilder { b.from = sq; b.haveFrom = true; return b }

// To sets the destination square.
func (b *MoveBuilder) To(sq Square) *MoveBuilder { b.to = sq; b.haveTo = true; return b }

// Capture sets the captured piece's kind.
func (b *MoveBuilder) Capture(pk PieceKind) *MoveBuilder { b.capture = pk; return b }

// Promotion sets the promotion piece's kind.
func (b *MoveBuilder) Promotion(pk PieceKind) *MoveBuilder { b.promotion = pk; return b }

// EnPassant marks the move as an en passant capture.
func (b *MoveBuilder) EnPassant() *MoveBuilder { b.ep = true; return b }

// DoubleStep marks the move as a pawn double step.
func (b *MoveBuilder) DoubleStep() *MoveBuilder { b.ds = true; return b }

// Castling marks the move as a castling move.
func (b *MoveBuilder) Castling() *MoveBuilder { b.castle = true; return b }

// Build assembles the Move. Panics if piece, from or to were never set.
func (b *MoveBuilder) Build() Move {
	if !b.havePiece || !b.haveFrom || !b.haveTo {
		panic("types: MoveBuilder.Build called without piece/from/to set")
	}
	return buildMove(b.piece, b.from, b.to, b.capture, b.promotion, b.ep, b.ds, b.castle)
}

// Piece returns the moving piece's kind.
func (m Move) Piece() PieceKind { return PieceKind(m & moveMaskKind) }

// From returns the origin square.
func (m Move) From() Square { return Square((m >> moveShiftFrom) & moveMaskSquare) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveShiftTo) & moveMaskSquare) }

// Capture returns the captured piece's kind, or None.
func (m Move) Capture() PieceKind { return PieceKind((m >> moveShiftCapture) & moveMaskKind) }

// Promotion returns the promotion piece's kind, or None.
func (m Move) Promotion() PieceKind { return PieceKind((m >> moveShiftPromotion) & moveMaskKind) }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return (m>>moveShiftEnPassant)&moveMaskFlag != 0 }

// IsDoubleStep reports whether the move is a pawn double step.
func (m Move) IsDoubleStep() bool { return (m>>moveShiftDoubleStep)&moveMaskFlag != 0 }

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool { return (m>>moveShiftCastling)&moveMaskFlag != 0 }

// IsCapture reports whether the move captures a piece (en passant included).
func (m Move) IsCapture() bool { return m.Capture() != None }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != None }

// IsNone reports whether m is the null move.
func (m Move) IsNone() bool { return m == MoveNone }

// StringUci renders the move in UCI notation: <from><to>[<promo>], e.g.
// "e2e4" or "e7e8q". This is the boundary format spec'd for the UCI driver;
// the core itself never parses or produces it internally.
func (m Move) StringUci() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}

// String renders a move for debugging: "<piece><from><to>" plus capture/
// promotion/flag annotations.
func (m Move) String() string {
	s := m.Piece().Char() + m.From().String() + m.To().String()
	if m.IsCapture() {
		s += "x" + m.Capture().Char()
	}
	if m.IsPromotion() {
		s += "=" + m.Promotion().Char()
	}
	if m.IsEnPassant() {
		s += " e.p."
	}
	if m.IsCastling() {
		s += " O-O"
	}
	return s
}
