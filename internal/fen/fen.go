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

// Package fen is the boundary between a FEN string and a playable Board. It
// is the only place in this module that parses text: everything downstream
// of ParseFen deals exclusively in Board, State and Move. The core itself
// never reads or writes FEN (§6 of the design this module implements treats
// FEN parsing as an external collaborator); this package is that
// collaborator's reference implementation.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/internal/board"
	. "github.com/frankkopp/chesscore/internal/types"
)

var (
	regexPiecePlacement = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove     = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassant      = regexp.MustCompile(`^([a-h][36]|-)$`)
)

var pieceChars = map[rune]struct {
	c  Color
	pk PieceKind
}{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop}, 'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop}, 'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// ParseFen builds a Board from a FEN string. Only the piece-placement field
// is mandatory; every missing field after it takes the default of a fresh
// State (white to move, no castling rights, no en passant square, halfmove
// clock 0, fullmove number 1). Rejects a malformed field, a placement that
// is not 8 ranks of 8 files, and a side without exactly one king; an en
// passant square must lie on rank 3 or 6 but is not checked against the
// side to move. The permissive reading of a loosely-formed FEN is left to
// whatever caller wants it, per the open question this package resolves
// strictly rather than leniently.
func ParseFen(in string) (*board.Board, error) {
	fields := strings.Fields(strings.TrimSpace(in))
	if len(fields) == 0 {
		return nil, fmt.Errorf("fen: empty input")
	}

	if !regexPiecePlacement.MatchString(fields[0]) {
		return nil, fmt.Errorf("fen: piece placement %q contains invalid characters", fields[0])
	}

	b := board.NewBoard()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	kingCount := [ColorLength]int{}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, ch := range rankStr {
			if n, err := strconv.Atoi(string(ch)); err == nil {
				file += File(n)
				continue
			}
			pc, ok := pieceChars[ch]
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece character %q", ch)
			}
			if file > FileH {
				return nil, fmt.Errorf("fen: rank %d overflows past the h-file", 8-i)
			}
			sq := SquareOf(file, rank)
			b.Place(pc.c, pc.pk, sq)
			if pc.pk == King {
				kingCount[pc.c]++
			}
			file++
		}
		if file != FileH+1 {
			return nil, fmt.Errorf("fen: rank %d does not cover exactly 8 files", 8-i)
		}
	}
	if kingCount[White] != 1 || kingCount[Black] != 1 {
		return nil, fmt.Errorf("fen: each side must have exactly one king, got white=%d black=%d", kingCount[White], kingCount[Black])
	}

	st := board.NewState()

	if len(fields) >= 2 {
		if !regexSideToMove.MatchString(fields[1]) {
			return nil, fmt.Errorf("fen: side to move %q must be 'w' or 'b'", fields[1])
		}
		if fields[1] == "b" {
			st.SideToMove = Black
		} else {
			st.SideToMove = White
		}
	}

	st.CastlingRights = CastlingNone
	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return nil, fmt.Errorf("fen: castling rights %q contains invalid characters", fields[2])
		}
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				st.CastlingRights.Add(CastlingWhiteOO)
			case 'Q':
				st.CastlingRights.Add(CastlingWhiteOOO)
			case 'k':
				st.CastlingRights.Add(CastlingBlackOO)
			case 'q':
				st.CastlingRights.Add(CastlingBlackOOO)
			}
		}
	}

	st.EnPassantSquare = SqNone
	if len(fields) >= 4 && fields[3] != "-" {
		if !regexEnPassant.MatchString(fields[3]) {
			return nil, fmt.Errorf("fen: en passant square %q must be on rank 3 or 6", fields[3])
		}
		st.EnPassantSquare = MakeSquare(fields[3])
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		st.HalfmoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		st.FullmoveNumber = n
	}

	b.SetState(st)
	return b, nil
}
