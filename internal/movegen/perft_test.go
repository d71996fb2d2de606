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
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

// perftCase is one row of the mandatory perft table: a FEN plus the known
// node counts at depths 1..len(nodes).
type perftCase struct {
	name  string
	fen   string
	nodes []uint64
}

// perftTable holds every position the spec mandates, each truncated to a
// depth that keeps the full suite fast; TestStandardPerft below runs the
// start position out to its full depth 5.
var perftTable = []perftCase{
	{
		name:  "start",
		fen:   board.StartFen,
		nodes: []uint64{20, 400, 8902, 197281},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		nodes: []uint64{48, 2039, 97862},
	},
	{
		name:  "endgame-rook",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		nodes: []uint64{14, 191, 2812, 43238},
	},
	{
		name:  "promotion-heavy",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9467},
	},
	{
		name:  "mixed-tactics",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1486, 62379},
	},
}

func TestPerftTable(t *testing.T) {
	assrt := assert.New(t)
	for _, tc := range perftTable {
		b, err := fen.ParseFen(tc.fen)
		assrt.NoError(err, tc.name)
		for i, want := range tc.nodes {
			depth := i + 1
			got := PerftNodes(b, depth)
			assrt.Equal(want, got, "%s perft(%d)", tc.name, depth)
		}
	}
}

func TestStandardPerft(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	var p Perft
	want := []uint64{20, 400, 8902, 197281, 4865609}
	for i, w := range want {
		depth := i + 1
		p.resetCounters()
		got := p.miniMax(depth, b)
		assrt.Equal(w, got, "perft(%d)", depth)
	}
}

func TestStandardPerftCaptureAndCheckCounters(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	var p Perft
	p.resetCounters()
	got := p.miniMax(4, b)
	assrt.Equal(uint64(197281), got)
	assrt.Equal(uint64(1576), p.CaptureCounter)
	assrt.Equal(uint64(0), p.EnpassantCounter)
	assrt.Equal(uint64(469), p.CheckCounter)
	assrt.Equal(uint64(8), p.CheckMateCounter)
}

func TestPerftAfterE2E4Symmetry(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	moves := GenerateMoves(b)
	var e2e4 bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From().String() == "e2" && m.To().String() == "e4" {
			assrt.True(b.MakeMove(m))
			e2e4 = true
			break
		}
	}
	assrt.True(e2e4, "e2e4 must be a generated move from the start position")
	assrt.Equal(uint64(20), PerftNodes(b, 1))
}

func TestPerftParallelAgreesWithSequential(t *testing.T) {
	assrt := assert.New(t)
	b := board.NewStartBoard()
	sequential := PerftNodes(b, 3)
	parallel := PerftParallel(b, 3)
	assrt.Equal(sequential, parallel)
}

func TestPerftRecognisesEnPassantAvailability(t *testing.T) {
	assrt := assert.New(t)
	b, err := fen.ParseFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assrt.NoError(err)
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		assrt.False(moves.At(i).IsEnPassant(), "black has no pawn adjacent to e4 yet, so no ep capture should be generated")
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From().String() == "c7" && m.To().String() == "c5" {
			assrt.True(b.MakeMove(m))
			break
		}
	}
	assrt.Equal("c6", b.State().EnPassantSquare.String())
}
