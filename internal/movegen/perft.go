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
	"runtime"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/board"
	. "github.com/frankkopp/chesscore/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf nodes of the legal move tree to a fixed depth, the
// gold-standard correctness test for a move generator: every divergence
// from the known-good counts in the perft table points at a concrete
// generation or make/unmake bug.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new, zeroed Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a Perft run currently executing in another goroutine
// return at its next recursion step.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// StartPerft runs perft(depth) from b's current position and prints a
// result report. b is left unmodified: every recursive step is undone via
// UnmakeMove on the way back up.
func (p *Perft) StartPerft(b *board.Board, depth int) {
	p.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	p.resetCounters()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := p.miniMax(depth, b)
	elapsed := time.Since(start)

	if p.stopFlag {
		out.Print("Perft stopped\n")
		return
	}
	p.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Checks    : %d\n", p.CheckCounter)
	out.Printf("   CheckMates: %d\n", p.CheckMateCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	out.Printf("-----------------------------------------\n")
}

func (p *Perft) miniMax(depth int, b *board.Board) uint64 {
	totalNodes := uint64(0)
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		if p.stopFlag {
			return 0
		}
		m := moves.At(i)
		if depth > 1 {
			if b.MakeMove(m) {
				totalNodes += p.miniMax(depth-1, b)
				b.UnmakeMove()
			}
			continue
		}
		capture := m.IsCapture()
		enpassant := m.IsEnPassant()
		castling := m.IsCastling()
		promotion := m.IsPromotion()
		if b.MakeMove(m) {
			totalNodes++
			if enpassant {
				p.EnpassantCounter++
				p.CaptureCounter++
			} else if capture {
				p.CaptureCounter++
			}
			if castling {
				p.CastleCounter++
			}
			if promotion {
				p.PromotionCounter++
			}
			if b.IsInCheck() {
				p.CheckCounter++
				if !HasLegalMove(b) {
					p.CheckMateCounter++
				}
			}
			b.UnmakeMove()
		}
	}
	return totalNodes
}

func (p *Perft) resetCounters() {
	p.Nodes = 0
	p.CheckCounter = 0
	p.CheckMateCounter = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}

// PerftNodes returns perft(depth) from b's current position without any
// reporting or counters beyond the node count, for use by tests and by
// perft table verification.
func PerftNodes(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var total uint64
	moves := GenerateMoves(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if b.MakeMove(m) {
			total += PerftNodes(b, depth-1)
			b.UnmakeMove()
		}
	}
	return total
}

// PerftParallel splits the root moves across a worker pool, one Board.Clone
// per goroutine, and sums perft(depth-1) from each child position. Each
// goroutine owns its cloned board exclusively, preserving the
// single-owner-thread-per-board contract while parallelizing across boards
// rather than within any one of them.
func PerftParallel(b *board.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateMoves(b)
	type job struct {
		move Move
	}
	jobs := make(chan job, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		jobs <- job{move: moves.At(i)}
	}
	close(jobs)

	workers := runtime.GOMAXPROCS(0)
	if workers > moves.Len() {
		workers = moves.Len()
	}
	if workers < 1 {
		workers = 1
	}

	var total uint64
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			nb := b.Clone()
			var local uint64
			for j := range jobs {
				if nb.MakeMove(j.move) {
					local += PerftNodes(nb, depth-1)
					nb.UnmakeMove()
				}
			}
			mu.Lock()
			total += local
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}
