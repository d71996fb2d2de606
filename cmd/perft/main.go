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

// Command perft drives the movegen package's leaf-node counter from the
// command line. It replaces the teacher's UCI-driven binary: UCI, search,
// and the opening book are all out of scope here, so there is nothing left
// for a full engine front end to do except run perft and report the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/movegen"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fenFlag := flag.String("fen", board.StartFen, "fen of the position to run perft on")
	depth := flag.Int("depth", 0, "perft depth; 0 uses the configured default")
	parallel := flag.Bool("parallel", false, "split the root moves across a worker pool")
	profileFlag := flag.Bool("profile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	d := *depth
	if d <= 0 {
		d = config.Settings.Perft.DefaultDepth
	}

	b, err := fen.ParseFen(*fenFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}

	useParallel := *parallel || config.Settings.Perft.UseParallel
	if useParallel {
		out.Printf("Running parallel perft(%d) on %s\n", d, *fenFlag)
		nodes := movegen.PerftParallel(b, d)
		out.Printf("Nodes: %d\n", nodes)
		return
	}

	var p movegen.Perft
	p.StartPerft(b, d)
}
