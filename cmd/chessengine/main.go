package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/config"
	"github.com/nimbuschess/engine/difficulty"
	"github.com/nimbuschess/engine/notation"
	"github.com/nimbuschess/engine/search"
)

var (
	flgFEN        string
	flgDepth      int
	flgTimeMs     int
	flgHashMB     int
	flgDifficulty string
	flgStyle      string
	flgConfigPath string
	flgAI         bool
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.StringVar(&flgFEN, "fen", chess.StartingFEN, "position to analyze")
	flag.IntVar(&flgDepth, "depth", 0, "max search depth (0 = use config/difficulty default)")
	flag.IntVar(&flgTimeMs, "time", 0, "max think time in ms (0 = use config/difficulty default)")
	flag.IntVar(&flgHashMB, "hash", 0, "transposition table size in MB (0 = use config default)")
	flag.StringVar(&flgDifficulty, "difficulty", "", "Beginner|Easy|Medium|Hard|Expert (implies -ai)")
	flag.StringVar(&flgStyle, "style", "", "Aggressive|Defensive|Balanced")
	flag.StringVar(&flgConfigPath, "config", "chessengine.toml", "optional TOML defaults file")
	flag.BoolVar(&flgAI, "ai", false, "run calculate_ai_move instead of full-strength search")
	flag.Parse()

	if flgDifficulty != "" {
		flgAI = true
	}

	cfg, err := config.Load(flgConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", flgConfigPath).Msg("failed to load config")
	}

	if flgHashMB == 0 {
		flgHashMB = cfg.HashSizeMB
	}
	if flgDifficulty == "" {
		flgDifficulty = cfg.DefaultDifficulty
	}
	if flgStyle == "" {
		flgStyle = cfg.DefaultStyle
	}
	if flgTimeMs == 0 {
		flgTimeMs = cfg.DefaultThinkMs
	}

	log.Info().
		Str("name", "nimbuschess").
		Str("fen", flgFEN).
		Int("hashMB", flgHashMB).
		Str("difficulty", flgDifficulty).
		Str("style", flgStyle).
		Msg("starting analysis")

	pos, err := chess.ParseFEN(flgFEN)
	if err != nil {
		log.Fatal().Err(err).Str("fen", flgFEN).Msg("invalid FEN")
	}

	var s = search.NewSearcher(flgHashMB)

	var result search.SearchResult
	if flgAI {
		result = difficulty.CalculateAIMove(s, pos, difficulty.Level(flgDifficulty), difficulty.Style(flgStyle))
	} else {
		var depth = flgDepth
		if depth == 0 {
			depth = difficulty.SettingsFor(difficulty.Level(flgDifficulty)).MaxDepth
		}
		result = s.Search(pos, search.SearchOptions{MaxDepth: depth, MaxTimeMs: flgTimeMs})
	}

	printResult(pos, result)
}

func printResult(pos chess.Position, result search.SearchResult) {
	fmt.Printf("bestmove %s (%s)\n", notation.MoveToCoord(result.BestMove), notation.MoveToSAN(pos, result.BestMove))
	fmt.Printf("evaluation %d depth %d nodes %d elapsed %dms\n",
		result.Evaluation, result.Depth, result.NodesSearched, result.ElapsedMs)

	var pvStrings = make([]string, 0, len(result.PrincipalVariation))
	var cur = pos
	for _, mv := range result.PrincipalVariation {
		pvStrings = append(pvStrings, notation.MoveToSAN(cur, mv))
		cur = chess.MakeMove(cur, mv)
	}
	fmt.Printf("pv %s\n", strings.Join(pvStrings, " "))

	for _, line := range result.Explanation {
		fmt.Println(line)
	}
}
