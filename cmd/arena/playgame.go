package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/difficulty"
	"github.com/nimbuschess/engine/search"
)

// playGame runs one game to completion between two difficulty/style
// configurations, each driven by its own Searcher so the transposition
// and history tables of one side never leak into the other.
func playGame(
	ctx context.Context,
	configA, configB playerConfig,
	info gameInfo,
) (gameResult, error) {
	log.Debug().Int("game", info.gameNumber).Str("opening", info.opening).Msg("starting game")

	var searcherA = search.NewSearcher(16)
	var searcherB = search.NewSearcher(16)

	var pos, err = chess.ParseFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var positions = []chess.Position{pos}
	var repetitions = make(map[uint64]int)

	for {
		select {
		case <-ctx.Done():
			return gameResult{}, ctx.Err()
		default:
		}

		var cur = positions[len(positions)-1]
		var legalMoves = chess.GenerateLegal(cur)

		if len(legalMoves) == 0 {
			if chess.IsInCheck(cur.Board, cur.SideToMove) {
				var points = gameResultWhiteWins
				if cur.SideToMove == chess.White {
					points = gameResultBlackWins
				}
				return gameResult{gameInfo: info, positions: positions, comment: "checkmate", result: points}, nil
			}
			return gameResult{gameInfo: info, positions: positions, comment: "stalemate", result: gameResultDraw}, nil
		}
		if cur.HalfmoveClock >= 100 {
			return gameResult{gameInfo: info, positions: positions, comment: "50 moves", result: gameResultDraw}, nil
		}
		if isLowMaterial(cur) {
			return gameResult{gameInfo: info, positions: positions, comment: "low material", result: gameResultDraw}, nil
		}

		var key = search.Hash(cur)
		repetitions[key]++
		if repetitions[key] >= 3 {
			return gameResult{gameInfo: info, positions: positions, comment: "3-fold repetition", result: gameResultDraw}, nil
		}

		var config = configB
		var searcher = searcherB
		if (cur.SideToMove == chess.White) == info.engineAIsWhite {
			config = configA
			searcher = searcherA
		}

		var result = difficulty.CalculateAIMove(searcher, cur, config.Difficulty, config.Style)
		if result.BestMove == chess.MoveEmpty || !containsMove(legalMoves, result.BestMove) {
			return gameResult{}, fmt.Errorf("engine returned an illegal move in game %d", info.gameNumber)
		}

		positions = append(positions, chess.MakeMove(cur, result.BestMove))
	}
}

// isLowMaterial reports insufficient mating material: no pawns, rooks,
// or queens left, and at most one minor piece on the board total.
func isLowMaterial(pos chess.Position) bool {
	var minorCount = 0
	for _, p := range pos.Board {
		if p.IsEmpty() {
			continue
		}
		switch p.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight, chess.Bishop:
			minorCount++
		}
	}
	return minorCount <= 1
}

func containsMove(moves []chess.Move, mv chess.Move) bool {
	for _, m := range moves {
		if m == mv {
			return true
		}
	}
	return false
}
