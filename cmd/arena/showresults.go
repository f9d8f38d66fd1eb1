package main

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
)

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) error {
	var games = 0
	var wins, losses, draws int
	for res := range gameResults {
		games++
		log.Info().
			Int("game", res.gameInfo.gameNumber).
			Str("result", gameResultString(res.result)).
			Str("comment", res.comment).
			Msg("game finished")

		switch {
		case res.result == gameResultDraw:
			draws++
		case res.result == gameResultWhiteWins && res.gameInfo.engineAIsWhite,
			res.result == gameResultBlackWins && !res.gameInfo.engineAIsWhite:
			wins++
		default:
			losses++
		}

		var stat = computeStat(wins, losses, draws)
		log.Info().
			Int("wins", wins).Int("losses", losses).Int("draws", draws).
			Int("games", games).
			Float64("winningFraction", stat.winningFraction).
			Float64("eloDifference", stat.eloDifference).
			Float64("losPercent", stat.los*100).
			Msg("match score")
	}
	return nil
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// computeStat follows the chessprogramming.org match-statistics
// formulas: winning fraction, the Elo difference it implies, and the
// likelihood of superiority given the win/loss counts.
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = 0.0
	if winningFraction > 0 && winningFraction < 1 {
		eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	}
	var los = 0.5
	if wins+losses > 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	default:
		return ""
	}
}
