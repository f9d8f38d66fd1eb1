package main

import (
	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/difficulty"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

// playerConfig names one side of a matchup: a difficulty/style pair
// consumed by difficulty.CalculateAIMove.
type playerConfig struct {
	Difficulty difficulty.Level
	Style      difficulty.Style
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo  gameInfo
	positions []chess.Position
	comment   string
	result    int
}
