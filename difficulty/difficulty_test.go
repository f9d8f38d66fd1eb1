package difficulty

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbuschess/engine/chess"
	"github.com/nimbuschess/engine/search"
)

func TestExpertNeverPerturbsTheSearchResult(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)

	var s = search.NewSearcher(8)
	var plain = s.Search(pos, search.SearchOptions{MaxDepth: SettingsFor(Expert).MaxDepth, MaxTimeMs: SettingsFor(Expert).MaxTimeMs})

	var s2 = search.NewSearcher(8)
	var result = CalculateAIMove(s2, pos, Expert, Balanced)

	require.Equal(t, plain.BestMove, result.BestMove,
		"Expert has mistake_p = 0 and blunder_p = 0, so calculate_ai_move must match search exactly")
}

func TestMistakePoolRarelyPicksTheTopMove(t *testing.T) {
	var pos, err = chess.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	var legalMoves = chess.GenerateLegal(pos)
	require.GreaterOrEqual(t, len(legalMoves), 2)

	var settings = Settings{PoolSize: 3, Noise: 40}

	var topMove = legalMoves[0]
	var topScore = moverScore(pos, topMove) + styleBias(Balanced, pos, topMove)
	for _, mv := range legalMoves[1:] {
		var s = moverScore(pos, mv) + styleBias(Balanced, pos, mv)
		if s > topScore {
			topScore = s
			topMove = mv
		}
	}

	var trials = 100
	var matchesTop = 0
	var r = rand.New(rand.NewSource(42))
	for i := 0; i < trials; i++ {
		var mv, ok = pickMistake(pos, legalMoves, Balanced, settings, r)
		require.True(t, ok)
		if mv == topMove {
			matchesTop++
		}
	}

	require.LessOrEqual(t, matchesTop, trials/10,
		"mistake pool should pick the unperturbed top move in at most 10%% of trials, got %d/%d", matchesTop, trials)
}

func TestBlunderPicksFromTheWorstThreeMoves(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)

	var legalMoves = chess.GenerateLegal(pos)
	var scored = make(map[chess.Move]float64, len(legalMoves))
	for _, mv := range legalMoves {
		scored[mv] = moverScore(pos, mv)
	}

	var r = rand.New(rand.NewSource(7))
	var mv, ok = pickBlunder(pos, legalMoves, r)
	require.True(t, ok)

	// Moves may tie on score, so count only strictly lower-scoring moves:
	// a pick among the three lowest has at most two of those.
	var strictlyWorseCount = 0
	for _, other := range legalMoves {
		if scored[other] < scored[mv] {
			strictlyWorseCount++
		}
	}
	require.LessOrEqual(t, strictlyWorseCount, 2,
		"blunder pick should come from the three lowest-scoring moves")
}
