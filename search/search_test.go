package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbuschess/engine/chess"
)

func TestSearchFindsForcedMateScore(t *testing.T) {
	var pos, err = chess.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	var s = NewSearcher(8)
	var result = s.Search(pos, SearchOptions{MaxDepth: 3})

	require.GreaterOrEqual(t, abs(result.Evaluation), chess.MateScore-100,
		"expected a mate score from this position, got %d", result.Evaluation)
}

func TestSearchFindsWinningCapture(t *testing.T) {
	var pos, err = chess.ParseFEN("rnb1kbnr/pppppppp/8/8/4q3/3B4/PPPPPPPP/RNBQK1NR w KQkq - 0 1")
	require.NoError(t, err)

	var s = NewSearcher(8)
	var result = s.Search(pos, SearchOptions{MaxDepth: 2})

	var d3, _ = chess.ParseSquareName("d3")
	var e4, _ = chess.ParseSquareName("e4")
	require.Equal(t, d3, result.BestMove.From)
	require.Equal(t, e4, result.BestMove.To)
}

func TestSearchIsDeterministicForAFixedDepth(t *testing.T) {
	var pos, err = chess.ParseFEN(chess.StartingFEN)
	require.NoError(t, err)

	var s1 = NewSearcher(8)
	var r1 = s1.Search(pos, SearchOptions{MaxDepth: 3})

	var s2 = NewSearcher(8)
	var r2 = s2.Search(pos, SearchOptions{MaxDepth: 3})

	require.Equal(t, r1.BestMove, r2.BestMove)
	require.Equal(t, r1.Evaluation, r2.Evaluation)
}
