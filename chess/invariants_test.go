package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	var fens = []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 1",
		"8/P7/8/8/8/8/8/4K2k w - - 0 1",
	}
	for _, fen := range fens {
		var pos, err = ParseFEN(fen)
		require.NoError(t, err, fen)

		var pos2, err2 = ParseFEN(ToFEN(pos))
		require.NoError(t, err2, fen)
		require.Equal(t, pos, pos2, "round trip through ToFEN changed the position for %q", fen)
	}
}

func TestLegalMovesNeverLeaveMoverInCheck(t *testing.T) {
	var fens = []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnb1kbnr/pppppppp/8/8/4q3/3B4/PPPPPPPP/RNBQK1NR w KQkq - 0 1",
	}
	for _, fen := range fens {
		var pos, err = ParseFEN(fen)
		require.NoError(t, err, fen)

		for _, mv := range GenerateLegal(pos) {
			var after = MakeMove(pos, mv)
			require.False(t, IsInCheck(after.Board, pos.SideToMove),
				"move %s%s left %s's king in check", SquareName(mv.From), SquareName(mv.To), pos.SideToMove)
		}
	}
}

func TestNoLegalMovesImpliesMateOrStalemate(t *testing.T) {
	var pos, err = ParseFEN("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	require.Empty(t, GenerateLegal(pos))
	require.True(t, IsInCheck(pos.Board, pos.SideToMove))
	require.True(t, IsCheckmate(pos))
	require.False(t, IsStalemate(pos))
}

